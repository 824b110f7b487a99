// AngelaMos | 2026
// handler.go

package upload

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cricketacademy/academy-api/internal/core"
)

// multipartOverhead leaves room for form boundaries and headers on top of
// the file itself.
const multipartOverhead = 1 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterAdminRoutes expects authentication and the admin check to be
// applied by the caller.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/upload", func(r chi.Router) {
		r.Post("/image", h.UploadFile)
		r.Post("/from-url", h.UploadFromURL)
	})
}

func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.service.maxSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartOverhead); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			core.BadRequest(w, errFileTooBig.Message)
			return
		}
		core.BadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		core.BadRequest(w, "file is required")
		return
	}
	defer func() { _ = file.Close() }()

	resp, err := h.service.SaveMultipart(r.Context(), file, header)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) UploadFromURL(w http.ResponseWriter, r *http.Request) {
	var req FromURLRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.SaveFromURL(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, resp)
}

// FileServer serves stored files without directory listings.
func FileServer(store Store) http.Handler {
	fs := http.StripPrefix(strings.TrimSuffix(PublicPrefix, "/"), http.FileServer(http.Dir(store.Dir())))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		fs.ServeHTTP(w, r)
	})
}
