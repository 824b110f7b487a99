// AngelaMos | 2026
// handler.go

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes serves reads publicly. Mutations require an admin.
func (h *Handler) RegisterRoutes(r chi.Router, authenticator func(http.Handler) http.Handler) {
	r.Route("/contact", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{contactID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Use(middleware.RequireAdmin)
			r.Post("/", h.Create)
			r.Put("/{contactID}", h.Update)
			r.Delete("/{contactID}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "contactID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req InfoRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req InfoRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "contactID"), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "contactID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}
