// AngelaMos | 2026
// handler.go

package career

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cricketacademy/academy-api/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/careers/{kind}", h.Apply)
}

// RegisterAdminRoutes expects authentication and the admin check to be
// applied by the caller.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/careers/{kind}", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{applicationID}", h.Get)
		r.Patch("/{applicationID}/status", h.UpdateStatus)
		r.Delete("/{applicationID}", h.Delete)
	})
}

func kindOf(w http.ResponseWriter, r *http.Request) (Kind, bool) {
	kind, ok := KindFromSlug(chi.URLParam(r, "kind"))
	if !ok {
		core.HandleError(w, r, core.NotFoundError("career pool"))
	}
	return kind, ok
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindOf(w, r)
	if !ok {
		return
	}

	var req ApplyRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Apply(r.Context(), kind, req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindOf(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	resp, err := h.service.List(r.Context(), kind, q.Get("onboard_status"), q.Get("job_status"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindOf(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), kind, chi.URLParam(r, "applicationID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindOf(w, r)
	if !ok {
		return
	}

	var req StatusRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateStatus(r.Context(), kind, chi.URLParam(r, "applicationID"), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, ok := kindOf(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), kind, chi.URLParam(r, "applicationID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}
