// AngelaMos | 2026
// handler.go

package ground

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
	r.Route("/grounds", func(r chi.Router) {
		r.Get("/", h.ListActiveGrounds)
		r.Get("/{groundID}", h.GetGround)
		r.Get("/{groundID}/nets", h.NetsOfGround)
	})

	r.Route("/nets", func(r chi.Router) {
		r.Get("/", h.ListAvailableNets)
		r.Get("/ground/{groundID}", h.NetsOfGround)
		r.Get("/ground/{groundID}/available", h.AvailableNetsOfGround)
		r.Get("/{netID}", h.GetNet)
	})
}

// RegisterAdminRoutes expects authentication and the admin check to be
// applied by the caller.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/grounds", func(r chi.Router) {
		r.Get("/", h.ListAllGrounds)
		r.Post("/", h.CreateGround)
		r.Put("/{groundID}", h.UpdateGround)
		r.Delete("/{groundID}", h.DeleteGround)
		r.Patch("/{groundID}/toggle", h.ToggleGround)
	})

	r.Route("/nets", func(r chi.Router) {
		r.Get("/", h.ListAllNets)
		r.Post("/", h.CreateNet)
		r.Post("/ground/{groundID}", h.CreateNet)
		r.Put("/{netID}", h.UpdateNet)
		r.Delete("/{netID}", h.DeleteNet)
		r.Patch("/{netID}/toggle", h.ToggleNet)
	})
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data any, err error) {
	if err != nil {
		core.HandleError(w, r, err)
		return
	}
	core.OK(w, data)
}

func (h *Handler) ListActiveGrounds(w http.ResponseWriter, r *http.Request) {
	grounds, err := h.service.ListGrounds(r.Context(), true)
	h.respond(w, r, grounds, err)
}

func (h *Handler) ListAllGrounds(w http.ResponseWriter, r *http.Request) {
	grounds, err := h.service.ListGrounds(r.Context(), false)
	h.respond(w, r, grounds, err)
}

func (h *Handler) GetGround(w http.ResponseWriter, r *http.Request) {
	g, err := h.service.GetGround(r.Context(), chi.URLParam(r, "groundID"))
	h.respond(w, r, g, err)
}

func (h *Handler) CreateGround(w http.ResponseWriter, r *http.Request) {
	var req GroundRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	g, err := h.service.CreateGround(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, g)
}

func (h *Handler) UpdateGround(w http.ResponseWriter, r *http.Request) {
	var req GroundRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	g, err := h.service.UpdateGround(r.Context(), chi.URLParam(r, "groundID"), req)
	h.respond(w, r, g, err)
}

func (h *Handler) DeleteGround(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGround(r.Context(), chi.URLParam(r, "groundID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ToggleGround(w http.ResponseWriter, r *http.Request) {
	g, err := h.service.ToggleGround(r.Context(), chi.URLParam(r, "groundID"))
	h.respond(w, r, g, err)
}

func (h *Handler) ListAvailableNets(w http.ResponseWriter, r *http.Request) {
	nets, err := h.service.ListNets(r.Context(), NetFilter{AvailableOnly: true})
	h.respond(w, r, nets, err)
}

func (h *Handler) ListAllNets(w http.ResponseWriter, r *http.Request) {
	nets, err := h.service.ListNets(r.Context(), NetFilter{})
	h.respond(w, r, nets, err)
}

func (h *Handler) NetsOfGround(w http.ResponseWriter, r *http.Request) {
	nets, err := h.service.ListNets(r.Context(), NetFilter{GroundID: chi.URLParam(r, "groundID")})
	h.respond(w, r, nets, err)
}

func (h *Handler) AvailableNetsOfGround(w http.ResponseWriter, r *http.Request) {
	nets, err := h.service.ListNets(r.Context(), NetFilter{
		GroundID:      chi.URLParam(r, "groundID"),
		AvailableOnly: true,
	})
	h.respond(w, r, nets, err)
}

func (h *Handler) GetNet(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.GetNet(r.Context(), chi.URLParam(r, "netID"))
	h.respond(w, r, n, err)
}

func (h *Handler) CreateNet(w http.ResponseWriter, r *http.Request) {
	var req NetRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	n, err := h.service.CreateNet(r.Context(), chi.URLParam(r, "groundID"), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, n)
}

func (h *Handler) UpdateNet(w http.ResponseWriter, r *http.Request) {
	var req NetRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	n, err := h.service.UpdateNet(r.Context(), chi.URLParam(r, "netID"), req)
	h.respond(w, r, n, err)
}

func (h *Handler) DeleteNet(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteNet(r.Context(), chi.URLParam(r, "netID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ToggleNet(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.ToggleNet(r.Context(), chi.URLParam(r, "netID"))
	h.respond(w, r, n, err)
}
