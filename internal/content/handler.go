// AngelaMos | 2026
// handler.go

package content

import (
	"encoding/json"
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
	r.Get("/homepage", h.Homepage)
}

// RegisterAdminRoutes expects authentication and the admin check to be
// applied by the caller.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/homepage", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)
			r.Post("/", h.CreatePlayer)
			r.Get("/{playerID}", h.GetPlayer)
			r.Put("/{playerID}", h.UpdatePlayer)
			r.Delete("/{playerID}", h.DeletePlayer)
		})

		r.Route("/facilities", func(r chi.Router) {
			r.Get("/", h.ListFacilities)
			r.Post("/", h.CreateFacility)
			r.Get("/{facilityID}", h.GetFacility)
			r.Put("/{facilityID}", h.UpdateFacility)
			r.Delete("/{facilityID}", h.DeleteFacility)
		})

		r.Get("/hero-image", h.HeroImage)
		r.Put("/hero-image", h.SetHeroImage)
		r.Delete("/hero-image", h.ClearHeroImage)

		r.Post("/reorder/players", h.reorder(ReorderPlayers))
		r.Post("/reorder/facilities", h.reorder(ReorderFacilities))
	})
}

func (h *Handler) Homepage(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.Homepage(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, page)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListPlayers(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetPlayer(r.Context(), chi.URLParam(r, "playerID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req StarPlayerRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CreatePlayer(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var req StarPlayerRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.UpdatePlayer(r.Context(), chi.URLParam(r, "playerID"), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePlayer(r.Context(), chi.URLParam(r, "playerID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListFacilities(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetFacility(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetFacility(r.Context(), chi.URLParam(r, "facilityID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req FacilityRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CreateFacility(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	var req FacilityRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateFacility(r.Context(), chi.URLParam(r, "facilityID"), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteFacility(r.Context(), chi.URLParam(r, "facilityID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) HeroImage(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.HeroImage(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) SetHeroImage(w http.ResponseWriter, r *http.Request) {
	var req HeroImageRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.SetHeroImage(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) ClearHeroImage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearHeroImage(r.Context()); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

// reorder takes a bare JSON array, so it validates with Var instead of
// going through DecodeJSON.
func (h *Handler) reorder(target ReorderTarget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var items []SortItem
		if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
			core.BadRequest(w, "invalid request body")
			return
		}
		if err := core.Validate.Var(items, "required,min=1,dive"); err != nil {
			core.BadRequest(w, core.FormatValidationError(err))
			return
		}

		resp, err := h.service.Reorder(r.Context(), target, items)
		if err != nil {
			core.HandleError(w, r, err)
			return
		}

		core.OK(w, resp)
	}
}
