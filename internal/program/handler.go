// AngelaMos | 2026
// handler.go

package program

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
	r.Route("/programs", func(r chi.Router) {
		r.Get("/", h.ListActive)
		r.Get("/active", h.ListActive)
		r.Get("/suggested", h.ListSuggested)
		r.Get("/search", h.Search)
		r.Get("/category/{category}", h.ByCategory)
		r.Get("/level/{level}", h.ByLevel)
		r.Get("/{programID}", h.Get)
		r.Get("/{programID}/coaches", h.CoachesOf)
	})

	r.Route("/coaches", func(r chi.Router) {
		r.Get("/", h.ListCoaches)
		r.Get("/available", h.ListAvailableCoaches)
		r.Get("/search", h.SearchCoaches)
		r.Get("/specialization/{specialization}", h.CoachesBySpecialization)
		r.Get("/{coachID}", h.GetCoach)
	})
}

// RegisterAdminRoutes expects authentication and the admin check to be
// applied by the caller.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/programs", func(r chi.Router) {
		r.Get("/", h.ListAll)
		r.Post("/", h.Create)
		r.Post("/initialize-suggested", h.SeedSuggested)
		r.Put("/{programID}", h.Update)
		r.Delete("/{programID}", h.Delete)
		r.Put("/{programID}/coaches/{coachID}", h.AssignCoach)
		r.Delete("/{programID}/coaches/{coachID}", h.UnassignCoach)
	})

	r.Route("/coaches", func(r chi.Router) {
		r.Post("/", h.CreateCoach)
		r.Put("/{coachID}", h.UpdateCoach)
		r.Delete("/{coachID}", h.DeleteCoach)
	})
}

func respond(w http.ResponseWriter, r *http.Request, data any, err error) {
	if err != nil {
		core.HandleError(w, r, err)
		return
	}
	core.OK(w, data)
}

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	programs, err := h.service.List(r.Context(), ProgramFilter{ActiveOnly: true})
	respond(w, r, programs, err)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	programs, err := h.service.ListWithSuggested(r.Context())
	respond(w, r, programs, err)
}

func (h *Handler) ListSuggested(w http.ResponseWriter, r *http.Request) {
	programs, err := h.service.List(r.Context(), ProgramFilter{SuggestedOnly: true, ActiveOnly: true})
	respond(w, r, programs, err)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		core.BadRequest(w, "keyword is required")
		return
	}
	programs, err := h.service.List(r.Context(), ProgramFilter{ActiveOnly: true, Keyword: keyword})
	respond(w, r, programs, err)
}

func (h *Handler) ByCategory(w http.ResponseWriter, r *http.Request) {
	programs, err := h.service.List(r.Context(), ProgramFilter{
		ActiveOnly: true,
		Category:   chi.URLParam(r, "category"),
	})
	respond(w, r, programs, err)
}

func (h *Handler) ByLevel(w http.ResponseWriter, r *http.Request) {
	programs, err := h.service.List(r.Context(), ProgramFilter{
		ActiveOnly: true,
		Level:      chi.URLParam(r, "level"),
	})
	respond(w, r, programs, err)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), chi.URLParam(r, "programID"))
	respond(w, r, p, err)
}

func (h *Handler) CoachesOf(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.CoachesOf(r.Context(), chi.URLParam(r, "programID"))
	respond(w, r, coaches, err)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProgramRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, p)
}

func (h *Handler) SeedSuggested(w http.ResponseWriter, r *http.Request) {
	created, err := h.service.SeedSuggested(r.Context())
	respond(w, r, SeedResponse{Created: created}, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req ProgramRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.Update(r.Context(), chi.URLParam(r, "programID"), req)
	respond(w, r, p, err)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "programID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) AssignCoach(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.AssignCoach(r.Context(), chi.URLParam(r, "programID"), chi.URLParam(r, "coachID"))
	respond(w, r, p, err)
}

func (h *Handler) UnassignCoach(w http.ResponseWriter, r *http.Request) {
	err := h.service.UnassignCoach(r.Context(), chi.URLParam(r, "programID"), chi.URLParam(r, "coachID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.ListCoaches(r.Context(), CoachFilter{})
	respond(w, r, coaches, err)
}

func (h *Handler) ListAvailableCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.ListCoaches(r.Context(), CoachFilter{AvailableOnly: true})
	respond(w, r, coaches, err)
}

func (h *Handler) SearchCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.ListCoaches(r.Context(), CoachFilter{Keyword: r.URL.Query().Get("keyword")})
	respond(w, r, coaches, err)
}

func (h *Handler) CoachesBySpecialization(w http.ResponseWriter, r *http.Request) {
	coaches, err := h.service.ListCoaches(r.Context(), CoachFilter{
		Specialization: chi.URLParam(r, "specialization"),
	})
	respond(w, r, coaches, err)
}

func (h *Handler) GetCoach(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCoach(r.Context(), chi.URLParam(r, "coachID"))
	respond(w, r, c, err)
}

func (h *Handler) CreateCoach(w http.ResponseWriter, r *http.Request) {
	var req CoachRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	c, err := h.service.CreateCoach(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, c)
}

func (h *Handler) UpdateCoach(w http.ResponseWriter, r *http.Request) {
	var req CoachRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	c, err := h.service.UpdateCoach(r.Context(), chi.URLParam(r, "coachID"), req)
	respond(w, r, c, err)
}

func (h *Handler) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCoach(r.Context(), chi.URLParam(r, "coachID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}
