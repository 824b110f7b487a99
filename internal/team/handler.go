// AngelaMos | 2026
// handler.go

package team

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

func (h *Handler) RegisterRoutes(r chi.Router, authenticator func(http.Handler) http.Handler) {
	r.Route("/teams", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/skill/{skillLevel}", h.BySkillLevel)
		r.Get("/{teamID}", h.Get)
		r.Get("/{teamID}/players", h.Players)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Post("/", h.Create)
			r.Put("/{teamID}", h.Update)
			r.Delete("/{teamID}", h.Delete)
			r.Post("/{teamID}/players", h.AddPlayer)
			r.Put("/{teamID}/players/{playerID}", h.UpdatePlayer)
			r.Delete("/{teamID}/players/{playerID}", h.RemovePlayer)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	teams, err := h.service.List(r.Context(), q.Get("name"), q.Get("skill_level"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, teams)
}

func (h *Handler) BySkillLevel(w http.ResponseWriter, r *http.Request) {
	teams, err := h.service.List(r.Context(), "", chi.URLParam(r, "skillLevel"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, teams)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Get(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, t)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	t, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, t)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	t, err := h.service.Update(r.Context(), chi.URLParam(r, "teamID"), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, t)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "teamID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	players, err := h.service.Players(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, players)
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.AddPlayer(r.Context(), chi.URLParam(r, "teamID"), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, p)
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	p, err := h.service.UpdatePlayer(r.Context(),
		chi.URLParam(r, "teamID"), chi.URLParam(r, "playerID"), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, p)
}

func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemovePlayer(r.Context(), chi.URLParam(r, "teamID"), chi.URLParam(r, "playerID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}
