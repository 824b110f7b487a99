// AngelaMos | 2026
// handler.go

package user

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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/users", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/me", h.GetMe)
		r.Put("/me", h.UpdateMe)
		r.Delete("/me", h.DeleteMe)
	})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetMe(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req UpdateMeRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.UpdateMe(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) DeleteMe(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMe(r.Context(), middleware.GetUserID(r.Context())); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

// RegisterAdminRoutes mounts user administration. The caller is expected
// to have applied authentication and the admin role check already.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/statistics", h.Statistics)
		r.Get("/{userID}", h.GetUser)
		r.Put("/{userID}", h.UpdateUser)
		r.Post("/{userID}/deactivate", h.DeactivateUser)
		r.Delete("/{userID}", h.DeleteUser)
	})
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := ListUsersParams{
		Page:            core.QueryInt(r, "page", 1),
		PageSize:        core.QueryInt(r, "page_size", 20),
		Search:          q.Get("search"),
		Role:            q.Get("role"),
		Status:          q.Get("status"),
		ExperienceLevel: q.Get("experience_level"),
	}
	params.Normalize()

	users, total, err := h.service.ListUsers(r.Context(), params)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Paginated(
		w,
		ToUserResponseList(users),
		params.Page,
		params.PageSize,
		int64(total),
	)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req AdminCreateUserRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, ToUserResponse(user))
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req AdminUpdateUserRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "userID"), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.DeactivateUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, ToUserResponse(user))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.GetUserID(r.Context())
	targetID := chi.URLParam(r, "userID")

	if err := h.service.CanDeleteUser(r.Context(), requesterID, targetID); err != nil {
		core.HandleError(w, r, err)
		return
	}

	if err := h.service.DeleteUser(r.Context(), targetID); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, stats)
}
