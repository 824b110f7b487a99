// AngelaMos | 2026
// handler.go

package auth

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

// RegisterRoutes mounts /auth and /verify. strict wraps the endpoints that
// accept credentials or codes and is usually a tighter rate limiter.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	strict func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Get("/validate-email", h.ValidateEmail)
		r.Get("/validate-phone", h.ValidatePhone)
		r.Get("/experience-levels", h.ExperienceLevels)

		r.Group(func(r chi.Router) {
			r.Use(strict)
			r.Post("/login", h.Login)
			r.Post("/register", h.Register)
			r.Post("/refresh", h.Refresh)
			r.Post("/forgot-password", h.ForgotPassword)
			r.Post("/reset-password", h.ResetPassword)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.GetMe)
			r.Post("/logout", h.Logout)
			r.Post("/logout-all", h.LogoutAll)
			r.Get("/sessions", h.GetSessions)
			r.Delete("/sessions/{sessionID}", h.RevokeSession)
			r.Get("/activity", h.GetActivity)
			r.Post("/change-password", h.ChangePassword)
		})
	})

	r.Route("/verify", func(r chi.Router) {
		r.With(strict).Post("/verify-otp", h.VerifyOTP)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.With(strict).Post("/send-otp", h.SendOTP)
			r.Get("/status", h.VerificationStatus)
		})
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req, r.UserAgent(), middleware.ClientIP(r))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), req, r.UserAgent(), middleware.ClientIP(r))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Refresh(r.Context(), req.RefreshToken, r.UserAgent(), middleware.ClientIP(r))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if r.ContentLength != 0 && !core.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Logout(r.Context(), req.RefreshToken, middleware.GetClaims(r.Context())); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.LogoutAll(r.Context(), middleware.GetUserID(r.Context())); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.GetActiveSessions(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, SessionsResponse{Sessions: sessions})
}

func (h *Handler) RevokeSession(w http.ResponseWriter, r *http.Request) {
	err := h.service.RevokeSession(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "sessionID"),
	)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.Activity(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, rows)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	err := h.service.ChangePassword(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetCurrentUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, user)
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, MessageResponse{
		Message: "if that email is registered, a reset link is on its way",
	})
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, MessageResponse{Message: "password has been reset"})
}

func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.SendOTP(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.VerifyOTP(r.Context(), req); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, MessageResponse{Message: "email verified"})
}

func (h *Handler) VerificationStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.VerificationStatus(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, status)
}

func (h *Handler) ValidateEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := core.Validate.Var(email, "required,email"); err != nil {
		core.BadRequest(w, "email must be a valid email")
		return
	}

	ok, err := h.service.EmailAvailable(r.Context(), email)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, AvailabilityResponse{Value: email, Available: ok})
}

func (h *Handler) ValidatePhone(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if err := core.Validate.Var(phone, "required,phone"); err != nil {
		core.BadRequest(w, "phone must be 10 to 15 digits")
		return
	}

	ok, err := h.service.PhoneAvailable(r.Context(), phone)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, AvailabilityResponse{Value: phone, Available: ok})
}

func (h *Handler) ExperienceLevels(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, ExperienceLevels)
}
