// AngelaMos | 2026
// handler.go

package payment

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/middleware"
)

const maxWebhookBody = 1 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
	optionalAuth func(http.Handler) http.Handler,
) {
	r.Route("/payments", func(r chi.Router) {
		r.Get("/methods", h.Methods)
		r.Post("/webhook/razorpay", h.Webhook)

		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Post("/razorpay/order", h.CreateOrder)
			r.Post("/razorpay/verify", h.Verify)
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/allowed/{userID}", h.Allowed)
			r.Get("/razorpay/status/{paymentID}", h.Status)
		})
	})
}

// RegisterAdminRoutes expects authentication and the admin check to be
// applied by the caller.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Get("/config", h.GetSettings)
		r.Put("/config", h.UpdateSettings)
		r.Post("/razorpay/refund", h.Refund)
	})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CreateOrder(r.Context(), req, middleware.GetUserID(r.Context()))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Verify(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		core.BadRequest(w, "webhook body too large or unreadable")
		return
	}

	if err := h.service.HandleWebhook(r.Context(), body, r.Header.Get("X-Razorpay-Signature")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, map[string]string{"status": "ok"})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Status(r.Context(), chi.URLParam(r, "paymentID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Refund(w http.ResponseWriter, r *http.Request) {
	var req RefundRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Refund(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Methods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.Methods(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, methods)
}

// Allowed answers for the caller only, unless the caller is an admin.
func (h *Handler) Allowed(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID != middleware.GetUserID(r.Context()) && !middleware.IsAdmin(r.Context()) {
		core.Forbidden(w, "cannot inspect another user's payment access")
		return
	}

	resp, err := h.service.Allowed(r.Context(), userID)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Settings(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, settings)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	settings, err := h.service.UpdateSettings(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, settings)
}
