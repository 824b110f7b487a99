// AngelaMos | 2026
// handler.go

package booking

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
	optionalAuth func(http.Handler) http.Handler,
) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/slots", h.AvailableSlots)
		r.With(optionalAuth).Post("/", h.Create)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/mine", h.ListMine)
			r.Get("/{bookingID}", h.Get)
			r.Post("/{bookingID}/cancel", h.RequestCancellation)
		})
	})
}

// RegisterAdminRoutes expects authentication and the admin check to be
// applied by the caller.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/summary", h.Summary)
		r.Get("/date/{date}", h.ListByDate)
		r.Put("/{bookingID}", h.Update)
		r.Delete("/{bookingID}", h.Delete)
		r.Post("/{bookingID}/confirm", h.Confirm)
		r.Post("/{bookingID}/offline-payment", h.MarkOfflinePayment)
		r.Post("/{bookingID}/payment-failed", h.MarkPaymentFailed)
		r.Post("/{bookingID}/cancellation/approve", h.ApproveCancellation)
		r.Post("/{bookingID}/cancellation/reject", h.RejectCancellation)
	})
}

func actorFrom(r *http.Request) Actor {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		return Actor{}
	}
	return Actor{
		UserID: claims.UserID,
		Email:  claims.Email,
		Admin:  claims.Role == middleware.RoleAdmin,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req, actorFrom(r))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context(), chi.URLParam(r, "bookingID"), actorFrom(r))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListMine(r.Context(), actorFrom(r))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := h.service.AvailableSlots(r.Context(), q.Get("resource_id"), q.Get("date"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) RequestCancellation(w http.ResponseWriter, r *http.Request) {
	var req CancellationRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.RequestCancellation(
		r.Context(), chi.URLParam(r, "bookingID"), req.Reason, actorFrom(r))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := ListParams{
		Page:        core.QueryInt(r, "page", 1),
		PageSize:    core.QueryInt(r, "page_size", 20),
		Status:      q.Get("status"),
		BookingType: q.Get("booking_type"),
		Date:        q.Get("date"),
	}
	params.Normalize()

	bookings, total, err := h.service.List(r.Context(), params)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Paginated(w, bookings, params.Page, params.PageSize, int64(total))
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context())
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, sum)
}

func (h *Handler) ListByDate(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListByDate(
		r.Context(), chi.URLParam(r, "date"), r.URL.Query().Get("booking_type"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookingRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "bookingID"), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "bookingID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Confirm(r.Context(), chi.URLParam(r, "bookingID"), req.PaymentID)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) MarkOfflinePayment(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.MarkOfflinePayment(r.Context(), chi.URLParam(r, "bookingID"))
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) MarkPaymentFailed(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkPaymentFailed(r.Context(), chi.URLParam(r, "bookingID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ApproveCancellation(w http.ResponseWriter, r *http.Request) {
	var req ApproveCancellationRequest
	if r.ContentLength != 0 && !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.ApproveCancellation(r.Context(), chi.URLParam(r, "bookingID"), req.RefundAmount)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) RejectCancellation(w http.ResponseWriter, r *http.Request) {
	var req RejectCancellationRequest
	if r.ContentLength != 0 && !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.RejectCancellation(r.Context(), chi.URLParam(r, "bookingID"), req.Note)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, resp)
}
