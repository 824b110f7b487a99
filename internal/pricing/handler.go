// AngelaMos | 2026
// handler.go

package pricing

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
	r.Route("/add-ons", func(r chi.Router) {
		r.Get("/", h.ListAvailableAddOns)
		r.Get("/category/{category}", h.AddOnsByCategory)
		r.Get("/{addOnID}", h.GetAddOn)
		r.Get("/{addOnID}/quote", h.QuoteAddOn)
	})

	r.Route("/pricing-packages", func(r chi.Router) {
		r.Get("/", h.ListActivePackages)
		r.Get("/type/{packageType}", h.PackagesByType)
		r.Get("/{packageID}", h.GetPackage)
		r.Get("/{packageID}/quote", h.QuotePackage)
	})
}

// RegisterAdminRoutes expects authentication and the admin check to be
// applied by the caller.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Route("/add-ons", func(r chi.Router) {
		r.Get("/", h.ListAllAddOns)
		r.Post("/", h.CreateAddOn)
		r.Put("/{addOnID}", h.UpdateAddOn)
		r.Delete("/{addOnID}", h.DeleteAddOn)
	})

	r.Route("/pricing-packages", func(r chi.Router) {
		r.Get("/", h.ListAllPackages)
		r.Post("/", h.CreatePackage)
		r.Put("/{packageID}", h.UpdatePackage)
		r.Delete("/{packageID}", h.DeletePackage)
	})
}

func respond[T any](w http.ResponseWriter, r *http.Request, v T, err error) {
	if err != nil {
		core.HandleError(w, r, err)
		return
	}
	core.OK(w, v)
}

func (h *Handler) ListAvailableAddOns(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListAddOns(r.Context(), true, r.URL.Query().Get("category"))
	respond(w, r, resp, err)
}

func (h *Handler) ListAllAddOns(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListAddOns(r.Context(), false, r.URL.Query().Get("category"))
	respond(w, r, resp, err)
}

func (h *Handler) AddOnsByCategory(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListAddOns(r.Context(), true, chi.URLParam(r, "category"))
	respond(w, r, resp, err)
}

func (h *Handler) GetAddOn(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAddOn(r.Context(), chi.URLParam(r, "addOnID"))
	respond(w, r, resp, err)
}

func (h *Handler) QuoteAddOn(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.QuoteAddOn(
		r.Context(),
		chi.URLParam(r, "addOnID"),
		core.QueryFloat(r, "hours", 0),
		core.QueryBool(r, "weekend"),
		core.QueryInt(r, "quantity", 1),
	)
	respond(w, r, resp, err)
}

func (h *Handler) CreateAddOn(w http.ResponseWriter, r *http.Request) {
	var req AddOnRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CreateAddOn(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) UpdateAddOn(w http.ResponseWriter, r *http.Request) {
	var req AddOnRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateAddOn(r.Context(), chi.URLParam(r, "addOnID"), req)
	respond(w, r, resp, err)
}

func (h *Handler) DeleteAddOn(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAddOn(r.Context(), chi.URLParam(r, "addOnID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ListActivePackages(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListPackages(r.Context(), true, r.URL.Query().Get("package_type"))
	respond(w, r, resp, err)
}

func (h *Handler) ListAllPackages(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListPackages(r.Context(), false, r.URL.Query().Get("package_type"))
	respond(w, r, resp, err)
}

func (h *Handler) PackagesByType(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListPackages(r.Context(), true, chi.URLParam(r, "packageType"))
	respond(w, r, resp, err)
}

func (h *Handler) GetPackage(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetPackage(r.Context(), chi.URLParam(r, "packageID"))
	respond(w, r, resp, err)
}

func (h *Handler) QuotePackage(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.QuotePackage(
		r.Context(),
		chi.URLParam(r, "packageID"),
		core.QueryFloat(r, "hours", 1),
		core.QueryInt(r, "players", 1),
		core.QueryBool(r, "weekend"),
		core.QueryBool(r, "peak"),
	)
	respond(w, r, resp, err)
}

func (h *Handler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req PackageRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.CreatePackage(r.Context(), req)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.Created(w, resp)
}

func (h *Handler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var req PackageRequest
	if !core.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.UpdatePackage(r.Context(), chi.URLParam(r, "packageID"), req)
	respond(w, r, resp, err)
}

func (h *Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePackage(r.Context(), chi.URLParam(r, "packageID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}
