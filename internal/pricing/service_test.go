// AngelaMos | 2026
// service_test.go

package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cricketacademy/academy-api/internal/core"
)

func bowlingMachine() *AddOn {
	return &AddOn{
		ID:                    uuid.NewString(),
		Name:                  "Bowling machine",
		Category:              "EQUIPMENT",
		BasePrice:             100,
		HourlyRate:            50,
		PerUnitRate:           20,
		MaxQuantityPerBooking: 3,
		IsAvailable:           true,
		WeekendMultiplier:     1.5,
		TaxRate:               18,
		Currency:              "INR",
	}
}

func TestAddOnQuote(t *testing.T) {
	tests := []struct {
		name     string
		hours    float64
		weekend  bool
		quantity int
		wantQty  int
		subtotal float64
		tax      float64
		total    float64
	}{
		{"weekday", 2, false, 2, 2, 240, 43.2, 283.2},
		{"weekend clamps quantity", 2, true, 5, 3, 390, 70.2, 460.2},
		{"zero quantity becomes one", 0, false, 0, 1, 120, 21.6, 141.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := bowlingMachine().Quote(tt.hours, tt.weekend, tt.quantity)
			assert.Equal(t, tt.wantQty, q.Quantity)
			assert.InDelta(t, tt.subtotal, q.Subtotal, 0.001)
			assert.InDelta(t, tt.tax, q.Tax, 0.001)
			assert.InDelta(t, tt.total, q.Total, 0.001)
			assert.Equal(t, "INR", q.Currency)
		})
	}
}

func hourlyNet() *Package {
	return &Package{
		ID:                      uuid.NewString(),
		Name:                    "Net hour",
		PackageType:             "NET",
		DurationType:            DurationHourly,
		BasePrice:               1000,
		DiscountPercentage:      10,
		PeakHourMultiplier:      1.2,
		WeekendMultiplier:       1.5,
		WeekdayDiscount:         10,
		GroupDiscountThreshold:  10,
		GroupDiscountPercentage: 5,
		IsActive:                true,
	}
}

func TestPackageQuote(t *testing.T) {
	tests := []struct {
		name      string
		pkg       func() *Package
		hours     float64
		players   int
		weekend   bool
		peak      bool
		total     float64
		saved     float64
		groupDisc bool
	}{
		{"weekday off-peak", hourlyNet, 2, 4, false, false, 1620, 380, false},
		{"weekend peak with group", hourlyNet, 2, 12, true, true, 3078, 0, true},
		{"group threshold is inclusive", hourlyNet, 1, 10, true, false, 1282.5, 0, true},
		{"flat package ignores hours", func() *Package {
			p := hourlyNet()
			p.DurationType = DurationFullDay
			return p
		}, 5, 1, false, false, 810, 190, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.pkg().Quote(tt.hours, tt.players, tt.weekend, tt.peak)
			assert.InDelta(t, tt.total, q.Total, 0.001)
			assert.InDelta(t, tt.saved, q.AmountSaved, 0.001)
			assert.Equal(t, tt.groupDisc, q.GroupDiscount)
		})
	}
}

func TestQuoteRejects(t *testing.T) {
	ctx := context.Background()

	t.Run("unavailable add-on", func(t *testing.T) {
		a := bowlingMachine()
		a.IsAvailable = false
		repo := new(mockRepository)
		repo.On("GetAddOn", mock.Anything, a.ID).Return(a, nil)

		_, err := NewService(repo, nil).QuoteAddOn(ctx, a.ID, 1, false, 1)
		require.ErrorIs(t, err, core.ErrConflict)
	})

	t.Run("inactive package", func(t *testing.T) {
		p := hourlyNet()
		p.IsActive = false
		repo := new(mockRepository)
		repo.On("GetPackage", mock.Anything, p.ID).Return(p, nil)

		_, err := NewService(repo, nil).QuotePackage(ctx, p.ID, 1, 1, false, false)
		require.ErrorIs(t, err, core.ErrConflict)
	})

	t.Run("negative hours", func(t *testing.T) {
		repo := new(mockRepository)
		_, err := NewService(repo, nil).QuoteAddOn(ctx, uuid.NewString(), -1, false, 1)
		require.ErrorIs(t, err, core.ErrInvalidInput)
		repo.AssertNotCalled(t, "GetAddOn", mock.Anything, mock.Anything)
	})

	t.Run("unknown package", func(t *testing.T) {
		id := uuid.NewString()
		repo := new(mockRepository)
		repo.On("GetPackage", mock.Anything, id).Return(nil, core.ErrNotFound)

		_, err := NewService(repo, nil).QuotePackage(ctx, id, 1, 1, false, false)
		require.ErrorIs(t, err, core.ErrNotFound)
	})
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := new(mockRepository)
	repo.On("CreateAddOn", mock.Anything, mock.MatchedBy(func(a *AddOn) bool {
		return a.IsAvailable && a.TaxRate == 18 && a.Currency == "INR" &&
			a.WeekendMultiplier == 1 && a.MaxQuantityPerBooking == 1
	})).Return(nil)
	repo.On("CreatePackage", mock.Anything, mock.MatchedBy(func(p *Package) bool {
		return p.IsActive && p.PeakHourMultiplier == 1 && p.GroupDiscountThreshold == 1
	})).Return(nil)

	svc := NewService(repo, nil)
	_, err := svc.CreateAddOn(context.Background(), AddOnRequest{
		Name: "Scorer", Category: "FACILITY", BasePrice: 300,
	})
	require.NoError(t, err)

	pkg, err := svc.CreatePackage(context.Background(), PackageRequest{
		Name: "Ground day", PackageType: "GROUND", DurationType: DurationFullDay,
		BasePrice: 5000, DiscountPercentage: 20,
	})
	require.NoError(t, err)
	assert.InDelta(t, 4000, pkg.DiscountedPrice, 0.001)
	repo.AssertExpectations(t)
}

func TestPricingHandlers(t *testing.T) {
	a := bowlingMachine()
	repo := new(mockRepository)
	repo.On("GetAddOn", mock.Anything, a.ID).Return(a, nil)
	repo.On("ListPackages", mock.Anything, true, "NET").Return([]Package{*hourlyNet()}, nil)

	r := chi.NewRouter()
	NewHandler(NewService(repo, nil)).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/add-ons/"+a.ID+"/quote?hours=2&weekend=true&quantity=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":460.2`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pricing-packages/type/NET", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Net hour")
}
