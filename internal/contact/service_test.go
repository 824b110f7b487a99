// AngelaMos | 2026
// service_test.go

package contact

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/middleware"
)

func frontDesk() *Info {
	return &Info{
		ID:      uuid.NewString(),
		Address: "12 Stadium Road, Pune",
		Phone:   "+91 20 5555 0101",
		Email:   "desk@academy.test",
	}
}

func TestServiceGet(t *testing.T) {
	c := frontDesk()
	missing := uuid.NewString()

	repo := new(mockRepository)
	repo.On("Get", mock.Anything, c.ID).Return(c, nil)
	repo.On("Get", mock.Anything, missing).
		Return(nil, fmt.Errorf("get contact info: %w", core.ErrNotFound))
	svc := NewService(repo, nil)

	resp, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Phone, resp.Phone)

	_, err = svc.Get(context.Background(), missing)
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = svc.Get(context.Background(), "not-a-uuid")
	require.ErrorIs(t, err, core.ErrNotFound)
	repo.AssertNumberOfCalls(t, "Get", 2)
}

func TestServiceCreateNormalizes(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *Info) bool {
		return c.ID != "" && c.Address == "1 Pavilion Lane" && c.Email == "hello@academy.test"
	})).Return(nil)

	resp, err := NewService(repo, nil).Create(context.Background(), InfoRequest{
		Address: "  1 Pavilion Lane ",
		Phone:   "12345",
		Email:   " Hello@Academy.TEST",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello@academy.test", resp.Email)
	repo.AssertExpectations(t)
}

func TestServiceUpdateAndDeleteMissing(t *testing.T) {
	id := uuid.NewString()
	repo := new(mockRepository)
	repo.On("Update", mock.Anything, mock.Anything).
		Return(fmt.Errorf("update contact info: %w", core.ErrNotFound))
	repo.On("Delete", mock.Anything, id).
		Return(fmt.Errorf("delete contact info: %w", core.ErrNotFound))
	svc := NewService(repo, nil)

	_, err := svc.Update(context.Background(), id, InfoRequest{Address: "a", Phone: "1", Email: "a@b.co"})
	require.ErrorIs(t, err, core.ErrNotFound)

	err = svc.Delete(context.Background(), id)
	require.ErrorIs(t, err, core.ErrNotFound)
}

// roleFromHeader stands in for the bearer authenticator.
func roleFromHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if role := r.Header.Get("X-Role"); role != "" {
			r = r.WithContext(middleware.WithClaims(r.Context(),
				&middleware.AccessTokenClaims{UserID: "u1", Role: role}))
		}
		next.ServeHTTP(w, r)
	})
}

func TestContactHandlers(t *testing.T) {
	c := frontDesk()
	repo := new(mockRepository)
	repo.On("List", mock.Anything).Return([]Info{*c}, nil)
	repo.On("Delete", mock.Anything, c.ID).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	r := chi.NewRouter()
	NewHandler(NewService(repo, nil)).RegisterRoutes(r, roleFromHeader)

	body := `{"address":"1 Pavilion Lane","phone":"12345","email":"hello@academy.test"}`

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		role   string
		want   int
	}{
		{"anyone can list", http.MethodGet, "/contact", "", "", http.StatusOK},
		{"anonymous create rejected", http.MethodPost, "/contact", body, "", http.StatusUnauthorized},
		{"student create forbidden", http.MethodPost, "/contact", body, middleware.RoleStudent, http.StatusForbidden},
		{"student delete forbidden", http.MethodDelete, "/contact/" + c.ID, "", middleware.RoleStudent, http.StatusForbidden},
		{"admin create", http.MethodPost, "/contact", body, middleware.RoleAdmin, http.StatusCreated},
		{"admin create invalid email", http.MethodPost, "/contact", `{"address":"x","phone":"1","email":"nope"}`, middleware.RoleAdmin, http.StatusBadRequest},
		{"admin delete", http.MethodDelete, "/contact/" + c.ID, "", middleware.RoleAdmin, http.StatusNoContent},
		{"admin delete unknown", http.MethodDelete, "/contact/bad-id", "", middleware.RoleAdmin, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.role != "" {
				req.Header.Set("X-Role", tt.role)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	repo.AssertNumberOfCalls(t, "Create", 1)
	repo.AssertNumberOfCalls(t, "Delete", 1)
}
