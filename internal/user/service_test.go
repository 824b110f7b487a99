// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cricketacademy/academy-api/internal/auth"
	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/middleware"
)

func TestCreateRegistersPendingStudent(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
		return u.Email == "virat@example.com" &&
			u.Role == RoleStudent &&
			u.Status == StatusPending &&
			u.IsActive &&
			u.ExperienceLevel == LevelAdvanced
	})).Return(nil)

	info, err := svc.Create(context.Background(), auth.NewUser{
		Name:            " Virat ",
		Email:           "Virat@Example.com",
		Phone:           "9876543210",
		Age:             21,
		ExperienceLevel: "advanced",
		PasswordHash:    "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "Virat", info.Name)
	assert.Equal(t, StatusPending, info.Status)
	repo.AssertExpectations(t)
}

func TestCreateSurfacesDuplicate(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(core.DuplicateError("phone"))

	_, err := svc.Create(context.Background(), auth.NewUser{Email: "a@b.co"})
	require.ErrorIs(t, err, core.ErrDuplicateKey)
}

func TestUpdateUserStatusSync(t *testing.T) {
	tests := []struct {
		name        string
		from        string
		to          string
		wantActive  bool
		bumpVersion bool
	}{
		{"activate pending", StatusPending, StatusActive, true, false},
		{"deactivate active", StatusActive, StatusInactive, false, true},
		{"reactivate", StatusInactive, StatusActive, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			svc := NewService(repo)

			existing := &User{ID: "u1", Status: tt.from, IsActive: tt.from != StatusInactive}
			repo.On("GetByID", mock.Anything, "u1").Return(existing, nil)
			repo.On("Update", mock.Anything, existing).Return(nil)
			if tt.bumpVersion {
				repo.On("IncrementTokenVersion", mock.Anything, "u1").Return(nil)
			}

			status := tt.to
			got, err := svc.UpdateUser(context.Background(), "u1", AdminUpdateUserRequest{Status: &status})
			require.NoError(t, err)
			assert.Equal(t, tt.to, got.Status)
			assert.Equal(t, tt.wantActive, got.IsActive)
			repo.AssertExpectations(t)
		})
	}
}

func TestCanDeleteUser(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "admin-2").Return(&User{ID: "admin-2", Role: RoleAdmin}, nil)
	repo.On("GetByID", mock.Anything, "student").Return(&User{ID: "student", Role: RoleStudent}, nil)

	assert.ErrorIs(t, svc.CanDeleteUser(context.Background(), "admin-1", "admin-1"), core.ErrForbidden)
	assert.ErrorIs(t, svc.CanDeleteUser(context.Background(), "admin-1", "admin-2"), core.ErrForbidden)
	assert.NoError(t, svc.CanDeleteUser(context.Background(), "admin-1", "student"))
}

func TestListUsersHandler(t *testing.T) {
	repo := new(mockRepository)
	h := NewHandler(NewService(repo))

	repo.On("List", mock.Anything, ListUsersParams{
		Page: 2, PageSize: 5, Status: "ACTIVE", ExperienceLevel: "BEGINNER",
	}).Return([]User{{ID: "u1", Email: "a@b.co"}}, 6, nil)

	r := chi.NewRouter()
	h.RegisterAdminRoutes(r)

	req := httptest.NewRequest(http.MethodGet,
		"/users?page=2&page_size=5&status=ACTIVE&experience_level=BEGINNER", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool           `json:"success"`
		Data    []UserResponse `json:"data"`
		Meta    core.PageMeta  `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 1)
	assert.Equal(t, 2, body.Meta.TotalPages)
}

func TestUpdateMeValidation(t *testing.T) {
	repo := new(mockRepository)
	h := NewHandler(NewService(repo))

	req := httptest.NewRequest(http.MethodPut, "/users/me", strings.NewReader(`{"age": 3}`))
	req = req.WithContext(middleware.WithClaims(req.Context(), &middleware.AccessTokenClaims{UserID: "u1"}))
	rec := httptest.NewRecorder()

	h.UpdateMe(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
