// AngelaMos | 2026
// service_test.go

package career

import (
	"context"
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
)

func TestApplyStartsPending(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Create", mock.Anything, CricketCoach, mock.MatchedBy(func(a *Application) bool {
		return a.OnboardStatus == OnboardPending && a.JobStatus == JobApplied &&
			a.Email == "rahul@club.in"
	})).Return(nil)

	resp, err := NewService(repo, nil).Apply(context.Background(), CricketCoach, ApplyRequest{
		Name: "Rahul", Email: " Rahul@Club.in ", Phone: "9876543210",
		Details: "Level 2 coach", HomeAddress: "Pune", ExperienceYears: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "cricket-coaches", resp.Kind)
	repo.AssertExpectations(t)
}

func TestUpdateStatus(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name        string
		req         StatusRequest
		wantOnboard string
		wantJob     string
		wantErr     error
	}{
		{"job only", StatusRequest{JobStatus: JobInterviewScheduled}, OnboardPending, JobInterviewScheduled, nil},
		{"both", StatusRequest{OnboardStatus: OnboardOnboarded, JobStatus: JobHired}, OnboardOnboarded, JobHired, nil},
		{"neither", StatusRequest{}, "", "", core.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			repo.On("GetByID", mock.Anything, GroundStaff, id).Return(&Application{
				ID: id, OnboardStatus: OnboardPending, JobStatus: JobApplied,
			}, nil)
			repo.On("UpdateStatus", mock.Anything, GroundStaff, mock.Anything).Return(nil)

			resp, err := NewService(repo, nil).UpdateStatus(context.Background(), GroundStaff, id, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOnboard, resp.OnboardStatus)
			assert.Equal(t, tt.wantJob, resp.JobStatus)
		})
	}
}

func TestDeleteMissing(t *testing.T) {
	id := uuid.NewString()
	repo := new(mockRepository)
	repo.On("Delete", mock.Anything, GroundStaff, id).Return(core.ErrNotFound)

	err := NewService(repo, nil).Delete(context.Background(), GroundStaff, id)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestCareerHandlers(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Create", mock.Anything, GroundStaff, mock.Anything).Return(core.DuplicateError("email"))

	r := chi.NewRouter()
	NewHandler(NewService(repo, nil)).RegisterRoutes(r)

	body := `{"name":"Suresh","email":"s@club.in","phone":"9876543210",` +
		`"details":"Groundsman","home_address":"Nagpur","experience_years":3}`

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/careers/ground-staff", strings.NewReader(body)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/careers/umpires", strings.NewReader(body)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
