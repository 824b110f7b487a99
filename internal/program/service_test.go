// AngelaMos | 2026
// service_test.go

package program

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

func TestSeedSuggested(t *testing.T) {
	t.Run("first run writes the starter catalog", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("SeedSuggested", mock.Anything, mock.MatchedBy(func(ps []Program) bool {
			if len(ps) != 16 {
				return false
			}
			seen := map[string]bool{}
			for _, p := range ps {
				if !p.IsSuggested || !p.IsActive || p.Price != suggestedPrice || seen[p.ID] {
					return false
				}
				seen[p.ID] = true
			}
			return ps[0].Name == "Beginner Coaching" && ps[0].Duration == ps[0].Format
		})).Return(16, nil)

		created, err := NewService(repo, nil).SeedSuggested(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 16, created)
	})

	t.Run("existing catalog is left alone", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("SeedSuggested", mock.Anything, mock.Anything).Return(0, nil)
		repo.On("List", mock.Anything, ProgramFilter{}).Return([]Program{{ID: "p1"}}, nil)

		programs, err := NewService(repo, nil).ListWithSuggested(context.Background())
		require.NoError(t, err)
		assert.Len(t, programs, 1)
	})
}

func TestAssignCoach(t *testing.T) {
	programID := uuid.NewString()
	coachID := uuid.NewString()

	t.Run("unknown coach", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, programID).Return(&Program{ID: programID}, nil)
		repo.On("GetCoach", mock.Anything, coachID).Return(nil, core.ErrNotFound)

		_, err := NewService(repo, nil).AssignCoach(context.Background(), programID, coachID)
		require.ErrorIs(t, err, core.ErrNotFound)
		repo.AssertNotCalled(t, "AssignCoach", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("assigned coach is listed", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetByID", mock.Anything, programID).Return(&Program{ID: programID, Name: "Batting"}, nil)
		repo.On("GetCoach", mock.Anything, coachID).Return(&Coach{ID: coachID}, nil)
		repo.On("AssignCoach", mock.Anything, programID, coachID).Return(nil)
		repo.On("CoachesOf", mock.Anything, programID).Return([]Coach{{ID: coachID, Name: "Ravi"}}, nil)

		resp, err := NewService(repo, nil).AssignCoach(context.Background(), programID, coachID)
		require.NoError(t, err)
		require.Len(t, resp.Coaches, 1)
		assert.Equal(t, "Ravi", resp.Coaches[0].Name)
		assert.Equal(t, []string{}, resp.Coaches[0].Specifications)
	})
}

func TestCreateCoachNormalises(t *testing.T) {
	repo := new(mockRepository)
	repo.On("CreateCoach", mock.Anything, mock.MatchedBy(func(c *Coach) bool {
		return c.Email == "coach@academy.in" && c.IsAvailable
	})).Return(nil)

	resp, err := NewService(repo, nil).CreateCoach(context.Background(), CoachRequest{
		Name: " Anil ", Email: " Coach@Academy.IN ", Phone: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anil", resp.Name)
}

func TestProgramHandlers(t *testing.T) {
	repo := new(mockRepository)
	repo.On("List", mock.Anything, ProgramFilter{ActiveOnly: true, Level: "Beginner"}).
		Return([]Program{{ID: "p1", Name: "Holiday Camps", Level: "Beginner"}}, nil)

	r := chi.NewRouter()
	NewHandler(NewService(repo, nil)).RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/programs/search", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/programs/level/Beginner", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Holiday Camps")
}
