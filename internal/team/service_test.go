// AngelaMos | 2026
// service_test.go

package team

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

func TestCreateAppliesDefaults(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(tm *Team) bool {
		return tm.TeamSize == 11 && tm.SkillLevel == "AMATEUR" &&
			tm.AgeGroup == "ADULT" && tm.MembershipStatus == MembershipActive &&
			tm.CaptainEmail == "cap@club.in"
	})).Return(nil)

	resp, err := NewService(repo, nil).Create(context.Background(), TeamRequest{
		Name: " Strikers ", CaptainName: "Cap", CaptainEmail: "Cap@Club.in",
	})
	require.NoError(t, err)
	assert.Equal(t, "Strikers", resp.Name)
	repo.AssertExpectations(t)
}

func TestAddPlayer(t *testing.T) {
	teamID := uuid.NewString()

	tests := []struct {
		name    string
		size    int
		roster  []Player
		wantErr error
	}{
		{"room left", 3, []Player{{IsActive: true}, {IsActive: true}}, nil},
		{"inactive players do not count", 2, []Player{{IsActive: true}, {IsActive: false}}, nil},
		{"full squad", 2, []Player{{IsActive: true}, {IsActive: true}}, ErrTeamFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			repo.On("GetByID", mock.Anything, teamID).Return(&Team{ID: teamID, TeamSize: tt.size}, nil)
			repo.On("Players", mock.Anything, teamID).Return(tt.roster, nil)
			repo.On("AddPlayer", mock.Anything, mock.Anything).Return(nil)

			resp, err := NewService(repo, nil).AddPlayer(context.Background(), teamID, PlayerRequest{Name: "Dev"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "AddPlayer", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, teamID, resp.TeamID)
			assert.True(t, resp.IsActive)
		})
	}
}

func TestRemovePlayerNotFound(t *testing.T) {
	teamID, playerID := uuid.NewString(), uuid.NewString()
	repo := new(mockRepository)
	repo.On("RemovePlayer", mock.Anything, teamID, playerID).Return(core.ErrNotFound)

	err := NewService(repo, nil).RemovePlayer(context.Background(), teamID, playerID)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestTeamHandlers(t *testing.T) {
	repo := new(mockRepository)
	repo.On("List", mock.Anything, "", "ADVANCED").Return([]Team{{ID: "t1", Name: "Titans"}}, nil)

	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	r := chi.NewRouter()
	NewHandler(NewService(repo, nil)).RegisterRoutes(r, deny)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/skill/ADVANCED", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Titans")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/teams", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
