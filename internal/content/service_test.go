// AngelaMos | 2026
// service_test.go

package content

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

func TestHomepageCachesAndToleratesMissingHero(t *testing.T) {
	repo := new(mockRepository)
	repo.On("ListPlayers", mock.Anything).Return([]StarPlayer{{ID: "p1", Name: "Virat"}}, nil).Once()
	repo.On("ListFacilities", mock.Anything).Return([]Facility{{ID: "f1", Title: "Indoor nets"}}, nil).Once()
	repo.On("GetHero", mock.Anything).Return(nil, core.ErrNotFound).Once()

	cache := &memCache{}
	svc := NewService(repo, cache, nil)

	page, err := svc.Homepage(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page.HeroImage)
	require.Len(t, page.StarPlayers, 1)
	assert.Empty(t, page.StarPlayers[0].Stats)
	assert.NotNil(t, page.StarPlayers[0].Stats)

	again, err := svc.Homepage(context.Background())
	require.NoError(t, err)
	assert.Same(t, page, again)
	repo.AssertExpectations(t)
}

func TestUpdatePlayerReplacesChildren(t *testing.T) {
	id := uuid.NewString()
	stored := &StarPlayer{
		ID:    id,
		Name:  "Old",
		Stats: []PlayerStat{{ID: "s-old", Year: "2022"}, {ID: "s-old-2", Year: "2023"}},
	}

	repo := new(mockRepository)
	repo.On("GetPlayer", mock.Anything, id).Return(stored, nil)
	repo.On("UpdatePlayer", mock.Anything, mock.MatchedBy(func(p *StarPlayer) bool {
		return len(p.Stats) == 1 && p.Stats[0].Year == "2024" && p.Stats[0].PlayerID == id &&
			len(p.Tournaments) == 1 && p.Tournaments[0].Name == "Ranji Trophy"
	})).Return(nil)

	cache := &memCache{page: &HomepageResponse{}}
	resp, err := NewService(repo, cache, nil).UpdatePlayer(context.Background(), id, StarPlayerRequest{
		Name:        "New",
		Stats:       []StatRequest{{Year: "2024", Runs: 812}},
		Tournaments: []TournamentRequest{{Name: "Ranji Trophy", Year: "2024"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "New", resp.Name)
	assert.Equal(t, []string{}, resp.Achievements)
	assert.Equal(t, 1, cache.invalidated)
	repo.AssertExpectations(t)
}

func TestReorderSkipsUnknownIDs(t *testing.T) {
	known := uuid.NewString()

	repo := new(mockRepository)
	repo.On("Reorder", mock.Anything, ReorderFacilities, []SortItem{{ID: known, SortOrder: 2}}).Return(1, nil)

	resp, err := NewService(repo, nil, nil).Reorder(context.Background(), ReorderFacilities, []SortItem{
		{ID: "not-a-uuid", SortOrder: 1},
		{ID: known, SortOrder: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Updated)
	repo.AssertExpectations(t)

	t.Run("nothing valid", func(t *testing.T) {
		repo := new(mockRepository)
		resp, err := NewService(repo, nil, nil).Reorder(context.Background(), ReorderPlayers,
			[]SortItem{{ID: "x", SortOrder: 0}})
		require.NoError(t, err)
		assert.Zero(t, resp.Updated)
		repo.AssertNotCalled(t, "Reorder", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestContentHandlers(t *testing.T) {
	repo := new(mockRepository)
	repo.On("ListPlayers", mock.Anything).Return([]StarPlayer{}, nil)
	repo.On("ListFacilities", mock.Anything).Return([]Facility{}, nil)
	repo.On("GetHero", mock.Anything).Return(&HeroImage{ImageURL: "/uploads/hero.jpg"}, nil)

	h := NewHandler(NewService(repo, nil, nil))
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	r.Route("/admin", h.RegisterAdminRoutes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/homepage", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"heroImage"`)
	assert.Contains(t, rec.Body.String(), "/uploads/hero.jpg")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/homepage/reorder/players",
		strings.NewReader(`[]`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
