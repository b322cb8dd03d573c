package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/solindexer/sonar/internal/core"
)

type stubQueryService struct {
	counters map[string]*core.WalletCounter
	ranked   []*core.WalletCounter
	stats    *core.Statistics
}

func (s *stubQueryService) GetWalletCounter(_ context.Context, address string) (*core.WalletCounter, error) {
	ret, ok := s.counters[address]
	if !ok {
		return nil, core.ErrNotFound
	}
	return ret, nil
}

func (s *stubQueryService) GetLeaderboard(_ context.Context, limit int) ([]*core.WalletCounter, error) {
	if limit < len(s.ranked) {
		return s.ranked[:limit], nil
	}
	return s.ranked, nil
}

func (s *stubQueryService) GetStatistics(context.Context) (*core.Statistics, error) {
	return s.stats, nil
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	now := time.Unix(1700000000, 0).UTC()
	svc := &stubQueryService{
		counters: map[string]*core.WalletCounter{
			"walletA": {Address: "walletA", InteractionCount: 10, LastUpdated: now},
		},
		ranked: []*core.WalletCounter{
			{Address: "walletA", InteractionCount: 10, LastUpdated: now},
			{Address: "walletB", InteractionCount: 10, LastUpdated: now.Add(time.Minute)},
		},
		stats: &core.Statistics{Wallets: 2, TotalInteractions: 20, Checkpoint: "s100"},
	}

	s := NewServer(":0")
	s.RegisterRoutes(NewController(svc))
	return s.router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestController_GetWalletCounter(t *testing.T) {
	router := testRouter()

	w := doGet(router, "/api/v1/wallets/walletA")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"interaction_count": 10`)

	w = doGet(router, "/api/v1/wallets/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestController_GetLeaderboard(t *testing.T) {
	router := testRouter()

	w := doGet(router, "/api/v1/leaderboard?limit=1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "walletA")
	assert.NotContains(t, w.Body.String(), "walletB")

	w = doGet(router, "/api/v1/leaderboard?limit=zero")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doGet(router, "/api/v1/leaderboard")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "walletB")
}

func TestController_GetStatistics(t *testing.T) {
	router := testRouter()

	w := doGet(router, "/api/v1/statistics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_interactions": 20`)
	assert.Contains(t, w.Body.String(), `"checkpoint": "s100"`)
}

func TestServer_Metrics(t *testing.T) {
	router := testRouter()

	w := doGet(router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}
