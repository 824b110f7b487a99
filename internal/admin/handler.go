// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/cricketacademy/academy-api/internal/booking"
	"github.com/cricketacademy/academy-api/internal/core"
	"github.com/cricketacademy/academy-api/internal/user"
)

type UserStats interface {
	Statistics(ctx context.Context) (*user.Statistics, error)
}

type BookingStats interface {
	Summary(ctx context.Context) (*booking.Summary, error)
}

type SessionRevoker interface {
	LogoutAll(ctx context.Context, userID string) error
}

type Handler struct {
	users      UserStats
	bookings   BookingStats
	sessions   SessionRevoker
	dbStats    func() sql.DBStats
	redisStats func() *redis.PoolStats
	dbPing     func(ctx context.Context) error
	redisPing  func(ctx context.Context) error
	brokerPing func(ctx context.Context) error
}

type HandlerConfig struct {
	Users      UserStats
	Bookings   BookingStats
	Sessions   SessionRevoker
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
	DBPing     func(ctx context.Context) error
	RedisPing  func(ctx context.Context) error
	// BrokerPing is nil when events are not configured.
	BrokerPing func(ctx context.Context) error
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		users:      cfg.Users,
		bookings:   cfg.Bookings,
		sessions:   cfg.Sessions,
		dbStats:    cfg.DBStats,
		redisStats: cfg.RedisStats,
		dbPing:     cfg.DBPing,
		redisPing:  cfg.RedisPing,
		brokerPing: cfg.BrokerPing,
	}
}

// RegisterAdminRoutes expects authentication and the admin check to be
// applied by the caller.
func (h *Handler) RegisterAdminRoutes(r chi.Router) {
	r.Get("/dashboard", h.Dashboard)
	r.Post("/users/{userID}/sessions/revoke", h.RevokeSessions)

	r.Get("/stats", h.GetSystemStats)
	r.Get("/stats/db", h.GetDatabaseStats)
	r.Get("/stats/redis", h.GetRedisStats)
	r.Get("/stats/runtime", h.GetRuntimeStats)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.users.Statistics(ctx)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}
	bookings, err := h.bookings.Summary(ctx)
	if err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.OK(w, DashboardResponse{Users: users, Bookings: bookings})
}

func (h *Handler) RevokeSessions(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.LogoutAll(r.Context(), chi.URLParam(r, "userID")); err != nil {
		core.HandleError(w, r, err)
		return
	}

	core.NoContent(w)
}

func healthy(ctx context.Context, ping func(context.Context) error) bool {
	return ping == nil || ping(ctx) == nil
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	response := SystemStatsResponse{
		Database: DatabaseStatus{
			Healthy: healthy(ctx, h.dbPing),
			Stats:   h.getDBStats(),
		},
		Redis: RedisStatus{
			Healthy: healthy(ctx, h.redisPing),
			Stats:   h.getRedisStats(),
		},
		Broker: BrokerStatus{
			Configured: h.brokerPing != nil,
			Healthy:    h.brokerPing != nil && h.brokerPing(ctx) == nil,
		},
		Runtime: runtimeStats(),
	}

	core.OK(w, response)
}

func (h *Handler) GetDatabaseStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, h.getDBStats())
}

func (h *Handler) GetRedisStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, h.getRedisStats())
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, _ *http.Request) {
	core.OK(w, runtimeStats())
}

func runtimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	}
}

func (h *Handler) getDBStats() *DBPoolStats {
	if h.dbStats == nil {
		return nil
	}

	stats := h.dbStats()
	return &DBPoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
	}
}
