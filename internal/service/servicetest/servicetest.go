// Package servicetest wires an AppContext over in-memory SQLite and
// miniredis for the service tests.
package servicetest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/interview-match/internal/app"
	"github.com/oggyb/interview-match/internal/cache"
	"github.com/oggyb/interview-match/internal/clock"
	"github.com/oggyb/interview-match/internal/config"
	"github.com/oggyb/interview-match/internal/db"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/logger"
)

// Now is the fixed instant every service test runs at.
var Now = time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

// Env is an isolated service test environment.
type Env struct {
	App   *app.AppContext
	DB    *gorm.DB
	Redis *miniredis.Miniredis
	Pub   *events.MemoryPublisher
}

// New spins up an in-memory SQLite DB with the minimal seed dataset,
// starts a miniredis, and wires everything into an AppContext.
//
// Dataset (db.SeedMinimalTestData):
//   - users 1..5; user 5 has an incomplete profile
//   - 1 ↔ 2 accepted
//   - 3 → 1 pending
func New(t *testing.T) *Env {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := db.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.SeedMinimalTestData(gdb))

	mr := miniredis.RunT(t)
	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	cfg.Quota.BaseLimit = 4
	cfg.Reminder.MinDays = 3
	redisCache := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = redisCache.Close() })

	pub := events.NewMemoryPublisher()
	days := clock.NewDayKeyer(time.UTC, clock.Fixed(Now))
	appCtx := app.New(cfg, gdb, redisCache, logger.Discard(), days, pub)

	return &Env{App: appCtx, DB: gdb, Redis: mr, Pub: pub}
}
