package quota_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/interview-match/internal/cache"
	"github.com/oggyb/interview-match/internal/clock"
	"github.com/oggyb/interview-match/internal/config"
	"github.com/oggyb/interview-match/internal/db"
	"github.com/oggyb/interview-match/internal/events"
	"github.com/oggyb/interview-match/internal/logger"
	"github.com/oggyb/interview-match/internal/quota"
	"github.com/oggyb/interview-match/internal/repository"
)

var seoul = mustZone("Asia/Seoul")

func mustZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// fakeNow is a settable clock.
type fakeNow struct {
	mu sync.Mutex
	t  time.Time
}

func (f *fakeNow) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.t
}

func (f *fakeNow) Set(t time.Time) {
	f.mu.Lock()
	f.t = t
	f.mu.Unlock()
}

type fixture struct {
	db     *gorm.DB
	repo   *repository.QuotaRepository
	ledger *quota.Ledger
	gate   *quota.Gate
	cache  *cache.RedisCache
	pub    *events.MemoryPublisher
	now    *fakeNow
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := db.OpenSQLite("file:" + name + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	mr := miniredis.RunT(t)
	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	rc := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rc.Close() })

	now := &fakeNow{t: time.Date(2025, 3, 10, 9, 0, 0, 0, seoul)}
	pub := events.NewMemoryPublisher()
	repo := repository.NewQuotaRepository(gdb)
	ledger := quota.NewLedger(repo, clock.NewDayKeyer(seoul, now.Now),
		quota.WithCache(rc),
		quota.WithEmitter(events.NewEmitter(pub, logger.Discard())),
		quota.WithLogger(logger.Discard()),
	)

	return &fixture{
		db:     gdb,
		repo:   repo,
		ledger: ledger,
		gate:   quota.NewGate(ledger),
		cache:  rc,
		pub:    pub,
		now:    now,
	}
}
