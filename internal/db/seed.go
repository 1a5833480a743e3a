package db

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/interview-match/internal/logger"
)

var (
	seedJobTypes = []string{"backend", "frontend", "data", "devops", "mobile"}
	seedLevels   = []string{"junior", "mid", "senior"}
)

// SeedTestData resets the database and populates it with demo profiles and matches.
//
// Behavior:
//  1. Clears matches, feedbacks, quota ledger rows, daily views and users.
//  2. Creates 20 users; every 5th profile is left incomplete so it is filtered
//     out of candidate listings.
//  3. Creates pending, accepted and rejected pairs with canonical pair keys.
//
// Compatible with MySQL, Postgres and SQLite.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := clearAll(db); err != nil {
		return err
	}
	logger.Info("cleared existing data")

	users := make([]User, 0, 20)
	for i := 1; i <= 20; i++ {
		users = append(users, User{
			ID:              uint64(i),
			DisplayName:     fmt.Sprintf("candidate%02d", i),
			ProfileComplete: i%5 != 0,
			JobType:         seedJobTypes[r.Intn(len(seedJobTypes))],
			ExperienceLevel: seedLevels[r.Intn(len(seedLevels))],
		})
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	logger.Info("seeded users", "count", len(users))

	now := time.Now().UTC()
	seen := map[[2]uint64]bool{}
	count := 0
	for a := uint64(1); a <= 20; a++ {
		for j := 0; j < 4; j++ {
			b := uint64(r.Intn(20) + 1)
			if a == b {
				continue
			}
			lo, hi := CanonicalPair(a, b)
			if seen[[2]uint64{lo, hi}] {
				continue
			}
			seen[[2]uint64{lo, hi}] = true

			m := Match{
				UserA:         a,
				UserB:         b,
				PairLow:       lo,
				PairHigh:      hi,
				Status:        MatchPending,
				ContactStatus: ContactNotContacted,
				CreatedAt:     now.Add(-time.Duration(r.Intn(240)) * time.Hour),
			}
			switch roll := r.Intn(10); {
			case roll < 4:
				acceptedAt := m.CreatedAt.Add(time.Hour)
				m.Status = MatchAccepted
				m.AcceptedAt = &acceptedAt
			case roll < 6:
				m.Status = MatchRejected
			}
			if err := db.Create(&m).Error; err != nil {
				return fmt.Errorf("failed to seed match: %w", err)
			}
			count++
		}
	}
	logger.Info("seeded matches", "count", count)

	return nil
}

// SeedMinimalTestData inserts a tiny deterministic dataset:
// users 1..4 with complete profiles, user 5 incomplete, and
// an accepted pair (1,2) plus a pending like 3 → 1.
func SeedMinimalTestData(db *gorm.DB) error {
	if err := clearAll(db); err != nil {
		return err
	}

	users := []User{
		{ID: 1, DisplayName: "alice", ProfileComplete: true, JobType: "backend"},
		{ID: 2, DisplayName: "bob", ProfileComplete: true, JobType: "backend"},
		{ID: 3, DisplayName: "carol", ProfileComplete: true, JobType: "frontend"},
		{ID: 4, DisplayName: "dave", ProfileComplete: true, JobType: "data"},
		{ID: 5, DisplayName: "erin", ProfileComplete: false},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	acceptedAt := time.Now().UTC()
	matches := []Match{
		{UserA: 1, UserB: 2, PairLow: 1, PairHigh: 2, Status: MatchAccepted, ContactStatus: ContactNotContacted, AcceptedAt: &acceptedAt},
		{UserA: 3, UserB: 1, PairLow: 1, PairHigh: 3, Status: MatchPending, ContactStatus: ContactNotContacted},
	}
	return db.Create(&matches).Error
}

func clearAll(db *gorm.DB) error {
	for _, table := range []string{"daily_views", "daily_quotas", "feedbacks", "matches", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	// Reset auto-increment sequences
	switch db.Dialector.Name() {
	case "mysql":
		for _, table := range []string{"matches", "feedbacks", "daily_quotas", "daily_views"} {
			db.Exec("ALTER TABLE " + table + " AUTO_INCREMENT = 1")
		}
	case "sqlite":
		db.Exec("DELETE FROM sqlite_sequence WHERE name IN ('matches','feedbacks','daily_quotas','daily_views','users')")
	}
	return nil
}
