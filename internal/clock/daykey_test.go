package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/interview-match/internal/clock"
)

func TestDayKey_UsesReferenceZone(t *testing.T) {
	seoul, err := clock.LoadDayKeyer("Asia/Seoul", nil)
	require.NoError(t, err)

	// 15:30 UTC is already the next day in Seoul (UTC+9).
	instant := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-11", seoul.DayKey(instant))

	utc := clock.NewDayKeyer(time.UTC, nil)
	assert.Equal(t, "2024-03-10", utc.DayKey(instant))
}

func TestDayKey_RollsOverAtLocalMidnight(t *testing.T) {
	zone := time.FixedZone("KST", 9*3600)
	d := clock.NewDayKeyer(zone, nil)

	before := time.Date(2024, 3, 10, 23, 59, 59, 0, zone)
	after := before.Add(time.Second)

	assert.Equal(t, "2024-03-10", d.DayKey(before))
	assert.Equal(t, "2024-03-11", d.DayKey(after))
}

func TestToday_IsStableWithinDay(t *testing.T) {
	zone := time.FixedZone("KST", 9*3600)
	now := time.Date(2024, 1, 31, 0, 0, 1, 0, zone)
	d := clock.NewDayKeyer(zone, func() time.Time { return now })

	first := d.Today()
	now = now.Add(23 * time.Hour)
	assert.Equal(t, first, d.Today())
	assert.Equal(t, "2024-01-31", first)
}

func TestPrevious(t *testing.T) {
	d := clock.NewDayKeyer(time.UTC, nil)

	prev, err := d.Previous("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", prev)

	_, err = d.Previous("not-a-day")
	assert.Error(t, err)
}

func TestLoadDayKeyer_UnknownZone(t *testing.T) {
	_, err := clock.LoadDayKeyer("Mars/Olympus", nil)
	assert.Error(t, err)
}
