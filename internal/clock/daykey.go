// Package clock resolves calendar days in a fixed reference timezone.
//
// Every ledger and view lookup is keyed by the string returned from DayKey,
// never by raw timestamps, so components running in different zones agree on
// what "today" is.
package clock

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone data for containers without /usr/share/zoneinfo
)

// DayKeyLayout is the canonical day key format.
const DayKeyLayout = "2006-01-02"

// DayKeyer maps instants to day keys in its reference location.
type DayKeyer struct {
	loc *time.Location
	now func() time.Time
}

// NewDayKeyer returns a DayKeyer for loc. A nil now defaults to time.Now.
func NewDayKeyer(loc *time.Location, now func() time.Time) *DayKeyer {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &DayKeyer{loc: loc, now: now}
}

// LoadDayKeyer resolves an IANA zone name such as "Asia/Seoul".
func LoadDayKeyer(zone string, now func() time.Time) (*DayKeyer, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	return NewDayKeyer(loc, now), nil
}

// Location returns the reference location.
func (d *DayKeyer) Location() *time.Location { return d.loc }

// Now returns the current instant.
func (d *DayKeyer) Now() time.Time { return d.now() }

// DayKey returns the calendar day of t in the reference location.
func (d *DayKeyer) DayKey(t time.Time) string {
	return t.In(d.loc).Format(DayKeyLayout)
}

// Today is DayKey(Now()).
func (d *DayKeyer) Today() string {
	return d.DayKey(d.now())
}

// StartOfDay returns local midnight of the given day key.
func (d *DayKeyer) StartOfDay(dayKey string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, dayKey, d.loc)
}

// Previous returns the day key before dayKey.
func (d *DayKeyer) Previous(dayKey string) (string, error) {
	start, err := d.StartOfDay(dayKey)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, 0, -1).Format(DayKeyLayout), nil
}

// Fixed returns a now function pinned to t; handy for tools and tests.
func Fixed(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
