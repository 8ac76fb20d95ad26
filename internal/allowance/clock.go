// Package allowance decides when the monthly free-minute allowance is reset.
package allowance

import (
	"time"

	"lineblocs.com/ledger/models"
)

type Clock struct {
	monthlyFreeMinutes int
	now                func() time.Time
}

func NewClock(monthlyFreeMinutes int, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{
		monthlyFreeMinutes: monthlyFreeMinutes,
		now:                now,
	}
}

// Now returns the clock's current time in UTC.
func (c *Clock) Now() time.Time {
	return c.now().UTC()
}

// NeedsReset reports whether lastReset falls outside the UTC calendar month of now.
// A nil lastReset means the allowance was never granted.
func NeedsReset(lastReset *time.Time, now time.Time) bool {
	if lastReset == nil {
		return true
	}
	last := lastReset.UTC()
	cur := now.UTC()
	return last.Year() != cur.Year() || last.Month() != cur.Month()
}

// EnsureMonthlyReset refills the account's free minutes when a new month has started.
// It must be called with the account row locked. Returns true when the account changed.
func (c *Clock) EnsureMonthlyReset(account *models.Account) bool {
	now := c.Now()
	if !NeedsReset(account.FreeMinutesLastReset, now) {
		return false
	}
	account.FreeMinutesRemaining = c.monthlyFreeMinutes
	account.FreeMinutesLastReset = &now
	return true
}
