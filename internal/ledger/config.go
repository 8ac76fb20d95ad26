package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Config holds the rates the ledger is constructed with.
type Config struct {
	RatePerMinute      decimal.Decimal
	MonthlyFreeMinutes int
	MinRequiredBalance decimal.Decimal
	NumberMonthlyPrice decimal.Decimal
	RenewalPeriod      time.Duration
}

func DefaultConfig() Config {
	return Config{
		RatePerMinute:      decimal.RequireFromString("0.02"),
		MonthlyFreeMinutes: 200,
		MinRequiredBalance: decimal.RequireFromString("5.00"),
		NumberMonthlyPrice: decimal.RequireFromString("2.00"),
		RenewalPeriod:      30 * 24 * time.Hour,
	}
}
