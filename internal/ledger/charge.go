package ledger

import "github.com/shopspring/decimal"

// currency minor unit
const centsPlaces = 2

type CallCharge struct {
	Minutes         int
	FreeMinutes     int
	BillableMinutes int
	Amount          decimal.Decimal
}

// BillableMinutes rounds a duration up to whole minutes. Zero or negative
// durations bill nothing.
func BillableMinutes(durationSeconds int) int {
	if durationSeconds <= 0 {
		return 0
	}
	return (durationSeconds + 59) / 60
}

// ComputeCallCharge consumes the free allowance before charging rate per minute.
func ComputeCallCharge(durationSeconds int, freeMinutesRemaining int, rate decimal.Decimal) CallCharge {
	minutes := BillableMinutes(durationSeconds)
	free := freeMinutesRemaining
	if free < 0 {
		free = 0
	}
	if free > minutes {
		free = minutes
	}
	billable := minutes - free
	return CallCharge{
		Minutes:         minutes,
		FreeMinutes:     free,
		BillableMinutes: billable,
		Amount:          rate.Mul(decimal.NewFromInt(int64(billable))).Round(centsPlaces),
	}
}
