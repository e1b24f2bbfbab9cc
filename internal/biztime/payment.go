package biztime

import "time"

// PaymentState is the paid status of an invoice.
// PaidDate is nil when, and only when, Paid is false.
type PaymentState struct {
	Paid     bool
	PaidDate *time.Time
}

// ApplyPayment returns the state after setting the paid flag of an invoice in state current.
//
//	unpaid -> paid:   PaidDate is set to today
//	paid   -> unpaid: PaidDate is cleared
//	no change:        PaidDate is left as it was
func ApplyPayment(current PaymentState, paid bool, today time.Time) PaymentState {
	switch {
	case paid == current.Paid:
		return current
	case paid:
		d := DateOf(today)
		return PaymentState{Paid: true, PaidDate: &d}
	default:
		return PaymentState{Paid: false}
	}
}

// DateOf truncates t to a calendar date (midnight UTC of t's local date).
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
