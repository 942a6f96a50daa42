package checkin

import (
	"festtix/internal/orders"
	"festtix/internal/tickets"
)

type Outcome string

const (
	OutcomeAdmitted         Outcome = "ADMITTED"
	OutcomeAlreadyCheckedIn Outcome = "ALREADY_CHECKED_IN"
	OutcomeWrongDay         Outcome = "WRONG_DAY"
	OutcomeNotPaid          Outcome = "NOT_PAID"
	OutcomeNotFound         Outcome = "NOT_FOUND"
)

// Admits reports whether the holder may enter.
func (o Outcome) Admits() bool {
	return o == OutcomeAdmitted
}

func (o Outcome) Message() string {
	switch o {
	case OutcomeAdmitted:
		return "Ticket valid, admit holder."
	case OutcomeAlreadyCheckedIn:
		return "Ticket was already used today."
	case OutcomeWrongDay:
		return "Ticket is not valid for this day."
	case OutcomeNotPaid:
		return "Order for this ticket is not paid."
	default:
		return "Ticket not found."
	}
}

// scanFacts is what a scan decision depends on.
type scanFacts struct {
	Found          bool
	OrderStatus    orders.Status
	TicketDays     tickets.DaySet
	Day            tickets.DayCode
	AlreadyScanned bool
}

// evaluateScan checks in order: existence, payment, day coverage, prior use.
func evaluateScan(f scanFacts) Outcome {
	switch {
	case !f.Found:
		return OutcomeNotFound
	case f.OrderStatus != orders.StatusPaid:
		return OutcomeNotPaid
	case !f.TicketDays.Has(f.Day):
		return OutcomeWrongDay
	case f.AlreadyScanned:
		return OutcomeAlreadyCheckedIn
	default:
		return OutcomeAdmitted
	}
}
