package checkin

import (
	"testing"

	"festtix/internal/orders"
	"festtix/internal/tickets"

	"github.com/stretchr/testify/require"
)

func TestEvaluateScan(t *testing.T) {
	weekend := tickets.DaysOf(tickets.Friday, tickets.Sunday)

	tests := []struct {
		name  string
		facts scanFacts
		want  Outcome
	}{
		{
			name:  "unknown code",
			facts: scanFacts{Found: false, Day: tickets.Friday},
			want:  OutcomeNotFound,
		},
		{
			name:  "pending order",
			facts: scanFacts{Found: true, OrderStatus: orders.StatusPending, TicketDays: weekend, Day: tickets.Friday},
			want:  OutcomeNotPaid,
		},
		{
			name:  "expired order on wrong day reports payment first",
			facts: scanFacts{Found: true, OrderStatus: orders.StatusExpired, TicketDays: weekend, Day: tickets.Saturday},
			want:  OutcomeNotPaid,
		},
		{
			name:  "day not on ticket",
			facts: scanFacts{Found: true, OrderStatus: orders.StatusPaid, TicketDays: weekend, Day: tickets.Saturday},
			want:  OutcomeWrongDay,
		},
		{
			name:  "used today",
			facts: scanFacts{Found: true, OrderStatus: orders.StatusPaid, TicketDays: weekend, Day: tickets.Sunday, AlreadyScanned: true},
			want:  OutcomeAlreadyCheckedIn,
		},
		{
			name:  "admitted",
			facts: scanFacts{Found: true, OrderStatus: orders.StatusPaid, TicketDays: weekend, Day: tickets.Sunday},
			want:  OutcomeAdmitted,
		},
		{
			name:  "four day pass any day",
			facts: scanFacts{Found: true, OrderStatus: orders.StatusPaid, TicketDays: tickets.AllFour, Day: tickets.Monday},
			want:  OutcomeAdmitted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evaluateScan(tt.facts)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want == OutcomeAdmitted, got.Admits())
			require.NotEmpty(t, got.Message())
		})
	}
}
