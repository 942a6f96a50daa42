package orders

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsEditable is true while the buyer can still change the order.
func (s Status) IsEditable() bool {
	return s == StatusPending
}

// CanBePaid lists the states a late payment confirmation may still settle.
func (s Status) CanBePaid() bool {
	return s == StatusPending || s == StatusExpired
}

func (s Status) CanBeDeleted() bool {
	return s != StatusPaid
}
