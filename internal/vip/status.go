package vip

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationConfirmed ReservationStatus = "CONFIRMED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationExpired   ReservationStatus = "EXPIRED"
)

func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationExpired:
		return true
	}
	return false
}

// HoldsSeats is false for cancelled and expired reservations.
func (s ReservationStatus) HoldsSeats() bool {
	return s != ReservationCancelled && s != ReservationExpired
}

func (s ReservationStatus) String() string {
	return string(s)
}
