package orders

import (
	"errors"
	"fmt"

	"festtix/internal/vip"
)

var (
	ErrOrderNotFound      = vip.ErrOrderNotFound
	ErrInvalidCheckout    = errors.New("invalid checkout request")
	ErrOrderNotPayable    = errors.New("order can no longer be paid")
	ErrOrderNotPaid       = errors.New("order is not paid")
	ErrOrderNotDeletable  = errors.New("paid orders cannot be deleted")
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
)

// SelectionError reports the first checkout line the validator rejected.
type SelectionError struct {
	Line        int
	ProductCode string
	Message     string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("line %d (%s): %s", e.Line+1, e.ProductCode, e.Message)
}

func (e *SelectionError) Unwrap() error {
	return ErrInvalidCheckout
}
