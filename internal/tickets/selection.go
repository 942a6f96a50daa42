package tickets

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProductCode = errors.New("invalid product code")
	ErrArityViolation     = errors.New("day selection does not match product")
)

const (
	msgInvalidProduct = "Invalid product code."
	msgExactlyOneDay  = "Please select exactly one day."
	msgExactlyTwoDays = "Please select exactly two days."
	msgTwoDayNoSat    = "The 2-day pass is valid on Friday, Sunday and Monday only."
	msgThreeDaySet    = "The 3-day pass covers exactly Friday, Sunday and Monday."
	msgFourDaySet     = "The full festival pass covers all four days."
)

// nonSaturday is the day pool for the 2-day and 3-day general passes.
var nonSaturday = DaysOf(Friday, Sunday, Monday)

// Result is the outcome of validating one selection.
type Result struct {
	Valid   bool      `json:"valid"`
	Days    []DayCode `json:"days,omitempty"`
	Message string    `json:"message,omitempty"`

	set DaySet
}

// DaySet returns the accepted days. Empty when the selection was rejected.
func (r Result) DaySet() DaySet {
	return r.set
}

func accept(s DaySet) Result {
	return Result{Valid: true, Days: s.Days(), set: s}
}

func reject(msg string) Result {
	return Result{Valid: false, Message: msg}
}

// ValidateSelection checks raw day tokens against the product's day rule.
// Rejections are values, never errors.
func ValidateSelection(product ProductCode, rawDays []string) Result {
	return validate(product, ParseDaySet(rawDays))
}

func validate(product ProductCode, days DaySet) Result {
	switch product {
	case General1Day, VIP1Day:
		if days.Len() != 1 {
			return reject(msgExactlyOneDay)
		}
		return accept(days)
	case General2Day:
		if days.Len() != 2 {
			return reject(msgExactlyTwoDays)
		}
		if !days.SubsetOf(nonSaturday) {
			return reject(msgTwoDayNoSat)
		}
		return accept(days)
	case General3Day:
		if !days.Equal(nonSaturday) {
			return reject(msgThreeDaySet)
		}
		return accept(nonSaturday)
	case General4Day, VIP4Day:
		// an empty selection means the whole festival
		if days.IsEmpty() || days.Equal(AllFour) {
			return accept(AllFour)
		}
		return reject(msgFourDaySet)
	default:
		return reject(msgInvalidProduct)
	}
}

// ComputeUnitPrice prices a selection. Callers are expected to validate first,
// so any selection that would be rejected is reported as ErrArityViolation.
func ComputeUnitPrice(product ProductCode, rawDays []string) (float64, error) {
	return price(product, ParseDaySet(rawDays))
}

func price(product ProductCode, days DaySet) (float64, error) {
	if !product.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidProductCode, product)
	}
	res := validate(product, days)
	if !res.Valid {
		return 0, fmt.Errorf("%w: %s %s: %s", ErrArityViolation, product, days, res.Message)
	}

	switch product {
	case General1Day:
		if res.set.Has(Saturday) {
			return 80, nil
		}
		return 50, nil
	case General2Day:
		return 60, nil
	case General3Day:
		return 80, nil
	case General4Day:
		return 120, nil
	case VIP1Day:
		if res.set.Has(Saturday) {
			return 350, nil
		}
		return 200, nil
	case VIP4Day:
		return 750, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidProductCode, product)
	}
}

// Quote is a validated and priced selection.
type Quote struct {
	Product   ProductCode
	Days      DaySet
	UnitPrice float64
}

// QuoteSelection validates and prices in one step. The error wraps
// ErrInvalidProductCode or ErrArityViolation and carries the rejection message.
func QuoteSelection(product ProductCode, rawDays []string) (Quote, Result, error) {
	res := ValidateSelection(product, rawDays)
	if !res.Valid {
		if !product.IsValid() {
			return Quote{}, res, fmt.Errorf("%w: %q", ErrInvalidProductCode, product)
		}
		return Quote{}, res, fmt.Errorf("%w: %s", ErrArityViolation, res.Message)
	}
	unit, err := price(product, res.set)
	if err != nil {
		return Quote{}, res, err
	}
	return Quote{Product: product, Days: res.set, UnitPrice: unit}, res, nil
}
