package indicators

import (
	"errors"
	"fmt"
)

// The three error kinds indicators can return. Concrete errors wrap one of
// these sentinels; match with errors.Is.
var (
	// ErrInvalidParameter is returned by constructors for a period below
	// the indicator's minimum or a non-positive multiplier.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientData is returned by Calculate when the input is
	// shorter than the indicator's minimum required length.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrCalculation is returned for degenerate arithmetic at runtime,
	// such as a zero-range candle in money-flow calculations.
	ErrCalculation = errors.New("calculation error")
)

func validatePeriod(period, min int) error {
	if period < min {
		return fmt.Errorf("%w: period must be at least %d, got %d", ErrInvalidParameter, min, period)
	}
	return nil
}

func validateLength(n, min int) error {
	if n < min {
		return fmt.Errorf("%w: need at least %d data points, got %d", ErrInsufficientData, min, n)
	}
	return nil
}
