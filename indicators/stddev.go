package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// StdDev is the rolling population standard deviation of closing prices
// over a fixed period. With period 1 every value is exactly 0.
type StdDev[T pricing.Sample] struct {
	period int
	win    *window
}

var _ Indicator[float64, float64] = (*StdDev[float64])(nil)

// NewStdDev creates a rolling standard deviation with the given period.
func NewStdDev[T pricing.Sample](period int) (*StdDev[T], error) {
	if err := validatePeriod(period, 1); err != nil {
		return nil, err
	}
	return &StdDev[T]{
		period: period,
		win:    newWindow(period),
	}, nil
}

func (s *StdDev[T]) String() string {
	return fmt.Sprintf("StdDev(%d)", s.period)
}

func (s *StdDev[T]) Calculate(data []T) ([]float64, error) {
	if err := validateLength(len(data), s.period); err != nil {
		return nil, err
	}
	s.Reset()
	return collect[T, float64](s, data, len(data)-s.period+1)
}

func (s *StdDev[T]) Next(sample T) (float64, bool, error) {
	s.win.push(pricing.Close(sample))
	if !s.win.full() {
		return 0, false, nil
	}
	return s.win.stddev(), true, nil
}

func (s *StdDev[T]) Reset() {
	s.win.reset()
}
