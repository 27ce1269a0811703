package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// SMA is the simple moving average of closing prices over a fixed period.
type SMA[T pricing.Sample] struct {
	period int
	win    *window
}

var _ Indicator[float64, float64] = (*SMA[float64])(nil)

// NewSMA creates a simple moving average with the given period.
func NewSMA[T pricing.Sample](period int) (*SMA[T], error) {
	if err := validatePeriod(period, 1); err != nil {
		return nil, err
	}
	return &SMA[T]{
		period: period,
		win:    newWindow(period),
	}, nil
}

func (s *SMA[T]) String() string {
	return fmt.Sprintf("SMA(%d)", s.period)
}

func (s *SMA[T]) Calculate(data []T) ([]float64, error) {
	if err := validateLength(len(data), s.period); err != nil {
		return nil, err
	}
	s.Reset()
	return collect[T, float64](s, data, len(data)-s.period+1)
}

func (s *SMA[T]) Next(sample T) (float64, bool, error) {
	s.win.push(pricing.Close(sample))
	if !s.win.full() {
		return 0, false, nil
	}
	return s.win.mean(), true, nil
}

func (s *SMA[T]) Reset() {
	s.win.reset()
}
