package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// EMA is the exponential moving average of closing prices with
// alpha = 2/(period+1), seeded with the simple average of the first period
// values.
type EMA[T pricing.Sample] struct {
	period   int
	smoother *emaSmoother
}

var _ Indicator[float64, float64] = (*EMA[float64])(nil)

// NewEMA creates an exponential moving average with the given period.
func NewEMA[T pricing.Sample](period int) (*EMA[T], error) {
	if err := validatePeriod(period, 1); err != nil {
		return nil, err
	}
	return &EMA[T]{
		period:   period,
		smoother: newEMASmoother(period),
	}, nil
}

func (e *EMA[T]) String() string {
	return fmt.Sprintf("EMA(%d)", e.period)
}

func (e *EMA[T]) Calculate(data []T) ([]float64, error) {
	if err := validateLength(len(data), e.period); err != nil {
		return nil, err
	}
	e.Reset()
	return collect[T, float64](e, data, len(data)-e.period+1)
}

func (e *EMA[T]) Next(sample T) (float64, bool, error) {
	v, ok := e.smoother.push(pricing.Close(sample))
	return v, ok, nil
}

func (e *EMA[T]) Reset() {
	e.smoother.reset()
}
