package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// ADL is the accumulation/distribution line: money-flow volume accumulated
// into an unbounded running total. A zero-range candle (high == low) makes
// the money-flow multiplier undefined and fails the calculation.
type ADL struct {
	value float64
}

var _ Indicator[pricing.Candle, float64] = (*ADL)(nil)

// NewADL creates an accumulation/distribution line indicator. It takes no
// parameters.
func NewADL() *ADL {
	return &ADL{}
}

func (a *ADL) String() string {
	return "ADL"
}

func (a *ADL) Calculate(data []pricing.Candle) ([]float64, error) {
	if err := validateLength(len(data), 1); err != nil {
		return nil, err
	}
	a.Reset()
	return collect[pricing.Candle, float64](a, data, len(data))
}

func (a *ADL) Next(sample pricing.Candle) (float64, bool, error) {
	mfv, err := moneyFlowVolume(sample)
	if err != nil {
		return 0, false, err
	}
	a.value += mfv
	return a.value, true, nil
}

func (a *ADL) Reset() {
	a.value = 0
}

// moneyFlowVolume is the money-flow multiplier (2*close - high - low) /
// (high - low) scaled by volume. Shared by ADL and CMF.
func moneyFlowVolume(c pricing.Candle) (float64, error) {
	r := c.High - c.Low
	if r == 0 {
		return 0, fmt.Errorf("%w: division by zero, high and low prices are equal", ErrCalculation)
	}
	mfm := (2*c.Close - c.High - c.Low) / r
	return mfm * c.Volume, nil
}
