package indicators

import (
	"fmt"
	"math"

	"github.com/quantstream/ta/pricing"
)

// ATR is the average true range: Wilder-smoothed true ranges over a fixed
// period. The very first true range has no previous close and is just
// high-low, so the first value appears after period candles.
type ATR struct {
	period    int
	smoother  *wilderSmoother
	prevClose float64
	hasPrev   bool
}

var _ Indicator[pricing.Candle, float64] = (*ATR)(nil)

// NewATR creates an average true range indicator with the given period.
func NewATR(period int) (*ATR, error) {
	if err := validatePeriod(period, 1); err != nil {
		return nil, err
	}
	return &ATR{
		period:   period,
		smoother: newWilderSmoother(period),
	}, nil
}

func (a *ATR) String() string {
	return fmt.Sprintf("ATR(%d)", a.period)
}

func (a *ATR) Calculate(data []pricing.Candle) ([]float64, error) {
	if err := validateLength(len(data), a.period); err != nil {
		return nil, err
	}
	a.Reset()
	return collect[pricing.Candle, float64](a, data, len(data)-a.period+1)
}

func (a *ATR) Next(sample pricing.Candle) (float64, bool, error) {
	tr := a.trueRange(sample)
	a.prevClose = sample.Close
	a.hasPrev = true

	v, ok := a.smoother.push(tr)
	return v, ok, nil
}

func (a *ATR) Reset() {
	a.smoother.reset()
	a.prevClose = 0
	a.hasPrev = false
}

func (a *ATR) trueRange(c pricing.Candle) float64 {
	highLow := c.High - c.Low
	if !a.hasPrev {
		return highLow
	}
	highClose := math.Abs(c.High - a.prevClose)
	lowClose := math.Abs(c.Low - a.prevClose)
	return math.Max(highLow, math.Max(highClose, lowClose))
}
