package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// WilliamsR is Williams %R: the mirror of stochastic %K on a -100..0
// scale. A zero-range window yields the middle value -50.
type WilliamsR struct {
	period int
	highs  *window
	lows   *window
}

var _ Indicator[pricing.Candle, float64] = (*WilliamsR)(nil)

// NewWilliamsR creates a Williams %R indicator with the given period.
func NewWilliamsR(period int) (*WilliamsR, error) {
	if err := validatePeriod(period, 1); err != nil {
		return nil, err
	}
	return &WilliamsR{
		period: period,
		highs:  newWindow(period),
		lows:   newWindow(period),
	}, nil
}

func (w *WilliamsR) String() string {
	return fmt.Sprintf("WilliamsR(%d)", w.period)
}

func (w *WilliamsR) Calculate(data []pricing.Candle) ([]float64, error) {
	if err := validateLength(len(data), w.period); err != nil {
		return nil, err
	}
	w.Reset()
	return collect[pricing.Candle, float64](w, data, len(data)-w.period+1)
}

func (w *WilliamsR) Next(sample pricing.Candle) (float64, bool, error) {
	w.highs.push(sample.High)
	w.lows.push(sample.Low)
	if !w.highs.full() {
		return 0, false, nil
	}

	highest := w.highs.max()
	lowest := w.lows.min()
	if highest == lowest {
		return -50, true, nil
	}
	return (highest - sample.Close) / (highest - lowest) * -100, true, nil
}

func (w *WilliamsR) Reset() {
	w.highs.reset()
	w.lows.reset()
}
