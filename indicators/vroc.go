package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// VROC is the volume rate of change: percent change of the current volume
// versus the volume period candles earlier. Needs period+1 candles for its
// first value and fails when the reference volume is zero.
type VROC struct {
	period  int
	volumes *window
}

var _ Indicator[pricing.Candle, float64] = (*VROC)(nil)

// NewVROC creates a volume rate of change indicator with the given period.
func NewVROC(period int) (*VROC, error) {
	if err := validatePeriod(period, 1); err != nil {
		return nil, err
	}
	return &VROC{
		period:  period,
		volumes: newWindow(period + 1),
	}, nil
}

func (v *VROC) String() string {
	return fmt.Sprintf("VROC(%d)", v.period)
}

func (v *VROC) Calculate(data []pricing.Candle) ([]float64, error) {
	if err := validateLength(len(data), v.period+1); err != nil {
		return nil, err
	}
	v.Reset()
	return collect[pricing.Candle, float64](v, data, len(data)-v.period)
}

func (v *VROC) Next(sample pricing.Candle) (float64, bool, error) {
	v.volumes.push(sample.Volume)
	if !v.volumes.full() {
		return 0, false, nil
	}

	past := v.volumes.first()
	if past == 0 {
		return 0, false, fmt.Errorf("%w: division by zero, past volume is zero", ErrCalculation)
	}
	return (sample.Volume - past) / past * 100, true, nil
}

func (v *VROC) Reset() {
	v.volumes.reset()
}
