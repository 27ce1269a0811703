package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// CMF is Chaikin money flow: the windowed sum of money-flow volume divided
// by the windowed sum of volume. Fails on zero-range candles and when the
// windowed volume sum is zero.
type CMF struct {
	period  int
	mfv     *window
	volumes *window
}

var _ Indicator[pricing.Candle, float64] = (*CMF)(nil)

// NewCMF creates a Chaikin money flow indicator with the given period.
func NewCMF(period int) (*CMF, error) {
	if err := validatePeriod(period, 1); err != nil {
		return nil, err
	}
	return &CMF{
		period:  period,
		mfv:     newWindow(period),
		volumes: newWindow(period),
	}, nil
}

func (c *CMF) String() string {
	return fmt.Sprintf("CMF(%d)", c.period)
}

func (c *CMF) Calculate(data []pricing.Candle) ([]float64, error) {
	if err := validateLength(len(data), c.period); err != nil {
		return nil, err
	}
	c.Reset()
	return collect[pricing.Candle, float64](c, data, len(data)-c.period+1)
}

func (c *CMF) Next(sample pricing.Candle) (float64, bool, error) {
	mfv, err := moneyFlowVolume(sample)
	if err != nil {
		return 0, false, err
	}
	c.mfv.push(mfv)
	c.volumes.push(sample.Volume)
	if !c.mfv.full() {
		return 0, false, nil
	}

	volSum := c.volumes.sum
	if volSum == 0 {
		return 0, false, fmt.Errorf("%w: division by zero, sum of volumes is zero", ErrCalculation)
	}
	return c.mfv.sum / volSum, true, nil
}

func (c *CMF) Reset() {
	c.mfv.reset()
	c.volumes.reset()
}
