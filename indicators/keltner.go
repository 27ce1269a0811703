package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// KeltnerChannels is an EMA middle band with upper and lower bands a
// multiple of the ATR away. The EMA and ATR periods may differ; values are
// emitted only once both sub-indicators have seeded, which aligns the two
// series on the same candle index.
type KeltnerChannels struct {
	emaPeriod  int
	atrPeriod  int
	multiplier float64

	ema *emaSmoother
	atr *ATR
}

var _ Indicator[pricing.Candle, BandsResult] = (*KeltnerChannels)(nil)

// NewKeltnerChannels creates Keltner Channels from an EMA period, an ATR
// period and a strictly positive ATR multiplier.
func NewKeltnerChannels(emaPeriod, atrPeriod int, multiplier float64) (*KeltnerChannels, error) {
	if err := validatePeriod(emaPeriod, 1); err != nil {
		return nil, err
	}
	if err := validatePeriod(atrPeriod, 1); err != nil {
		return nil, err
	}
	if multiplier <= 0 {
		return nil, fmt.Errorf("%w: ATR multiplier must be positive, got %v",
			ErrInvalidParameter, multiplier)
	}
	atr, err := NewATR(atrPeriod)
	if err != nil {
		return nil, err
	}
	return &KeltnerChannels{
		emaPeriod:  emaPeriod,
		atrPeriod:  atrPeriod,
		multiplier: multiplier,
		ema:        newEMASmoother(emaPeriod),
		atr:        atr,
	}, nil
}

func (k *KeltnerChannels) String() string {
	return fmt.Sprintf("Keltner(%d,%d,%g)", k.emaPeriod, k.atrPeriod, k.multiplier)
}

func (k *KeltnerChannels) minLength() int {
	if k.emaPeriod > k.atrPeriod {
		return k.emaPeriod
	}
	return k.atrPeriod
}

func (k *KeltnerChannels) Calculate(data []pricing.Candle) ([]BandsResult, error) {
	min := k.minLength()
	if err := validateLength(len(data), min); err != nil {
		return nil, err
	}
	k.Reset()
	return collect[pricing.Candle, BandsResult](k, data, len(data)-min+1)
}

func (k *KeltnerChannels) Next(sample pricing.Candle) (BandsResult, bool, error) {
	middle, emaOK := k.ema.push(sample.Close)
	atr, atrOK, err := k.atr.Next(sample)
	if err != nil {
		return BandsResult{}, false, err
	}
	if !emaOK || !atrOK {
		return BandsResult{}, false, nil
	}

	upper := middle + k.multiplier*atr
	lower := middle - k.multiplier*atr
	return BandsResult{
		Middle:    middle,
		Upper:     upper,
		Lower:     lower,
		Bandwidth: (upper - lower) / middle,
	}, true, nil
}

func (k *KeltnerChannels) Reset() {
	k.ema.reset()
	k.atr.Reset()
}
