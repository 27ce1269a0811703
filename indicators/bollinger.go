package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// BandsResult is one channel output step, shared by Bollinger Bands and
// Keltner Channels. Bandwidth is (upper-lower)/middle.
type BandsResult struct {
	Middle    float64
	Upper     float64
	Lower     float64
	Bandwidth float64
}

// BollingerBands is an SMA middle band with upper and lower bands k
// population standard deviations away.
type BollingerBands[T pricing.Sample] struct {
	period int
	k      float64
	win    *window
}

var _ Indicator[float64, BandsResult] = (*BollingerBands[float64])(nil)

// NewBollingerBands creates Bollinger Bands with the given period and
// standard deviation multiplier k. k must be strictly positive.
func NewBollingerBands[T pricing.Sample](period int, k float64) (*BollingerBands[T], error) {
	if err := validatePeriod(period, 1); err != nil {
		return nil, err
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: standard deviation multiplier must be positive, got %v",
			ErrInvalidParameter, k)
	}
	return &BollingerBands[T]{
		period: period,
		k:      k,
		win:    newWindow(period),
	}, nil
}

func (b *BollingerBands[T]) String() string {
	return fmt.Sprintf("BB(%d,%g)", b.period, b.k)
}

func (b *BollingerBands[T]) Calculate(data []T) ([]BandsResult, error) {
	if err := validateLength(len(data), b.period); err != nil {
		return nil, err
	}
	b.Reset()
	return collect[T, BandsResult](b, data, len(data)-b.period+1)
}

func (b *BollingerBands[T]) Next(sample T) (BandsResult, bool, error) {
	b.win.push(pricing.Close(sample))
	if !b.win.full() {
		return BandsResult{}, false, nil
	}

	middle := b.win.mean()
	sd := b.win.stddevAbout(middle)

	upper := middle + b.k*sd
	lower := middle - b.k*sd
	return BandsResult{
		Middle:    middle,
		Upper:     upper,
		Lower:     lower,
		Bandwidth: (upper - lower) / middle,
	}, true, nil
}

func (b *BollingerBands[T]) Reset() {
	b.win.reset()
}
