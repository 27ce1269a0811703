package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// RSI is the relative strength index: gains and losses derived from
// consecutive close deltas, Wilder-smoothed independently, mapped onto
// 0..100. The first value needs period+1 samples (one delta per pair).
//
// Edge rule, applied identically in batch and streaming: when both
// averages are zero (a flat window) the RSI is 50; when only the loss
// average is zero it is 100.
type RSI[T pricing.Sample] struct {
	period    int
	gain      *wilderSmoother
	loss      *wilderSmoother
	prevClose float64
	hasPrev   bool
}

var _ Indicator[float64, float64] = (*RSI[float64])(nil)

// NewRSI creates a relative strength index with the given period.
func NewRSI[T pricing.Sample](period int) (*RSI[T], error) {
	if err := validatePeriod(period, 1); err != nil {
		return nil, err
	}
	return &RSI[T]{
		period: period,
		gain:   newWilderSmoother(period),
		loss:   newWilderSmoother(period),
	}, nil
}

func (r *RSI[T]) String() string {
	return fmt.Sprintf("RSI(%d)", r.period)
}

func (r *RSI[T]) Calculate(data []T) ([]float64, error) {
	if err := validateLength(len(data), r.period+1); err != nil {
		return nil, err
	}
	r.Reset()
	return collect[T, float64](r, data, len(data)-r.period)
}

func (r *RSI[T]) Next(sample T) (float64, bool, error) {
	c := pricing.Close(sample)
	if !r.hasPrev {
		r.prevClose = c
		r.hasPrev = true
		return 0, false, nil
	}

	delta := c - r.prevClose
	r.prevClose = c

	var gain, loss float64
	if delta > 0 {
		gain = delta
	} else {
		loss = -delta
	}

	avgGain, ok := r.gain.push(gain)
	avgLoss, _ := r.loss.push(loss)
	if !ok {
		return 0, false, nil
	}
	return rsiValue(avgGain, avgLoss), true, nil
}

func (r *RSI[T]) Reset() {
	r.gain.reset()
	r.loss.reset()
	r.prevClose = 0
	r.hasPrev = false
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgGain == 0 && avgLoss == 0 {
		return 50
	}
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
