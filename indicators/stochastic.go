package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// StochasticResult is one stochastic oscillator output step: %K and its
// %D moving average.
type StochasticResult struct {
	K float64
	D float64
}

// Stochastic is the stochastic oscillator: %K locates the close within the
// highest-high/lowest-low range of the last kPeriod candles, %D is the
// simple moving average of %K over dPeriod. A zero-range window yields the
// middle value 50.
type Stochastic struct {
	kPeriod int
	dPeriod int

	highs   *window
	lows    *window
	kValues *window
}

var _ Indicator[pricing.Candle, StochasticResult] = (*Stochastic)(nil)

// NewStochastic creates a stochastic oscillator with the given %K and %D
// periods.
func NewStochastic(kPeriod, dPeriod int) (*Stochastic, error) {
	if err := validatePeriod(kPeriod, 1); err != nil {
		return nil, err
	}
	if err := validatePeriod(dPeriod, 1); err != nil {
		return nil, err
	}
	return &Stochastic{
		kPeriod: kPeriod,
		dPeriod: dPeriod,
		highs:   newWindow(kPeriod),
		lows:    newWindow(kPeriod),
		kValues: newWindow(dPeriod),
	}, nil
}

func (s *Stochastic) String() string {
	return fmt.Sprintf("Stoch(%d,%d)", s.kPeriod, s.dPeriod)
}

func (s *Stochastic) Calculate(data []pricing.Candle) ([]StochasticResult, error) {
	min := s.kPeriod + s.dPeriod - 1
	if err := validateLength(len(data), min); err != nil {
		return nil, err
	}
	s.Reset()
	return collect[pricing.Candle, StochasticResult](s, data, len(data)-min+1)
}

func (s *Stochastic) Next(sample pricing.Candle) (StochasticResult, bool, error) {
	s.highs.push(sample.High)
	s.lows.push(sample.Low)
	if !s.highs.full() {
		return StochasticResult{}, false, nil
	}

	highest := s.highs.max()
	lowest := s.lows.min()

	k := 50.0 // middle value when the window range is zero
	if highest != lowest {
		k = (sample.Close - lowest) / (highest - lowest) * 100
	}

	s.kValues.push(k)
	if !s.kValues.full() {
		return StochasticResult{}, false, nil
	}
	return StochasticResult{K: k, D: s.kValues.mean()}, true, nil
}

func (s *Stochastic) Reset() {
	s.highs.reset()
	s.lows.reset()
	s.kValues.reset()
}
