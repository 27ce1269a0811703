package indicators

import (
	"fmt"

	"github.com/quantstream/ta/pricing"
)

// MACDResult is one MACD output step. The three fields are computed
// together from the same sample.
type MACDResult struct {
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD is moving average convergence/divergence: the difference between a
// fast and a slow EMA of closing prices, with a signal EMA over that
// difference. Values are emitted only once the slow EMA and the signal EMA
// are both seeded, so the fast and slow series are always aligned on the
// same sample index.
type MACD[T pricing.Sample] struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int

	fast   *emaSmoother
	slow   *emaSmoother
	signal *emaSmoother
}

var _ Indicator[float64, MACDResult] = (*MACD[float64])(nil)

// NewMACD creates a MACD indicator. fastPeriod must be strictly smaller
// than slowPeriod.
func NewMACD[T pricing.Sample](fastPeriod, slowPeriod, signalPeriod int) (*MACD[T], error) {
	if err := validatePeriod(fastPeriod, 1); err != nil {
		return nil, err
	}
	if err := validatePeriod(slowPeriod, 1); err != nil {
		return nil, err
	}
	if err := validatePeriod(signalPeriod, 1); err != nil {
		return nil, err
	}
	if fastPeriod >= slowPeriod {
		return nil, fmt.Errorf("%w: slow period must be greater than fast period (got fast=%d, slow=%d)",
			ErrInvalidParameter, fastPeriod, slowPeriod)
	}
	return &MACD[T]{
		fastPeriod:   fastPeriod,
		slowPeriod:   slowPeriod,
		signalPeriod: signalPeriod,
		fast:         newEMASmoother(fastPeriod),
		slow:         newEMASmoother(slowPeriod),
		signal:       newEMASmoother(signalPeriod),
	}, nil
}

func (m *MACD[T]) String() string {
	return fmt.Sprintf("MACD(%d,%d,%d)", m.fastPeriod, m.slowPeriod, m.signalPeriod)
}

func (m *MACD[T]) Calculate(data []T) ([]MACDResult, error) {
	min := m.slowPeriod + m.signalPeriod - 1
	if err := validateLength(len(data), min); err != nil {
		return nil, err
	}
	m.Reset()
	return collect[T, MACDResult](m, data, len(data)-min+1)
}

func (m *MACD[T]) Next(sample T) (MACDResult, bool, error) {
	c := pricing.Close(sample)

	fv, _ := m.fast.push(c)
	sv, sok := m.slow.push(c)
	if !sok {
		// The fast EMA seeds first (fast < slow); no MACD value until
		// the slow EMA is seeded too.
		return MACDResult{}, false, nil
	}

	macd := fv - sv
	sig, ok := m.signal.push(macd)
	if !ok {
		return MACDResult{}, false, nil
	}

	return MACDResult{
		MACD:      macd,
		Signal:    sig,
		Histogram: macd - sig,
	}, true, nil
}

func (m *MACD[T]) Reset() {
	m.fast.reset()
	m.slow.reset()
	m.signal.reset()
}
