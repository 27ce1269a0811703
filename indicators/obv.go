package indicators

import "github.com/quantstream/ta/pricing"

// OBV is on-balance volume: an unbounded running total seeded at 0 on the
// first candle, adding volume when the close rises, subtracting when it
// falls, unchanged when flat.
type OBV struct {
	prevClose float64
	hasPrev   bool
	value     float64
}

var _ Indicator[pricing.Candle, float64] = (*OBV)(nil)

// NewOBV creates an on-balance volume indicator. It takes no parameters.
func NewOBV() *OBV {
	return &OBV{}
}

func (o *OBV) String() string {
	return "OBV"
}

func (o *OBV) Calculate(data []pricing.Candle) ([]float64, error) {
	if err := validateLength(len(data), 1); err != nil {
		return nil, err
	}
	o.Reset()
	return collect[pricing.Candle, float64](o, data, len(data))
}

func (o *OBV) Next(sample pricing.Candle) (float64, bool, error) {
	if !o.hasPrev {
		o.prevClose = sample.Close
		o.hasPrev = true
		o.value = 0
		return 0, true, nil
	}

	switch {
	case sample.Close > o.prevClose:
		o.value += sample.Volume
	case sample.Close < o.prevClose:
		o.value -= sample.Volume
	}
	o.prevClose = sample.Close
	return o.value, true, nil
}

func (o *OBV) Reset() {
	o.prevClose = 0
	o.hasPrev = false
	o.value = 0
}
