// Package pricing defines the sample types indicators are computed over:
// bare float64 prices and OHLCV candles.
package pricing

// Candle is one OHLCV bar. No relationship between the fields is enforced
// (high >= low is assumed, never checked).
type Candle struct {
	Timestamp uint64 // unix seconds for the bar open

	Open  float64
	High  float64
	Low   float64
	Close float64

	Volume float64
}

// Sample is the set of types an indicator can consume. A bare float64 is the
// degenerate candle: every price field reads as the value itself and volume
// is zero.
type Sample interface {
	float64 | Candle
}

// Close returns the closing price of a sample.
func Close[T Sample](s T) float64 {
	switch v := any(s).(type) {
	case float64:
		return v
	case Candle:
		return v.Close
	}
	return 0
}

// High returns the highest price of a sample.
func High[T Sample](s T) float64 {
	switch v := any(s).(type) {
	case float64:
		return v
	case Candle:
		return v.High
	}
	return 0
}

// Low returns the lowest price of a sample.
func Low[T Sample](s T) float64 {
	switch v := any(s).(type) {
	case float64:
		return v
	case Candle:
		return v.Low
	}
	return 0
}

// Open returns the opening price of a sample.
func Open[T Sample](s T) float64 {
	switch v := any(s).(type) {
	case float64:
		return v
	case Candle:
		return v.Open
	}
	return 0
}

// Volume returns the traded volume of a sample, 0 for bare prices.
func Volume[T Sample](s T) float64 {
	if v, ok := any(s).(Candle); ok {
		return v.Volume
	}
	return 0
}

// Closes extracts the close series from a slice of samples.
func Closes[T Sample](data []T) []float64 {
	out := make([]float64, len(data))
	for i, s := range data {
		out[i] = Close(s)
	}
	return out
}
