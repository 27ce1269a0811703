// Package indicators computes technical analysis indicators over price and
// candle series.
//
// Every indicator supports two consumption modes. Calculate treats its input
// as the entire history and returns the full output series. Next consumes one
// new sample at a time and returns the running value once the warm-up window
// is full. Both modes are driven by the same incremental state, so for any
// history the values emitted by Next match Calculate element for element.
package indicators

import "github.com/quantstream/ta/pricing"

// Indicator is the contract every indicator implements. T is the input
// sample type (float64 or pricing.Candle), O the output type (float64 or a
// result record such as MACDResult).
type Indicator[T pricing.Sample, O any] interface {
	// Calculate resets state and computes the output series for the whole
	// history. It fails with ErrInsufficientData when data is shorter than
	// the indicator's minimum. Afterwards the instance state is the same as
	// if data had been fed through Next, so streaming can continue from the
	// end of the batch.
	Calculate(data []T) ([]O, error)

	// Next consumes one sample. The boolean is false while the warm-up
	// window is not yet full; once the first value exists it is true on
	// every call.
	Next(sample T) (O, bool, error)

	// Reset clears all state to the newly-constructed equivalent.
	Reset()
}

// collect drives data through ind.Next and gathers the emitted values.
// Any error aborts the whole batch with no partial result.
func collect[T pricing.Sample, O any](ind Indicator[T, O], data []T, capacity int) ([]O, error) {
	out := make([]O, 0, capacity)
	for _, s := range data {
		v, ok, err := ind.Next(s)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}
