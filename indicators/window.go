package indicators

import "math"

// window is a bounded FIFO of the last capacity values with a running sum,
// so the mean costs O(1) per push. Extrema and variance rescan the window,
// which is O(capacity) and keeps the period-1 standard deviation exactly
// zero (a running sum of squares would leave floating residue there).
type window struct {
	capacity int
	values   []float64
	sum      float64
}

func newWindow(capacity int) *window {
	return &window{
		capacity: capacity,
		values:   make([]float64, 0, capacity+1),
	}
}

func (w *window) push(v float64) {
	w.values = append(w.values, v)
	w.sum += v
	if len(w.values) > w.capacity {
		w.sum -= w.values[0]
		w.values = w.values[1:]
	}
}

func (w *window) full() bool {
	return len(w.values) >= w.capacity
}

// first returns the oldest value in the window.
func (w *window) first() float64 {
	return w.values[0]
}

func (w *window) mean() float64 {
	return w.sum / float64(len(w.values))
}

// stddev is the population standard deviation of the window contents
// (divide by n, not n-1).
func (w *window) stddev() float64 {
	var sum float64
	for _, v := range w.values {
		sum += v
	}
	return w.stddevAbout(sum / float64(len(w.values)))
}

// stddevAbout computes the population standard deviation around a given
// mean, for callers that already have one.
func (w *window) stddevAbout(mean float64) float64 {
	var variance float64
	for _, v := range w.values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(w.values))
	return math.Sqrt(variance)
}

func (w *window) max() float64 {
	m := w.values[0]
	for _, v := range w.values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func (w *window) min() float64 {
	m := w.values[0]
	for _, v := range w.values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func (w *window) reset() {
	w.values = w.values[:0]
	w.sum = 0
}
