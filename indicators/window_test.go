package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowPushAndEvict(t *testing.T) {
	w := newWindow(3)

	w.push(2)
	w.push(4)
	assert.False(t, w.full())

	w.push(6)
	assert.True(t, w.full())
	assert.Equal(t, 12.0, w.sum)
	assert.Equal(t, 4.0, w.mean())

	// Oldest value evicted, sum adjusted in O(1)
	w.push(8)
	assert.True(t, w.full())
	assert.Equal(t, 18.0, w.sum)
	assert.Equal(t, 6.0, w.mean())
	assert.Equal(t, 4.0, w.first())
}

func TestWindowExtrema(t *testing.T) {
	w := newWindow(3)
	w.push(5)
	w.push(1)
	w.push(9)

	assert.Equal(t, 9.0, w.max())
	assert.Equal(t, 1.0, w.min())

	w.push(2) // evicts 5
	assert.Equal(t, 9.0, w.max())
	assert.Equal(t, 1.0, w.min())

	w.push(3) // evicts 1
	w.push(4) // evicts 9
	assert.Equal(t, 4.0, w.max())
	assert.Equal(t, 2.0, w.min())
}

func TestWindowStdDev(t *testing.T) {
	w := newWindow(3)
	w.push(2)
	w.push(4)
	w.push(6)

	// population variance 8/3
	assert.InDelta(t, 1.632993161855452, w.stddev(), 1e-12)
	assert.InDelta(t, 1.632993161855452, w.stddevAbout(4.0), 1e-12)
}

func TestWindowStdDevSingleValue(t *testing.T) {
	// A one-element window must have exactly zero deviation, with no
	// floating residue, for any input.
	w := newWindow(1)
	for _, v := range []float64{0.1, 0.2, 1e-7, 123456.789, 0.30000000000000004} {
		w.push(v)
		assert.Equal(t, 0.0, w.stddev())
	}
}

func TestWindowReset(t *testing.T) {
	w := newWindow(2)
	w.push(1)
	w.push(2)
	assert.True(t, w.full())

	w.reset()
	assert.False(t, w.full())
	assert.Equal(t, 0.0, w.sum)

	w.push(7)
	w.push(9)
	assert.Equal(t, 8.0, w.mean())
}
