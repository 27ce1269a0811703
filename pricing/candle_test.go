package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandleAccessors(t *testing.T) {
	c := Candle{
		Timestamp: 1618185600,
		Open:      100,
		High:      105,
		Low:       98,
		Close:     103,
		Volume:    1000,
	}

	assert.Equal(t, 103.0, Close(c))
	assert.Equal(t, 105.0, High(c))
	assert.Equal(t, 98.0, Low(c))
	assert.Equal(t, 100.0, Open(c))
	assert.Equal(t, 1000.0, Volume(c))
}

func TestScalarAccessors(t *testing.T) {
	// A bare price is the degenerate candle: all price views equal the
	// value, volume is zero.
	p := 42.0

	assert.Equal(t, 42.0, Close(p))
	assert.Equal(t, 42.0, High(p))
	assert.Equal(t, 42.0, Low(p))
	assert.Equal(t, 42.0, Open(p))
	assert.Equal(t, 0.0, Volume(p))
}

func TestCloses(t *testing.T) {
	candles := []Candle{
		{Close: 1.5},
		{Close: 2.5},
		{Close: 3.5},
	}
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, Closes(candles))

	prices := []float64{4, 5, 6}
	assert.Equal(t, []float64{4, 5, 6}, Closes(prices))
}
