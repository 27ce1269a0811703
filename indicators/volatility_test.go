package indicators

import (
	"testing"

	"github.com/quantstream/ta/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdDevCalculate(t *testing.T) {
	sd, err := NewStdDev[float64](3)
	require.NoError(t, err)

	result, err := sd.Calculate([]float64{2, 4, 6})
	require.NoError(t, err)
	require.Len(t, result, 1)

	// population variance 8/3
	assert.InDelta(t, 1.632993161855452, result[0], 1e-9)
}

func TestStdDevPeriodOneIsZero(t *testing.T) {
	sd, err := NewStdDev[float64](1)
	require.NoError(t, err)

	result, err := sd.Calculate([]float64{0.1, 0.2, 123456.789, 3.14159, 1e-9})
	require.NoError(t, err)
	for _, v := range result {
		assert.Equal(t, 0.0, v)
	}
}

func TestStdDevFlatSeries(t *testing.T) {
	sd, err := NewStdDev[float64](3)
	require.NoError(t, err)

	result, err := sd.Calculate([]float64{5, 5, 5, 5, 5})
	require.NoError(t, err)
	require.Len(t, result, 3)
	for _, v := range result {
		assert.Equal(t, 0.0, v)
	}
}

func atrTestCandles() []pricing.Candle {
	return []pricing.Candle{
		{High: 10, Low: 8, Close: 9},
		{High: 11, Low: 9, Close: 10},
		{High: 12, Low: 10, Close: 11},
		{High: 11, Low: 9, Close: 10},
		{High: 12, Low: 10, Close: 11},
		{High: 13, Low: 11, Close: 12},
	}
}

func TestATRCalculate(t *testing.T) {
	atr, err := NewATR(3)
	require.NoError(t, err)

	// Every true range in this series is 2, so the ATR stays 2. The
	// first value appears at the third candle: the first TR has no
	// previous close and is just high-low.
	result, err := atr.Calculate(atrTestCandles())
	require.NoError(t, err)
	require.Len(t, result, 4)
	for _, v := range result {
		assert.InDelta(t, 2.0, v, 1e-12)
	}
}

func TestATRNext(t *testing.T) {
	atr, err := NewATR(3)
	require.NoError(t, err)

	candles := atrTestCandles()
	_, ok, _ := atr.Next(candles[0])
	assert.False(t, ok)
	_, ok, _ = atr.Next(candles[1])
	assert.False(t, ok)

	v, ok, _ := atr.Next(candles[2])
	assert.True(t, ok)
	assert.InDelta(t, 2.0, v, 1e-12)

	atr.Reset()
	_, ok, _ = atr.Next(candles[3])
	assert.False(t, ok)
}

func TestBollingerBandsInvalidParameters(t *testing.T) {
	_, err := NewBollingerBands[float64](0, 2)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewBollingerBands[float64](20, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = NewBollingerBands[float64](20, -1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestBollingerBandsCalculate(t *testing.T) {
	bb, err := NewBollingerBands[float64](3, 2)
	require.NoError(t, err)

	result, err := bb.Calculate([]float64{5, 7, 9, 11, 13})
	require.NoError(t, err)
	require.Len(t, result, 3)

	sd := 1.632993161855452 // stddev of any 3-term arithmetic window with step 2
	first := result[0]
	assert.InDelta(t, 7.0, first.Middle, 1e-9)
	assert.InDelta(t, 7.0+2*sd, first.Upper, 1e-9)
	assert.InDelta(t, 7.0-2*sd, first.Lower, 1e-9)
	assert.InDelta(t, 4*sd/7.0, first.Bandwidth, 1e-9)

	assert.InDelta(t, 9.0, result[1].Middle, 1e-9)
	assert.InDelta(t, 11.0, result[2].Middle, 1e-9)
}

func TestKeltnerChannelsInvalidParameters(t *testing.T) {
	_, err := NewKeltnerChannels(0, 10, 2)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = NewKeltnerChannels(20, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = NewKeltnerChannels(20, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestKeltnerChannelsCalculate(t *testing.T) {
	kc, err := NewKeltnerChannels(2, 2, 1)
	require.NoError(t, err)

	candles := atrTestCandles()[:3]
	result, err := kc.Calculate(candles)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// EMA(2) of closes 9,10,11: seed 9.5, then (11-9.5)*2/3+9.5 = 10.5.
	// ATR(2) is 2 throughout.
	assert.InDelta(t, 9.5, result[0].Middle, 1e-9)
	assert.InDelta(t, 11.5, result[0].Upper, 1e-9)
	assert.InDelta(t, 7.5, result[0].Lower, 1e-9)
	assert.InDelta(t, 4.0/9.5, result[0].Bandwidth, 1e-9)

	assert.InDelta(t, 10.5, result[1].Middle, 1e-9)
	assert.InDelta(t, 12.5, result[1].Upper, 1e-9)
	assert.InDelta(t, 8.5, result[1].Lower, 1e-9)
}

func TestKeltnerChannelsMixedPeriods(t *testing.T) {
	// EMA and ATR periods differ; output starts once the longer one is
	// seeded.
	kc, err := NewKeltnerChannels(2, 4, 1.5)
	require.NoError(t, err)

	candles := atrTestCandles()
	result, err := kc.Calculate(candles)
	require.NoError(t, err)
	assert.Len(t, result, len(candles)-4+1)

	_, err = kc.Calculate(candles[:3])
	assert.ErrorIs(t, err, ErrInsufficientData)
}
