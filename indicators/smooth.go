package indicators

// emaSmoother is the standard exponential recurrence with
// alpha = 2/(period+1). The first smoothed value is the simple average of
// the first period inputs; this seeding rule is used everywhere, in batch
// and streaming alike, so the two paths always agree.
type emaSmoother struct {
	period    int
	alpha     float64
	count     int
	warmupSum float64
	value     float64
}

func newEMASmoother(period int) *emaSmoother {
	return &emaSmoother{
		period: period,
		alpha:  2.0 / float64(period+1),
	}
}

// push consumes one value. The boolean is false until the seed average is
// complete.
func (e *emaSmoother) push(v float64) (float64, bool) {
	if e.count < e.period {
		e.warmupSum += v
		e.count++
		if e.count < e.period {
			return 0, false
		}
		e.value = e.warmupSum / float64(e.period)
		return e.value, true
	}
	e.value = (v-e.value)*e.alpha + e.value
	return e.value, true
}

func (e *emaSmoother) reset() {
	e.count = 0
	e.warmupSum = 0
	e.value = 0
}

// wilderSmoother is Wilder's smoothing, used for RSI gain/loss averages and
// ATR: new = (prev*(period-1) + current) / period, seeded with the simple
// average of the first period inputs.
type wilderSmoother struct {
	period    int
	count     int
	warmupSum float64
	value     float64
}

func newWilderSmoother(period int) *wilderSmoother {
	return &wilderSmoother{period: period}
}

func (w *wilderSmoother) push(v float64) (float64, bool) {
	if w.count < w.period {
		w.warmupSum += v
		w.count++
		if w.count < w.period {
			return 0, false
		}
		w.value = w.warmupSum / float64(w.period)
		return w.value, true
	}
	w.value = (w.value*float64(w.period-1) + v) / float64(w.period)
	return w.value, true
}

func (w *wilderSmoother) reset() {
	w.count = 0
	w.warmupSum = 0
	w.value = 0
}
