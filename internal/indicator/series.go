package indicator

// Rolling series math over daily bars. All helpers report a second ok value
// instead of inventing defaults: an indicator that cannot be computed is
// absent, never zero.

// SMA computes the simple moving average of the trailing `period` values.
func SMA(values []float64, period int) (float64, bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	return sum / float64(period), true
}

// RSI computes the relative strength index over the trailing `period` daily
// deltas: rs = mean gain / mean loss, rsi = 100 - 100/(1+rs). When the mean
// loss is zero, rs is treated as 0 to avoid the division. Needs period+1
// closes to form period deltas.
func RSI(closes []float64, period int) (float64, bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}

	var meanGain, meanLoss float64
	for i := len(closes) - period; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			meanGain += delta
		} else {
			meanLoss -= delta
		}
	}
	meanGain /= float64(period)
	meanLoss /= float64(period)

	rs := 0.0
	if meanLoss != 0 {
		rs = meanGain / meanLoss
	}
	return 100 - 100/(1+rs), true
}

// Uptrend reports whether the trailing `window` values are non-decreasing.
// Ties are allowed.
func Uptrend(values []float64, window int) (bool, bool) {
	if window <= 0 || len(values) < window {
		return false, false
	}
	tail := values[len(values)-window:]
	for i := 1; i < len(tail); i++ {
		if tail[i] < tail[i-1] {
			return false, true
		}
	}
	return true, true
}

// TrailingMin returns the minimum of the trailing `window` values.
func TrailingMin(values []float64, window int) (float64, bool) {
	if window <= 0 || len(values) < window {
		return 0, false
	}
	min := values[len(values)-window]
	for _, v := range values[len(values)-window:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

// TrailingMax returns the maximum of the trailing `window` values.
func TrailingMax(values []float64, window int) (float64, bool) {
	if window <= 0 || len(values) < window {
		return 0, false
	}
	max := values[len(values)-window]
	for _, v := range values[len(values)-window:] {
		if v > max {
			max = v
		}
	}
	return max, true
}
