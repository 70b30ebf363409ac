package rating

import "math"

// The functions below follow the pure-Python backend of the reference
// TrueSkill library (Numerical Recipes erfc, Newton-refined erfcinv) rather
// than math.Erfc, so that ratings stored by earlier versions of the league
// are reproduced exactly on recompute.

func erfc(x float64) float64 {
	z := math.Abs(x)
	t := 1.0 / (1.0 + z/2.0)
	r := t * math.Exp(-z*z-1.26551223+t*(1.00002368+t*(
		0.37409196+t*(0.09678418+t*(-0.18628806+t*(
			0.27886807+t*(-1.13520398+t*(1.48851587+t*(
				-0.82215223+t*0.17087277)))))))))
	if x < 0 {
		return 2.0 - r
	}
	return r
}

func erfcinv(y float64) float64 {
	if y >= 2 {
		return -100.0
	}
	if y <= 0 {
		return 100.0
	}
	zeroPoint := y < 1
	if !zeroPoint {
		y = 2 - y
	}
	t := math.Sqrt(-2 * math.Log(y/2.0))
	x := -0.70711 * ((2.30753+t*0.27061)/(1.0+t*(0.99229+t*0.04481)) - t)
	for i := 0; i < 2; i++ {
		err := erfc(x) - y
		x += err / (1.12837916709551257*math.Exp(-(x*x)) - x*err)
	}
	if zeroPoint {
		return x
	}
	return -x
}

func cdf(x float64) float64 {
	return 0.5 * erfc(-x/math.Sqrt2)
}

func pdf(x float64) float64 {
	return 1 / math.Sqrt(2*math.Pi) * math.Exp(-(x*x)/2)
}

func ppf(x float64) float64 {
	return -math.Sqrt2 * erfcinv(2*x)
}

// vWin is the additive correction of the mean for a decisive outcome.
func vWin(diff, drawMargin float64) float64 {
	x := diff - drawMargin
	denom := cdf(x)
	if denom == 0 {
		return -x
	}
	return pdf(x) / denom
}

// wWin is the multiplicative correction of the variance for a decisive
// outcome. The reference library gives up outside (0, 1); the value is
// clamped instead so that the update stays total.
func wWin(diff, drawMargin float64) float64 {
	x := diff - drawMargin
	v := vWin(diff, drawMargin)
	w := v * (v + x)
	switch {
	case math.IsNaN(w) || w <= 0:
		return math.SmallestNonzeroFloat64
	case w >= 1:
		return math.Nextafter(1, 0)
	}
	return w
}
