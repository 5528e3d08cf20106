package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percentage retorna part/total*100, ou 0 quando o total é zero
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return part / total * 100
}

// Clamp limita f ao intervalo [lo, hi]
func Clamp(f, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, f))
}
