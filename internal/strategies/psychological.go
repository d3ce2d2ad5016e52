package strategies

import "math"

// PsychologicalPrice rounds a price down to a conventional charm price
// such as 99.99, 999, 4995 or 49901.
func PsychologicalPrice(price float64) float64 {
	switch {
	case price < 100:
		return math.Floor(price) - 0.01
	case price < 1000:
		return math.Floor(price/10)*10 - 1
	case price < 10000:
		return math.Floor(price/100)*100 - 5
	default:
		return math.Floor(price/1000)*1000 - 99
	}
}

// NeedsPsychologicalPrice reports whether price is more than 10 units away from its charm price.
func NeedsPsychologicalPrice(price float64) bool {
	return math.Abs(price-PsychologicalPrice(price)) > 10
}
