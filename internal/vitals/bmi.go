// Package vitals holds derived clinical values computed on the client.
package vitals

import "math"

// BMI computes body mass index from weight in kilograms and height in
// centimetres, rounded to one decimal place. ok is false when either input
// is missing, non-positive, or not a number; callers leave the display
// blank in that case rather than surfacing an error.
func BMI(weightKg, heightCm float64) (float64, bool) {
	if math.IsNaN(weightKg) || math.IsNaN(heightCm) {
		return 0, false
	}
	if weightKg <= 0 || heightCm <= 0 {
		return 0, false
	}
	m := heightCm / 100
	v := weightKg / (m * m)
	return math.Round(v*10) / 10, true
}

// BandKey returns the localization key for the band containing the rounded
// BMI value. Cut-offs are the WHO boundaries 18.5, 25 and 30; each boundary
// value belongs to the band above it.
func BandKey(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "bmi.underweight"
	case bmi < 25:
		return "bmi.normal"
	case bmi < 30:
		return "bmi.overweight"
	default:
		return "bmi.obese"
	}
}
