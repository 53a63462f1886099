package category

import "math"

// Classify maps any float64 to exactly one Category. It never fails; NaN
// and the infinities are categories in their own right, not errors.
//
// The infinity and NaN checks have to run before the split, because
// math.Modf on either would just hand NaN or infinity back and corrupt the
// zero checks below.
func Classify(v float64) Category {
	if math.IsInf(v, 0) {
		return Infinity
	}
	if math.IsNaN(v) {
		return Nan
	}

	intPart, fracPart := math.Modf(v)

	// Checking the fractional part first makes 0.0 and -0.0 integer-like
	// rather than a zero-valued fraction.
	if fracPart == 0 {
		return NewIntegerLike(intPart)
	}
	if intPart == 0 {
		return NewFractionLike(fracPart)
	}
	return NewIntegerAndFractionalPart(intPart, fracPart)
}
