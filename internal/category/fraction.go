package category

import "strconv"

var _ Category = FractionLike(0)

// FractionLike carries the fractional remainder of a value whose truncated
// integer part is zero. The payload keeps the sign of the input.
type FractionLike float64

func (FractionLike) Kind() Kind { return KindFractionLike }

// Value returns the fractional part as a float64.
func (f FractionLike) Value() float64 { return float64(f) }

func (f FractionLike) String() string {
	return "fraction " + strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func NewFractionLike(value float64) FractionLike {
	return FractionLike(value)
}
