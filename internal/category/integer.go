package category

import "strconv"

var _ Category = IntegerLike(0)

// IntegerLike carries the truncated integer part of a value whose
// fractional part is zero. The payload keeps the sign of the input,
// including negative zero.
type IntegerLike float64

func (IntegerLike) Kind() Kind { return KindIntegerLike }

// Value returns the integer part as a float64.
func (i IntegerLike) Value() float64 { return float64(i) }

func (i IntegerLike) String() string {
	return "integer " + strconv.FormatFloat(float64(i), 'g', -1, 64)
}

func NewIntegerLike(value float64) IntegerLike {
	return IntegerLike(value)
}
