package category

import "strconv"

var _ Category = IntegerAndFractionalPart{}

// IntegerAndFractionalPart carries the integer and fractional parts of a
// value that has both, in that order. Both parts share the sign of the
// input, and Int+Frac reconstructs it.
type IntegerAndFractionalPart struct {
	Int  float64
	Frac float64
}

func (IntegerAndFractionalPart) Kind() Kind { return KindIntegerAndFractionalPart }

func (m IntegerAndFractionalPart) String() string {
	return "integer " + strconv.FormatFloat(m.Int, 'g', -1, 64) +
		" and fraction " + strconv.FormatFloat(m.Frac, 'g', -1, 64)
}

func NewIntegerAndFractionalPart(intPart, fracPart float64) IntegerAndFractionalPart {
	return IntegerAndFractionalPart{
		Int:  intPart,
		Frac: fracPart,
	}
}
