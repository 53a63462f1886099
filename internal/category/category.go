// Package category splits float64 values into their integer and fractional
// parts and tags the result with one of five kinds. The mapping is total:
// every float64, including NaN and the infinities, has exactly one category.
package category

// Category is the classification result for a single float64.
// Exactly one concrete variant is produced per input.
type Category interface {
	Kind() Kind
	String() string
}

// Equal reports whether left and right are the same category.
// Kinds are compared first, so the payloadless kinds (Nan, Infinity) are
// equal on their kind alone and never fall into IEEE NaN comparison.
func Equal(left, right Category) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case IntegerLike:
		return l == right.(IntegerLike)
	case FractionLike:
		return l == right.(FractionLike)
	case IntegerAndFractionalPart:
		return l == right.(IntegerAndFractionalPart)
	}
	return true
}
