package category

// Kind is a category kind.
type Kind uint8

// Known kinds.
const (
	// KindInvalid is the zero Kind. Classify never produces it; it only
	// appears on uninitialized values.
	KindInvalid Kind = iota

	// KindIntegerLike is the kind of finite values whose fractional part
	// is exactly zero.
	KindIntegerLike
	// KindFractionLike is the kind of finite values whose truncated
	// integer part is zero, but whose fractional part is not.
	KindFractionLike
	// KindIntegerAndFractionalPart is the kind of finite values with a
	// nonzero integer part and a nonzero fractional part.
	KindIntegerAndFractionalPart
	// KindNan is the kind of NaN.
	KindNan
	// KindInfinity is the kind of positive and negative infinity.
	KindInfinity
)

func (k Kind) String() string {
	switch k {
	case KindIntegerLike:
		return "IntegerLike"
	case KindFractionLike:
		return "FractionLike"
	case KindIntegerAndFractionalPart:
		return "IntegerAndFractionalPart"
	case KindNan:
		return "Nan"
	case KindInfinity:
		return "Infinity"
	}
	return "Invalid"
}
