package category

const (
	// Infinity is the constant category of infinite inputs, regardless
	// of sign. It carries no payload.
	Infinity = infinityValue(0)
)

var _ Category = (*infinityValue)(nil)

type infinityValue uint8

func (infinityValue) Kind() Kind     { return KindInfinity }
func (infinityValue) String() string { return "infinity" }
