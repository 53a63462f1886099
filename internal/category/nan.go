package category

const (
	// Nan is the constant category of NaN inputs. It carries no payload,
	// so comparing it never touches IEEE NaN comparison semantics.
	Nan = nanValue(0)
)

var _ Category = (*nanValue)(nil)

type nanValue uint8

func (nanValue) Kind() Kind     { return KindNan }
func (nanValue) String() string { return "NaN" }
