package floatcat

import "github.com/tsatke/floatcat/internal/category"

// Category is the classification result for a single float64.
// Exactly one of the five variants below is produced per input.
type Category interface {
	_cat()
}

// IntegerLike is the category of finite values with no fractional part,
// such as 1.0 or -100.0. Its value is the truncated integer part, sign
// included. Being integer-like means the value can usually be cast to an
// integer type without losing information, as long as it fits.
type IntegerLike float64

func (IntegerLike) _cat() {}

// FractionLike is the category of finite values with no integer part, such
// as 0.5 or -0.002. Its value is the signed fractional remainder. Casting a
// fraction-like value to an integer would discard it entirely.
type FractionLike float64

func (FractionLike) _cat() {}

// IntegerAndFractionalPart is the category of finite values that have both
// an integer and a fractional part, in that order. Both parts share the
// sign of the input, and Int+Frac reconstructs it.
type IntegerAndFractionalPart struct {
	Int  float64
	Frac float64
}

func (IntegerAndFractionalPart) _cat() {}

type nanType uint8

func (nanType) _cat() {}

type infinityType uint8

func (infinityType) _cat() {}

var (
	// Nan is the category of NaN inputs.
	Nan = nanType(0)
	// Infinity is the category of positive and negative infinity.
	Infinity = infinityType(0)
)

// IsIntegerLike reports whether the given category is IntegerLike.
func IsIntegerLike(c Category) bool {
	_, ok := c.(IntegerLike)
	return ok
}

// IsFractionLike reports whether the given category is FractionLike.
func IsFractionLike(c Category) bool {
	_, ok := c.(FractionLike)
	return ok
}

// IsIntegerAndFractionalPart reports whether the given category is
// IntegerAndFractionalPart.
func IsIntegerAndFractionalPart(c Category) bool {
	_, ok := c.(IntegerAndFractionalPart)
	return ok
}

// IsNan reports whether the given category is Nan.
func IsNan(c Category) bool {
	_, ok := c.(nanType)
	return ok
}

// IsInfinity reports whether the given category is Infinity.
func IsInfinity(c Category) bool {
	_, ok := c.(infinityType)
	return ok
}

// Categories is a list of categories in input order.
type Categories []Category

func (c Categories) Count() int {
	return len(c)
}

func (c Categories) Get(index int) Category {
	if index < 0 || index >= len(c) {
		return nil
	}
	return c[index]
}

func categoriesFromInternal(cats ...category.Category) Categories {
	var out Categories

	for _, c := range cats {
		out = append(out, categoryFromInternal(c))
	}

	return out
}

func categoryFromInternal(c category.Category) Category {
	switch c.Kind() {
	case category.KindIntegerLike:
		return IntegerLike(c.(category.IntegerLike).Value())
	case category.KindFractionLike:
		return FractionLike(c.(category.FractionLike).Value())
	case category.KindIntegerAndFractionalPart:
		mixed := c.(category.IntegerAndFractionalPart)
		return IntegerAndFractionalPart{
			Int:  mixed.Int,
			Frac: mixed.Frac,
		}
	case category.KindNan:
		return Nan
	case category.KindInfinity:
		return Infinity
	}
	panic("unsupported")
}
