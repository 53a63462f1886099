// Package floatcat classifies float64 values by their shape. Every value
// falls into exactly one of five categories: integer-like, fraction-like,
// integer-and-fractional-part, NaN or infinity. Callers can branch on the
// category before deciding, for example, whether a value is safe to cast to
// an integer or whether a fractional component needs displaying.
package floatcat

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/tsatke/floatcat/internal/category"
	"github.com/tsatke/floatcat/internal/inspect"
)

// Classify maps any float64 to exactly one Category. It is pure and total:
// NaN and the infinities are categories of their own, not errors.
//
//	floatcat.Classify(1.5) // IntegerAndFractionalPart{Int: 1, Frac: 0.5}
//	floatcat.Classify(1.0) // IntegerLike(1)
//	floatcat.Classify(0.2) // FractionLike(0.2)
func Classify(v float64) Category {
	return categoryFromInternal(category.Classify(v))
}

// Inspector classifies whitespace separated numeric literals from strings,
// readers or files, writing one report line per value to its output.
type Inspector struct {
	inspector *inspect.Inspector

	fs     afero.Fs
	out    io.Writer
	errOut io.Writer
}

func NewInspector(opts ...Option) Inspector {
	i := Inspector{
		fs:     afero.NewOsFs(),
		out:    os.Stdout,
		errOut: os.Stderr,
	}

	for _, opt := range opts {
		opt(&i)
	}

	i.inspector = inspect.New(
		inspect.WithFs(i.fs),
		inspect.WithOutput(i.out),
		inspect.WithErrOutput(i.errOut),
	)

	return i
}

func (i Inspector) InspectString(source string) (Categories, error) {
	return i.Inspect(strings.NewReader(source))
}

// Inspect classifies every numeric literal in the given reader and returns
// the categories in input order. If a token is not a numeric literal, the
// returned error is of type TokenError. Classification itself never fails;
// "NaN" and "Inf" literals yield the Nan and Infinity categories.
func (i Inspector) Inspect(source io.Reader) (Categories, error) {
	results, err := i.inspector.Inspect(source)
	if err != nil {
		return nil, errorFromInternal(err)
	}
	return categoriesFromInternal(results...), nil
}

// InspectFile behaves like Inspect, reading from the given path on the
// configured filesystem.
func (i Inspector) InspectFile(path string) (Categories, error) {
	results, err := i.inspector.InspectFile(path)
	if err != nil {
		return nil, errorFromInternal(err)
	}
	return categoriesFromInternal(results...), nil
}
