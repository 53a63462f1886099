// Package inspect reads numeric literals from a source and reports the
// category of each one.
package inspect

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"

	"github.com/spf13/afero"
	"github.com/tsatke/floatcat/internal/category"
)

// Inspector classifies whitespace separated numeric literals from an
// io.Reader or from a file. One report line per literal is written to the
// configured output, and the categories are returned in input order.
//
//	inspector.Inspect(strings.NewReader(`1.5 0.2`)) // prints two lines
//
// Only tokenization can fail. Classification itself is total, so NaN and
// infinity literals are reported like any other value.
type Inspector struct {
	fs afero.Fs

	// out is the writer that receives one line per classified value.
	out io.Writer
	// errOut is the writer that receives a diagnostic line for every
	// token that fails to parse.
	errOut io.Writer
}

// New creates a new Inspector. Without options it reads from the OS
// filesystem and discards its report and diagnostic output.
func New(opts ...Option) *Inspector {
	i := &Inspector{
		fs:     afero.NewOsFs(),
		out:    ioutil.Discard,
		errOut: ioutil.Discard,
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Inspect scans the given source for whitespace separated numeric literals
// and classifies each one. strconv.ParseFloat decides what a numeric literal
// is, so "NaN", "Inf" and "-Inf" are accepted.
func (i *Inspector) Inspect(source io.Reader) ([]category.Category, error) {
	scanner := bufio.NewScanner(source)
	scanner.Split(bufio.ScanWords)

	var categories []category.Category
	index := 0
	for scanner.Scan() {
		index++
		tok := scanner.Text()

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			tokenErr := ErrBadToken(index, tok)
			_, _ = fmt.Fprintf(i.errOut, "%s\n", tokenErr)
			return nil, tokenErr
		}

		cat := category.Classify(v)
		categories = append(categories, cat)

		if _, err := fmt.Fprintf(i.out, "%s -> %s\n", tok, cat); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

// InspectFile opens the given path on the configured filesystem and
// inspects its contents.
func (i *Inspector) InspectFile(path string) ([]category.Category, error) {
	file, err := i.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return i.Inspect(file)
}
