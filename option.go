package floatcat

import (
	"io"

	"github.com/spf13/afero"
)

type Option func(*Inspector)

func WithFs(fs afero.Fs) Option {
	return func(i *Inspector) {
		i.fs = fs
	}
}

func WithOutput(out io.Writer) Option {
	return func(i *Inspector) {
		i.out = out
	}
}

func WithErrOutput(errOut io.Writer) Option {
	return func(i *Inspector) {
		i.errOut = errOut
	}
}
