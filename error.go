package floatcat

import (
	"fmt"

	"github.com/tsatke/floatcat/internal/inspect"
)

// TokenError describes an input token that could not be parsed as a numeric
// literal. Index is 1-based.
type TokenError struct {
	Index int
	Token string
}

func (e TokenError) Error() string {
	return fmt.Sprintf("token %d: %q is not a number", e.Index, e.Token)
}

func errorFromInternal(err error) error {
	if tokErr, ok := err.(inspect.TokenError); ok {
		return TokenError{
			Index: tokErr.Index,
			Token: tokErr.Token,
		}
	}
	return err
}
