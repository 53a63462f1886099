package inspect

import "fmt"

// TokenError describes an input token that is not a numeric literal.
// Index is 1-based.
type TokenError struct {
	Index int
	Token string
}

func (e TokenError) Error() string {
	return fmt.Sprintf("token %d: %q is not a number", e.Index, e.Token)
}

func ErrBadToken(index int, token string) error {
	return TokenError{
		Index: index,
		Token: token,
	}
}
