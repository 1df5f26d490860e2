package errutil

import (
	"github.com/pkg/errors"
)

var (
	ErrMalformedNotation        = errors.New("malformed notation")
	ErrIllegalHandMutation      = errors.New("illegal hand mutation")
	ErrUnsupportedOperation     = errors.New("unsupported operation")
	ErrInconsistentScoringInput = errors.New("inconsistent scoring input")
	ErrNoDecomposition          = errors.New("no decomposition")
	ErrIllegalParameter         = errors.New("illegal parameter")
)

//Code code for the error
func Code(err error) int {
	if c, ok := errs[errors.Cause(err)]; ok {
		return c
	}
	return Unknown
}
