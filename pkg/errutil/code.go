package errutil

const (
	codeBase = 1000
)

const (
	Unknown = codeBase + iota
	mjMalformedNotation
	mjIllegalHandMutation
	mjUnsupportedOperation
	mjInconsistentScoringInput
	mjNoDecomposition
	mjIllegalParameter
)

var errs = map[error]int{
	ErrMalformedNotation:        mjMalformedNotation,
	ErrIllegalHandMutation:      mjIllegalHandMutation,
	ErrUnsupportedOperation:     mjUnsupportedOperation,
	ErrInconsistentScoringInput: mjInconsistentScoringInput,
	ErrNoDecomposition:          mjNoDecomposition,
	ErrIllegalParameter:         mjIllegalParameter,
}
