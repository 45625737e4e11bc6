package equihash

import "errors"

// Parameter and construction faults. These are reported when the caller asks
// for something the verifier can not do, not when a solution is wrong.
var (
	ErrParamsInvalid = errors.New("the equihash parameters are not supported")
	ErrHashInit      = errors.New("the hash primitive rejected the configuration")
)

// Content level rejections. Any of these means "not a valid proof".
var (
	ErrHeaderLength      = errors.New("the header must be exactly 140 bytes")
	ErrSolutionLength    = errors.New("the solution length does not match the parameters")
	ErrIndexOutOfRange   = errors.New("a solution index does not fit the index width")
	ErrDuplicateIndex    = errors.New("the solution repeats a leaf index")
	ErrBadOrdering       = errors.New("the solution index tree is not in canonical order")
	ErrCollisionMismatch = errors.New("paired subtrees do not collide on the required bits")
	ErrNonZeroDigest     = errors.New("the solution digests do not collapse to zero")
)

var rejections = []error{
	ErrHeaderLength,
	ErrSolutionLength,
	ErrIndexOutOfRange,
	ErrDuplicateIndex,
	ErrBadOrdering,
	ErrCollisionMismatch,
	ErrNonZeroDigest,
}

// IsRejection returns true if err says the solution is invalid, as opposed to
// the verifier being unable to check it.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
