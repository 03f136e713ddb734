package primality

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInverse is returned by ModInverse when the inverse does not exist,
	// i.e. gcd(a, n) != 1.
	ErrNoInverse = errors.New("primality: no modular inverse")

	// ErrOddModulus is returned when an operation requiring an odd positive
	// modulus is given an even or non-positive one.
	ErrOddModulus = errors.New("primality: modulus must be odd and positive")
)

// InvariantError reports a broken precondition: a search that mathematics
// says must succeed for a genuinely prime modulus came up empty. It never
// describes a property of the number under test, only misuse (for example
// running the Lehmer stage on a composite that the cheaper filters would
// have rejected).
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string { return "primality: invariant violated: " + e.msg }

func invariantf(format string, args ...interface{}) error {
	return &InvariantError{msg: fmt.Sprintf(format, args...)}
}
