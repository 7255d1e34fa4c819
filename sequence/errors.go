package sequence

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is reported when a position falls outside the valid range
	// of a sequence.
	ErrOutOfRange = errors.New("index out of range")

	// ErrNilArgument is reported when a required sequence or predicate is nil.
	ErrNilArgument = errors.New("nil argument")

	// ErrKeyNotFound is reported by a Store when a key does not exist.
	ErrKeyNotFound = errors.New("key does not exist")

	// ErrUnknownStatement is reported by a Store for an unsupported statement type.
	ErrUnknownStatement = errors.New("unknown statement type")
)

// outOfRange panics with an error wrapping ErrOutOfRange.
func outOfRange(op string, pos, n int) {
	panic(errors.Wrapf(ErrOutOfRange, "%s: position %d, length %d", op, pos, n))
}

// nilArgument panics with an error wrapping ErrNilArgument.
func nilArgument(op string) {
	panic(errors.Wrap(ErrNilArgument, op))
}
