package sauce

import "errors"

// Error sentinels for the conditions callers are expected to handle by
// branching, not by treating the library as broken.
//
// ErrNoSauce and ErrNoComments mean "absent", not "malformed" — a buffer
// with no trailing SAUCE record is not an error condition in itself.
// ErrInvalidSauce means a record is present but structurally broken
// (an unparseable version field, or the all-zero sentinel record).
// ErrInvalidLength signals a precondition violation on a raw helper such
// as writeField, where the caller supplied the wrong number of bytes.
var (
	ErrNoSauce       = errors.New("sauce: no SAUCE record")
	ErrNoComments    = errors.New("sauce: no comment block")
	ErrInvalidSauce  = errors.New("sauce: invalid SAUCE record")
	ErrInvalidLength = errors.New("sauce: invalid length")
)

// IOError wraps a system-level failure from the file-backed reader or
// writer (spec §7 category 3). It is never returned for the "expected
// absence" or "malformed input" categories above.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return "sauce: " + e.Op + ": " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

func wrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Err: err}
}
