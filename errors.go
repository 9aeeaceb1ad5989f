// errors.go declares the package's typed errors, grounded on
// original_source/binpack_error.rs's error kinds (IoError, InvalidMagic,
// InvalidFormat, EndOfFile), expressed with the stdlib errors/fmt idiom
// (errors.Is-compatible sentinels plus fmt.Errorf("%w", ...) wrapping)
// rather than a third-party errors package — see DESIGN.md for why no
// pack library was a better fit here.

package binpack

import "errors"

// ErrInvalidMagic is returned when a chunk header does not start with
// "BINP".
var ErrInvalidMagic = errors.New("binpack: chunk header has invalid magic")

// ErrEndOfFile is returned at reader construction when the underlying
// file contains no chunk at all.
var ErrEndOfFile = errors.New("binpack: no chunks in file")

// ErrChunkTooLarge is returned when a chunk header declares a payload
// size exceeding MaxChunkSize.
var ErrChunkTooLarge = errors.New("binpack: chunk size exceeds the 100 MiB cap")

// InvalidFormatError wraps a format violation detected mid-stream:
// truncated chunk, a bit-stream read past end of chunk, or a decoded move
// outside the enumerated range for the current position. All such errors
// are fatal for the stream they occur in.
type InvalidFormatError struct {
	Msg string
	Err error
}

func (e *InvalidFormatError) Error() string {
	if e.Err != nil {
		return "binpack: invalid format: " + e.Msg + ": " + e.Err.Error()
	}
	return "binpack: invalid format: " + e.Msg
}

func (e *InvalidFormatError) Unwrap() error { return e.Err }

func invalidFormat(msg string, cause error) error {
	return &InvalidFormatError{Msg: msg, Err: cause}
}
