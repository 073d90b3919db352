// Package coreerr defines the small set of cross-cutting error codes
// (§6) that callers crossing a filter/scorer/directory package boundary
// need to branch on, without reaching into another package's private
// sentinel errors.
package coreerr

import "errors"

// Sentinel errors, one per stable code. Wrap with fmt.Errorf("...: %w")
// at the point of use; Code recovers the original code through
// errors.Is-compatible unwrapping.
var (
	ErrUnknownScorer = errors.New("unknown_scorer")
	ErrMalformedArgs = errors.New("malformed_args")
	ErrMissingField  = errors.New("missing_field")
	ErrMissingColumn = errors.New("missing_column")
	ErrCodecMismatch = errors.New("codec_mismatch")
	ErrIO            = errors.New("io_error")
	ErrCancelled     = errors.New("cancelled")
)

var codes = []error{
	ErrUnknownScorer,
	ErrMalformedArgs,
	ErrMissingField,
	ErrMissingColumn,
	ErrCodecMismatch,
	ErrIO,
	ErrCancelled,
}

// Code returns the stable string code err wraps (via errors.Is against
// each known sentinel), or "" if err matches none of them.
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c) {
			return c.Error()
		}
	}
	return ""
}
