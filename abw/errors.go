package abw

import "errors"

// Sentinel errors matching the taxonomy of diagnosable parse failures.
// InflateFailed is deliberately absent: a failed inflate attempt is never
// surfaced as an error, only as a silent fallback to pass-through reading
// (see Decompressor).
var (
	// ErrUnsupportedFormat is returned when the input is not recognized
	// as AbiWord XML at all (IsFileFormatSupported would report false).
	ErrUnsupportedFormat = errors.New("abw: unsupported file format")

	// ErrMalformedStream is returned when the XML reader cannot make
	// forward progress, including the stuckness watchdog tripping.
	ErrMalformedStream = errors.New("abw: malformed xml stream")

	// ErrUnexpectedStructure is returned when a nesting violation is
	// found that the state machine's repair logic cannot patch.
	ErrUnexpectedStructure = errors.New("abw: unexpected document structure")

	// ErrInternal is returned when an invariant the collector relies on
	// is broken; it indicates a bug rather than bad input.
	ErrInternal = errors.New("abw: internal error")
)
