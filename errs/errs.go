// Package errs defines the sentinel error values returned by the vsf codec.
//
// Every operation in this module returns one of these values (or a wrapped
// form of one, produced with fmt.Errorf("%w: ...")) rather than a bespoke
// error type, so callers can branch with errors.Is.
package errs

import "errors"

var (
	// ErrUnexpectedEOF is returned when the decoder runs out of input bytes
	// before a value's declared encoding is fully consumed.
	ErrUnexpectedEOF = errors.New("vsf: unexpected end of input")

	// ErrInvalidSizeMarker is returned when a number-codec size-marker byte
	// is not one of '3','4','5','6','7'.
	ErrInvalidSizeMarker = errors.New("vsf: invalid size marker byte")

	// ErrInvalidTypeMarker is returned when the dispatcher reads a leading
	// type byte it doesn't recognize.
	ErrInvalidTypeMarker = errors.New("vsf: invalid type marker byte")

	// ErrValueOutOfRange is returned when a value can't be represented at
	// the requested or narrowest width.
	ErrValueOutOfRange = errors.New("vsf: value out of range for width")

	// ErrInvalidInclusive is returned when a decoded inclusive-length value
	// is smaller than the overhead of its own encoding.
	ErrInvalidInclusive = errors.New("vsf: inclusive length smaller than encoding overhead")

	// ErrOverflowForInclusive is returned when no supported width can hold
	// value+overhead for an inclusive-length encoding.
	ErrOverflowForInclusive = errors.New("vsf: value cannot fit any width after inclusive adjustment")

	// ErrInvalidTensor is returned for shape/stride/element-count mismatches.
	ErrInvalidTensor = errors.New("vsf: invalid tensor")

	// ErrInvalidName is returned when a section or field name fails the
	// identifier grammar.
	ErrInvalidName = errors.New("vsf: invalid identifier")

	// ErrSampleOutOfRange is returned when a bit-packed tensor sample
	// doesn't fit in its declared bit depth.
	ErrSampleOutOfRange = errors.New("vsf: sample out of range for bit depth")

	// ErrUnstableHeader is returned when the header stabilization loop
	// exceeds its bounded iteration count without reaching a fixpoint.
	ErrUnstableHeader = errors.New("vsf: header failed to stabilize")

	// ErrHashMismatch is returned when whole-file integrity verification
	// fails.
	ErrHashMismatch = errors.New("vsf: hash mismatch")

	// ErrInvalidData is a catch-all for parser-level semantic failures that
	// don't fit a more specific kind (non-ASCII identifier, bad size
	// marker in a structural context, malformed colour tag, etc.)
	ErrInvalidData = errors.New("vsf: invalid data")

	// ErrInvalidMagic is returned when the leading magic bytes don't match.
	ErrInvalidMagic = errors.New("vsf: invalid magic bytes")

	// ErrSectionNotFound is returned when a label lookup by name misses.
	ErrSectionNotFound = errors.New("vsf: section not found")

	// ErrFieldNotFound is returned when a field lookup by name misses within a section.
	ErrFieldNotFound = errors.New("vsf: field not found")

	// ErrCodecFailed wraps an underlying compression/decompression library
	// error with the algorithm and direction that failed.
	ErrCodecFailed = errors.New("vsf: wrapped codec operation failed")

	// ErrUnsupportedAlgorithm is returned when an algorithm byte in a
	// crypto or wrapped field has no registered codec/hasher/signer.
	ErrUnsupportedAlgorithm = errors.New("vsf: unsupported algorithm")
)
