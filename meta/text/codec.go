// Package text implements the pluggable string codec interface used by
// the VSF string value: Encode(s) -> bytes, Decode(bytes, charCount) ->
// (s, bytesConsumed). Huffman text compression is treated as one
// interchangeable implementation of Codec alongside a Null identity
// codec used for debugging.
package text

// Codec is the pluggable string codec interface. Implementations must
// return the exact number of bytes consumed from Decode so the outer
// section/value parser can advance its cursor correctly.
type Codec interface {
	// Name identifies the codec for diagnostics; it is not part of the
	// wire format (the wire format carries no codec-selector byte — the
	// codec in use is a builder/decoder-wide configuration choice).
	Name() string

	// EncodeText encodes s to its codec-specific byte form.
	EncodeText(s string) []byte

	// DecodeTextWithSize decodes charCount characters from the front of
	// data, returning the decoded string and the number of bytes of data
	// consumed.
	DecodeTextWithSize(data []byte, charCount int) (string, int, error)
}
