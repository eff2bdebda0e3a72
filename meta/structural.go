package meta

import (
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// Offset is a byte offset, measured from the start of the file.
type Offset struct {
	V uint64
}

func NewOffset(v uint64) Offset { return Offset{V: v} }

func (o Offset) Tag() format.Tag { return format.TagOffset }

func (o Offset) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagOffset))

	return numcodec.AppendUint(buf, o.V)
}

// DecodeOffset decodes the bytes following an 'o' tag.
func DecodeOffset(data []byte) (Offset, int, error) {
	v, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return Offset{}, 0, err
	}

	return Offset{V: v}, consumed, nil
}

// Length is a byte length. The file header's own length field is
// self-referential ("inclusive": its encoded value already accounts for
// its own encoding width), so Length carries an Inclusive flag selecting
// between plain and inclusive-mode number encoding. Every other length
// field — a section preamble's size-in-bits field, a label descriptor's
// size field — is always plain.
type Length struct {
	V         uint64
	Inclusive bool
}

func NewLength(v uint64) Length          { return Length{V: v} }
func NewInclusiveLength(v uint64) Length { return Length{V: v, Inclusive: true} }

func (l Length) Tag() format.Tag { return format.TagLength }

func (l Length) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagLength))
	if l.Inclusive {
		out, err := numcodec.AppendInclusive(buf, l.V)
		if err != nil {
			// Construction-time validation (NewInclusiveLength callers pass
			// values already bounded by the assembler) should make this
			// unreachable; fall back to plain encoding rather than panic.
			return numcodec.AppendUint(buf, l.V)
		}

		return out
	}

	return numcodec.AppendUint(buf, l.V)
}

// DecodeLength decodes the bytes following a 'b' tag. Since the tag alone
// doesn't disambiguate inclusive vs plain mode, callers that know the
// context (the file header's length field) must call
// DecodeInclusiveLength instead.
func DecodeLength(data []byte) (Length, int, error) {
	v, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return Length{}, 0, err
	}

	return Length{V: v}, consumed, nil
}

// DecodeInclusiveLength decodes an inclusive-mode length following a 'b'
// tag, for the file header's length field.
func DecodeInclusiveLength(data []byte) (Length, int, error) {
	v, consumed, err := numcodec.DecodeInclusive(data)
	if err != nil {
		return Length{}, 0, err
	}

	return Length{V: v, Inclusive: true}, consumed, nil
}

// Count is a cardinality field (label count, section field count, tensor
// child count).
type Count struct {
	V uint64
}

func NewCount(v uint64) Count { return Count{V: v} }

func (c Count) Tag() format.Tag { return format.TagCount }

func (c Count) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagCount))

	return numcodec.AppendUint(buf, c.V)
}

// DecodeCount decodes the bytes following an 'n' tag.
func DecodeCount(data []byte) (Count, int, error) {
	v, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return Count{}, 0, err
	}

	return Count{V: v}, consumed, nil
}

// Version is the file format version field.
type Version struct {
	V uint64
}

func NewVersion(v uint64) Version { return Version{V: v} }

func (v Version) Tag() format.Tag { return format.TagVersion }

func (v Version) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagVersion))

	return numcodec.AppendUint(buf, v.V)
}

// DecodeVersion decodes the bytes following a 'z' tag.
func DecodeVersion(data []byte) (Version, int, error) {
	v, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return Version{}, 0, err
	}

	return Version{V: v}, consumed, nil
}

// BackwardVersion is the minimum reader version able to parse this file.
type BackwardVersion struct {
	V uint64
}

func NewBackwardVersion(v uint64) BackwardVersion { return BackwardVersion{V: v} }

func (b BackwardVersion) Tag() format.Tag { return format.TagBackwardVer }

func (b BackwardVersion) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagBackwardVer))

	return numcodec.AppendUint(buf, b.V)
}

// DecodeBackwardVersion decodes the bytes following a 'y' tag.
func DecodeBackwardVersion(data []byte) (BackwardVersion, int, error) {
	v, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return BackwardVersion{}, 0, err
	}

	return BackwardVersion{V: v}, consumed, nil
}

// MarkerDef declares a marker id at its point of definition within a
// section (used by formats that cross-reference repeated sub-structures).
type MarkerDef struct {
	V uint64
}

func NewMarkerDef(v uint64) MarkerDef { return MarkerDef{V: v} }

func (m MarkerDef) Tag() format.Tag { return format.TagMarkerDef }

func (m MarkerDef) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagMarkerDef))

	return numcodec.AppendUint(buf, m.V)
}

// DecodeMarkerDef decodes the bytes following an 'm' tag.
func DecodeMarkerDef(data []byte) (MarkerDef, int, error) {
	v, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return MarkerDef{}, 0, err
	}

	return MarkerDef{V: v}, consumed, nil
}

// MarkerRef references a previously defined MarkerDef by id.
type MarkerRef struct {
	V uint64
}

func NewMarkerRef(v uint64) MarkerRef { return MarkerRef{V: v} }

func (r MarkerRef) Tag() format.Tag { return format.TagMarkerRef }

func (r MarkerRef) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagMarkerRef))

	return numcodec.AppendUint(buf, r.V)
}

// DecodeMarkerRef decodes the bytes following an 'R' tag.
func DecodeMarkerRef(data []byte) (MarkerRef, int, error) {
	v, consumed, err := numcodec.DecodeUint(data)
	if err != nil {
		return MarkerRef{}, 0, err
	}

	return MarkerRef{V: v}, consumed, nil
}
