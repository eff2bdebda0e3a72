// Package container implements the VSF file header, its label table, and
// the stabilization loop that resolves the self-reference between the
// header's own inclusive length field and the section offsets that
// depend on it, plus the Builder/Reader that assemble and open whole
// files.
package container

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/meta"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// Magic is the four leading bytes of every VSF file: "RÅ" in UTF-8
// followed by the header-open marker '<'.
var Magic = [4]byte{0x52, 0xC3, 0x85, '<'}

// maxHeaderPasses bounds both the inclusive-length fixpoint and the
// outer label-offset stabilization loop; in practice both converge
// within two or three passes.
const maxHeaderPasses = 10

// hashPayloadSize is the fixed BLAKE3 digest width; since it never
// changes between the zero placeholder and the final hash, the header's
// byte layout is immutable across the hash patch step.
const hashPayloadSize = 32

// Header is the mutable, in-progress file header: version pair and label
// table. build returns the offset of the hash payload within the rendered
// bytes alongside them, so Builder can patch it in place.
type Header struct {
	Version         uint64
	BackwardVersion uint64
	Labels          []Label
}

// build renders the full header (magic through '>'), resolving the
// inclusive length field and every label's offset to a fixpoint. Label
// Size and ChildCount must already be set by the caller; Offset is
// computed here. Returns the header bytes and the byte offset of the
// 32-byte hash payload within them.
func (h *Header) build() ([]byte, int, error) {
	for outer := 0; outer < maxHeaderPasses; outer++ {
		tail, hashOffInTail, err := encodeTail(h.Version, h.BackwardVersion, h.Labels)
		if err != nil {
			return nil, 0, err
		}

		headerLen, lenField, err := stabilizeLength(tail)
		if err != nil {
			return nil, 0, err
		}

		changed := false
		running := headerLen
		for i := range h.Labels {
			if h.Labels[i].Offset != running {
				h.Labels[i].Offset = running
				changed = true
			}
			running += h.Labels[i].Size
		}

		if !changed {
			full := make([]byte, 0, len(Magic)+len(lenField)+len(tail))
			full = append(full, Magic[:]...)
			full = append(full, lenField...)
			full = append(full, tail...)

			return full, len(Magic) + len(lenField) + hashOffInTail, nil
		}
		if outer == maxHeaderPasses-1 {
			return nil, 0, errs.ErrUnstableHeader
		}
	}

	return nil, 0, errs.ErrUnstableHeader
}

// stabilizeLength resolves the header-length field's self-reference: the
// field's encoded value must equal the byte count of magic+lengthField+
// tail, including the length field's own (variable-width) bytes.
func stabilizeLength(tail []byte) (uint64, []byte, error) {
	value := uint64(len(Magic) + len(tail))

	for pass := 0; pass < maxHeaderPasses; pass++ {
		lenField := meta.NewInclusiveLength(value).AppendTo(nil)
		actual := uint64(len(Magic) + len(lenField) + len(tail))
		if actual == value {
			return actual, lenField, nil
		}
		value = actual
		if pass == maxHeaderPasses-1 {
			return 0, nil, errs.ErrUnstableHeader
		}
	}

	return 0, nil, errs.ErrUnstableHeader
}

// encodeTail renders everything after the length field: version,
// backward-version, the zero-filled hash placeholder, label count, each
// label descriptor, and the header close marker. Returns the byte
// offset of the hash payload within the returned slice.
func encodeTail(version, backward uint64, labels []Label) ([]byte, int, error) {
	buf := make([]byte, 0, 64+32*len(labels))
	buf = meta.NewVersion(version).AppendTo(buf)
	buf = meta.NewBackwardVersion(backward).AppendTo(buf)

	buf = append(buf, byte(format.TagHash), byte(format.AlgBLAKE3))
	buf = numcodec.AppendUint(buf, hashPayloadSize*8)
	hashOffset := len(buf)
	buf = append(buf, make([]byte, hashPayloadSize)...)

	buf = meta.NewCount(uint64(len(labels))).AppendTo(buf)
	for _, l := range labels {
		var err error
		buf, err = l.encode(buf)
		if err != nil {
			return nil, 0, err
		}
	}
	buf = append(buf, byte(format.TagHeaderClose))

	return buf, hashOffset, nil
}

// decodeHeader parses the magic, inclusive length field, version pair,
// hash field, and label table. Returns the parsed Header, the hash
// payload bytes, the absolute byte offset of that payload within data,
// and the total header byte length (magic through '>').
func decodeHeader(data []byte) (Header, []byte, int, int, error) {
	if len(data) < len(Magic) || [4]byte{data[0], data[1], data[2], data[3]} != Magic {
		return Header{}, nil, 0, 0, errs.ErrInvalidMagic
	}
	pos := len(Magic)

	if pos >= len(data) || format.Tag(data[pos]) != format.TagLength {
		return Header{}, nil, 0, 0, errs.ErrInvalidData
	}
	pos++
	headerLen, n, err := meta.DecodeInclusiveLength(data[pos:])
	if err != nil {
		return Header{}, nil, 0, 0, err
	}
	pos += n

	if pos >= len(data) || format.Tag(data[pos]) != format.TagVersion {
		return Header{}, nil, 0, 0, errs.ErrInvalidData
	}
	pos++
	version, n, err := meta.DecodeVersion(data[pos:])
	if err != nil {
		return Header{}, nil, 0, 0, err
	}
	pos += n

	if pos >= len(data) || format.Tag(data[pos]) != format.TagBackwardVer {
		return Header{}, nil, 0, 0, errs.ErrInvalidData
	}
	pos++
	backward, n, err := meta.DecodeBackwardVersion(data[pos:])
	if err != nil {
		return Header{}, nil, 0, 0, err
	}
	pos += n

	if pos >= len(data) || format.Tag(data[pos]) != format.TagHash {
		return Header{}, nil, 0, 0, errs.ErrInvalidData
	}
	pos++
	fileHash, n, err := meta.DecodeHash(data[pos:])
	if err != nil {
		return Header{}, nil, 0, 0, err
	}
	pos += n
	hashOffset := pos - len(fileHash.Payload)

	if pos >= len(data) || format.Tag(data[pos]) != format.TagCount {
		return Header{}, nil, 0, 0, errs.ErrInvalidData
	}
	pos++
	count, n, err := meta.DecodeCount(data[pos:])
	if err != nil {
		return Header{}, nil, 0, 0, err
	}
	pos += n

	labels := make([]Label, 0, count.V)
	for i := uint64(0); i < count.V; i++ {
		lbl, n, err := decodeLabel(data[pos:])
		if err != nil {
			return Header{}, nil, 0, 0, err
		}
		pos += n
		labels = append(labels, lbl)
	}

	if pos >= len(data) || format.Tag(data[pos]) != format.TagHeaderClose {
		return Header{}, nil, 0, 0, errs.ErrInvalidData
	}
	pos++

	if uint64(pos) != headerLen.V {
		return Header{}, nil, 0, 0, errs.ErrInvalidData
	}

	return Header{Version: version.V, BackwardVersion: backward.V, Labels: labels}, fileHash.Payload, hashOffset, pos, nil
}
