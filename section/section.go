// Package section implements the VSF section encoder: a section is
// emitted as {preamble}[d<name>(d<field>:<value>)...], where the
// preamble's size field is self-referential (it counts the preamble's
// own bytes plus the bracketed body, in bits) and is resolved with a
// short two-pass fixpoint loop.
package section

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/meta"
	"github.com/nickspiker/vsf-sub001/name"
	"github.com/nickspiker/vsf-sub001/value"
)

// maxPreamblePasses bounds the preamble size-field fixpoint loop. The
// spec's own analysis says one re-emit always suffices in practice; this
// is a defensive ceiling, not an expected iteration count.
const maxPreamblePasses = 10

// Field is one (name, Value) pair inside a section body.
type Field struct {
	Name  string
	Value value.Value
}

// Section is a named, ordered list of fields, plus an optional
// per-section hash and/or signature carried in the preamble.
type Section struct {
	Name      string
	Fields    []Field
	Hash      *meta.Hash
	Signature *meta.Signature
}

// New validates sectionName against the identifier grammar and returns an
// empty Section ready to have fields appended (AddField validates each
// field name).
func New(sectionName string) (*Section, error) {
	if err := name.Validate(sectionName); err != nil {
		return nil, err
	}

	return &Section{Name: sectionName}, nil
}

// AddField appends a field, validating its name against the identifier
// grammar. Field name uniqueness within a section is the caller's
// responsibility (not enforced here, per the data model's contract).
func (s *Section) AddField(fieldName string, v value.Value) error {
	if err := name.Validate(fieldName); err != nil {
		return err
	}
	s.Fields = append(s.Fields, Field{Name: fieldName, Value: v})

	return nil
}

// SetHash attaches a per-section hash to the preamble.
func (s *Section) SetHash(h meta.Hash) { s.Hash = &h }

// SetSignature attaches a per-section signature to the preamble.
func (s *Section) SetSignature(sig meta.Signature) { s.Signature = &sig }

// Encode serializes the section to its wire bytes: {preamble}[body].
func (s *Section) Encode() ([]byte, error) {
	body, err := s.encodeBody()
	if err != nil {
		return nil, err
	}

	preamble, err := s.encodePreamble(body, 0)
	if err != nil {
		return nil, err
	}

	for pass := 0; pass < maxPreamblePasses; pass++ {
		totalBits := uint64(len(preamble)+len(body)) * 8
		next, err := s.encodePreamble(body, totalBits)
		if err != nil {
			return nil, err
		}
		if len(next) == len(preamble) {
			preamble = next

			break
		}
		preamble = next
		if pass == maxPreamblePasses-1 {
			return nil, errs.ErrUnstableHeader
		}
	}

	out := make([]byte, 0, len(preamble)+len(body))
	out = append(out, preamble...)
	out = append(out, body...)

	return out, nil
}

func (s *Section) encodePreamble(body []byte, sizeBits uint64) ([]byte, error) {
	buf := make([]byte, 0, 32)
	buf = append(buf, byte(format.TagSectionOpen))
	buf = meta.NewCount(uint64(len(s.Fields))).AppendTo(buf)
	buf = meta.NewLength(sizeBits).AppendTo(buf)
	if s.Hash != nil {
		buf = s.Hash.AppendTo(buf)
	}
	if s.Signature != nil {
		buf = s.Signature.AppendTo(buf)
	}
	buf = append(buf, byte(format.TagSectionClose))

	return buf, nil
}

func (s *Section) encodeBody() ([]byte, error) {
	sectionName, err := meta.NewDtypeName(s.Name)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 64)
	buf = append(buf, byte(format.TagBodyOpen))
	buf = sectionName.AppendTo(buf)

	for _, f := range s.Fields {
		fieldName, err := meta.NewDtypeName(f.Name)
		if err != nil {
			return nil, err
		}
		buf = append(buf, byte(format.TagFieldOpen))
		buf = fieldName.AppendTo(buf)
		buf = append(buf, byte(format.TagFieldSep))
		buf = f.Value.AppendTo(buf)
		buf = append(buf, byte(format.TagFieldClose))
	}

	buf = append(buf, byte(format.TagBodyClose))

	return buf, nil
}
