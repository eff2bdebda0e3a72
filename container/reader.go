package container

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/section"
)

// File is a parsed VSF file ready for random-access reads: the header
// has been fully decoded, but section/blob bytes are only materialized
// on demand from the label's recorded offset and size.
type File struct {
	data        []byte
	header      Header
	hashPayload []byte
	hashOffset  int
}

// Open parses a VSF file's header and label table without decoding any
// section bodies, enabling random access by name.
func Open(data []byte) (*File, error) {
	header, hashPayload, hashOffset, _, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}

	return &File{data: data, header: header, hashPayload: hashPayload, hashOffset: hashOffset}, nil
}

// Version returns the file format version.
func (f *File) Version() uint64 { return f.header.Version }

// BackwardVersion returns the minimum reader version able to parse this file.
func (f *File) BackwardVersion() uint64 { return f.header.BackwardVersion }

// Labels returns the label table in file order.
func (f *File) Labels() []Label { return f.header.Labels }

func (f *File) label(labelName string) (Label, error) {
	for _, l := range f.header.Labels {
		if l.Name == labelName {
			return l, nil
		}
	}

	return Label{}, errs.ErrSectionNotFound
}

// Raw returns the exact labeled byte span, usable for an unboxed blob or
// for inspecting a section's wire bytes directly.
func (f *File) Raw(labelName string) ([]byte, error) {
	l, err := f.label(labelName)
	if err != nil {
		return nil, err
	}

	return f.data[l.Offset : l.Offset+l.Size], nil
}

// Section decodes the labeled span as a structured section.
func (f *File) Section(labelName string) (*section.Section, error) {
	raw, err := f.Raw(labelName)
	if err != nil {
		return nil, err
	}
	s, _, err := section.Decode(raw, decodeValue)

	return s, err
}
