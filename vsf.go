// Package vsf provides convenient top-level wrappers around the
// container package for the most common use case: build a file from a
// handful of named sections and fields, or open one for random-access
// reads.
//
// # Basic usage
//
// Building a file:
//
//	b, _ := vsf.NewBuilder()
//	s, _ := section.New("metadata")
//	width, _ := value.NewUnsigned(1920, 0)
//	s.AddField("width", width)
//	b.AddSection(s)
//	data, _ := b.Build()
//
// Reading one back:
//
//	f, _ := vsf.Open(data)
//	if err := f.Verify(integrity.BLAKE3Hasher{}); err != nil {
//	    // corrupted or tampered file
//	}
//	metadata, _ := f.Section("metadata")
//
// # Package structure
//
// This file re-exports the container package's Builder/File/Verify
// entry points under the module's root import path. For direct control
// over sections, values, tensors, or colour encodings, import the
// section, value, tensor, meta, and colour packages directly.
package vsf

import (
	"github.com/nickspiker/vsf-sub001/container"
	"github.com/nickspiker/vsf-sub001/integrity"
)

// Builder assembles sections and unboxed blobs into a finalized file.
type Builder = container.Builder

// File is a parsed file ready for random-access section/blob reads.
type File = container.File

// Label is a header entry: a section or blob's name, offset, size, and
// child count.
type Label = container.Label

// BuilderOption configures a Builder at construction time.
type BuilderOption = container.BuilderOption

// NewBuilder constructs an empty Builder, ready to accept sections via
// AddSection and unboxed blobs via AddUnboxedBlob.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	return container.NewBuilder(opts...)
}

// WithVersion sets the file format version (default 0).
func WithVersion(v uint64) BuilderOption { return container.WithVersion(v) }

// WithBackwardVersion sets the minimum reader version (default 0).
func WithBackwardVersion(v uint64) BuilderOption { return container.WithBackwardVersion(v) }

// WithHasher overrides the whole-file Hasher (default integrity.BLAKE3Hasher).
func WithHasher(h integrity.Hasher) BuilderOption { return container.WithHasher(h) }

// Open parses a file's header and label table for random-access reads.
func Open(data []byte) (*File, error) { return container.Open(data) }

// Verify recomputes and checks the whole-file hash without a prior Open.
func Verify(data []byte, h integrity.Hasher) error { return container.Verify(data, h) }
