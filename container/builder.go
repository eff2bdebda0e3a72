package container

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/integrity"
	"github.com/nickspiker/vsf-sub001/internal/hash"
	"github.com/nickspiker/vsf-sub001/internal/options"
	"github.com/nickspiker/vsf-sub001/internal/pool"
	"github.com/nickspiker/vsf-sub001/meta"
	"github.com/nickspiker/vsf-sub001/name"
	"github.com/nickspiker/vsf-sub001/section"
)

// pendingEntry is one section or unboxed blob queued for assembly. A
// blob carries raw bytes and a zero child count; a section carries its
// already-encoded wire bytes.
type pendingEntry struct {
	name       string
	data       []byte
	childCount uint64
	hashField  *meta.Hash
	sigField   *meta.Signature
}

// Builder assembles a VSF file from sections and unboxed blobs: queue
// entries with AddSection/AddUnboxedBlob, then call Build. Each
// BuilderOption is applied at construction time.
type Builder struct {
	version         uint64
	backwardVersion uint64
	hasher          integrity.Hasher
	entries         []pendingEntry
	nameIndex       map[uint64]int // xxhash(name) -> index into entries, for AddSectionHash/AddSectionSignature lookups
}

// BuilderOption configures a Builder at construction time.
type BuilderOption = options.Option[*Builder]

// WithVersion sets the file format version (default 0).
func WithVersion(v uint64) BuilderOption {
	return options.NoError[*Builder](func(b *Builder) { b.version = v })
}

// WithBackwardVersion sets the minimum reader version (default 0).
func WithBackwardVersion(v uint64) BuilderOption {
	return options.NoError[*Builder](func(b *Builder) { b.backwardVersion = v })
}

// WithHasher overrides the whole-file Hasher (default integrity.BLAKE3Hasher).
func WithHasher(h integrity.Hasher) BuilderOption {
	return options.NoError[*Builder](func(b *Builder) { b.hasher = h })
}

// NewBuilder constructs an empty Builder.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{
		hasher:    integrity.BLAKE3Hasher{},
		nameIndex: make(map[uint64]int),
	}
	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// AddSection queues an already-built Section for assembly.
func (b *Builder) AddSection(s *section.Section) error {
	data, err := s.Encode()
	if err != nil {
		return err
	}
	b.nameIndex[hash.ID(s.Name)] = len(b.entries)
	b.entries = append(b.entries, pendingEntry{name: s.Name, data: data})

	return nil
}

// AddUnboxedBlob queues raw bytes to be appended verbatim, labeled with a
// zero child count. Build lays entries out in the order they were added
// and does not reorder them, so a blob follows every structured section
// only when it is added after all of them.
func (b *Builder) AddUnboxedBlob(blobName string, data []byte) error {
	if err := name.Validate(blobName); err != nil {
		return err
	}
	b.nameIndex[hash.ID(blobName)] = len(b.entries)
	b.entries = append(b.entries, pendingEntry{name: blobName, data: data})

	return nil
}

// AddSectionHash attaches a per-section hash to a previously added
// section, computed over that section's already-encoded bytes.
func (b *Builder) AddSectionHash(sectionName string, h integrity.Hasher) error {
	idx, ok := b.nameIndex[hash.ID(sectionName)]
	if !ok {
		return errs.ErrSectionNotFound
	}
	sum := h.Sum(b.entries[idx].data)
	field := meta.NewHash(h.Algorithm(), sum)
	b.entries[idx].hashField = &field

	return nil
}

// AddSectionSignature attaches a per-section signature to a previously
// added section, computed over that section's already-encoded bytes.
func (b *Builder) AddSectionSignature(sectionName string, s integrity.Signer) error {
	idx, ok := b.nameIndex[hash.ID(sectionName)]
	if !ok {
		return errs.ErrSectionNotFound
	}
	sig := s.Sign(b.entries[idx].data)
	field := meta.NewSignature(s.Algorithm(), sig)
	b.entries[idx].sigField = &field

	return nil
}

// Build assembles the queued entries into a finalized VSF file: it
// re-encodes any entry carrying a hash/signature preamble field (which
// changes a section's byte length), runs the header stabilization loop,
// concatenates the result, and patches in the whole-file hash.
func (b *Builder) Build() ([]byte, error) {
	entries := make([]pendingEntry, len(b.entries))
	copy(entries, b.entries)

	for i, e := range entries {
		if e.hashField == nil && e.sigField == nil {
			continue
		}
		// Re-parse and re-emit the section with the crypto fields set,
		// since AddSection already encoded it without them.
		reencoded, err := reencodeWithCrypto(e.data, e.hashField, e.sigField)
		if err != nil {
			return nil, err
		}
		entries[i].data = reencoded
	}

	header := &Header{Version: b.version, BackwardVersion: b.backwardVersion}
	header.Labels = make([]Label, len(entries))
	for i, e := range entries {
		header.Labels[i] = Label{Name: e.name, Size: uint64(len(e.data)), ChildCount: e.childCount}
	}

	headerBytes, hashOffset, err := header.build()
	if err != nil {
		return nil, err
	}

	out := pool.GetBlobSetBuffer()
	defer pool.PutBlobSetBuffer(out)
	out.MustWrite(headerBytes)
	for _, e := range entries {
		out.MustWrite(e.data)
	}

	final := append([]byte(nil), out.Bytes()...)

	sum := b.hasher.Sum(final)
	copy(final[hashOffset:hashOffset+len(sum)], sum)

	return final, nil
}

// reencodeWithCrypto decodes a section's fields back out and re-emits it
// with the given hash/signature preamble fields attached.
func reencodeWithCrypto(data []byte, h *meta.Hash, sig *meta.Signature) ([]byte, error) {
	s, _, err := section.Decode(data, decodeValue)
	if err != nil {
		return nil, err
	}
	if h != nil {
		s.SetHash(*h)
	}
	if sig != nil {
		s.SetSignature(*sig)
	}

	return s.Encode()
}
