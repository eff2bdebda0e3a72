package container

import (
	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/integrity"
)

// Verify recomputes the whole-file hash with the stored hash payload
// zeroed out and compares it to the payload recorded in the header,
// without decoding any section body. It does not require a prior Open
// call; it parses the header and label table itself to locate the hash.
func Verify(data []byte, h integrity.Hasher) error {
	_, storedHash, hashOffset, _, err := decodeHeader(data)
	if err != nil {
		return err
	}

	scratch := append([]byte(nil), data...)
	for i := range storedHash {
		scratch[hashOffset+i] = 0
	}

	recomputed := h.Sum(scratch)
	if len(recomputed) != len(storedHash) {
		return errs.ErrHashMismatch
	}
	for i := range recomputed {
		if recomputed[i] != storedHash[i] {
			return errs.ErrHashMismatch
		}
	}

	return nil
}

// Verify is the method form, reusing the file's already-parsed header.
func (f *File) Verify(h integrity.Hasher) error {
	scratch := append([]byte(nil), f.data...)
	for i := range f.hashPayload {
		scratch[f.hashOffset+i] = 0
	}

	recomputed := h.Sum(scratch)
	if len(recomputed) != len(f.hashPayload) {
		return errs.ErrHashMismatch
	}
	for i := range recomputed {
		if recomputed[i] != f.hashPayload[i] {
			return errs.ErrHashMismatch
		}
	}

	return nil
}
