// Package integrity supplies the hashing and signing primitives the
// container package calls through small interfaces, keeping the codec
// itself free of any particular cryptographic library choice.
package integrity

import (
	"crypto/ed25519"

	"lukechampine.com/blake3"

	"github.com/nickspiker/vsf-sub001/format"
)

// Hasher computes a fixed-size digest over a byte stream. Sum must be
// pure and side-effect free; callers may call it repeatedly over the
// same bytes (e.g. once to patch the placeholder, again to verify).
type Hasher interface {
	Algorithm() format.Algorithm
	Size() int
	Sum(data []byte) []byte
}

// Signer produces and checks detached signatures over a byte stream.
type Signer interface {
	Algorithm() format.Algorithm
	Sign(data []byte) []byte
	Verify(data, sig []byte) bool
}

// BLAKE3Hasher is the default Hasher, used for the mandatory whole-file
// hash field (§4.8: algorithm tag 'b', 32-byte digest).
type BLAKE3Hasher struct{}

func (BLAKE3Hasher) Algorithm() format.Algorithm { return format.AlgBLAKE3 }

func (BLAKE3Hasher) Size() int { return 32 }

func (BLAKE3Hasher) Sum(data []byte) []byte {
	sum := blake3.Sum256(data)

	return sum[:]
}

var _ Hasher = BLAKE3Hasher{}

// Ed25519Signer is the default Signer, used for the optional per-section
// signature field.
type Ed25519Signer struct {
	Private ed25519.PrivateKey
	Public  ed25519.PublicKey
}

// NewEd25519Signer generates a fresh Ed25519 keypair.
func NewEd25519Signer() (Ed25519Signer, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return Ed25519Signer{}, err
	}

	return Ed25519Signer{Private: priv, Public: pub}, nil
}

func (Ed25519Signer) Algorithm() format.Algorithm { return format.AlgEd25519 }

func (s Ed25519Signer) Sign(data []byte) []byte {
	return ed25519.Sign(s.Private, data)
}

func (s Ed25519Signer) Verify(data, sig []byte) bool {
	return ed25519.Verify(s.Public, data, sig)
}

var _ Signer = Ed25519Signer{}
