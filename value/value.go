// Package value defines the Value interface — the tagged union over every
// encodable VSF type — and implements the primitive scalar members of that
// union (unsigned/signed integers, booleans, floats, complex pairs, and
// the opaque Spirix fixed-point types).
//
// Tensor, metadata, and colour members of the union live in their own
// packages (tensor, meta, colour) and satisfy Value structurally — they
// never import this package, so there is no dependency cycle. The parse
// package is the only place that switches on a leading wire byte to decide
// which concrete type to construct; every type here can always encode
// itself once constructed, because validation happens at construction
// time.
package value

import "github.com/nickspiker/vsf-sub001/format"

// Value is satisfied by every concrete wire type in the data model: the
// primitives in this package, Tensor/Strided/BitPacked in package tensor,
// String/EagleTime/WorldCoord/identifiers/structural/crypto fields in
// package meta, and the General/Named/Format/Matrix forms in package
// colour.
type Value interface {
	// Tag returns the leading type byte this value encodes as.
	Tag() format.Tag

	// AppendTo appends this value's wire encoding (including its own tag
	// byte) to buf and returns the extended slice. It never fails: a
	// constructed Value is always valid to encode.
	AppendTo(buf []byte) []byte
}
