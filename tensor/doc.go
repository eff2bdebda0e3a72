// Package tensor implements the three tensor members of the VSF data
// model: BitPacked (arbitrary 1-256 bit samples packed MSB-first),
// Tensor (row-major contiguous), and Strided (explicit per-dimension
// stride vector). All three satisfy value.Value structurally without
// importing it.
package tensor
