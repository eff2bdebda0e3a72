package wrapped

// ZstdCodec wraps Zstandard compression (format.AlgZstd), favoring
// compression ratio over speed. The actual Compress/Decompress methods
// live in zstd_pure.go (pure Go, default) or zstd_cgo.go (cgo-backed,
// built only with the nobuild tag, which also excludes zstd_pure.go).
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
