// Package colour implements the VSF colour value family: the general
// `r<channels><depth><data>` encoding, zero-payload named aliases (red,
// blue, ...), fixed-width format aliases (standard RGB/RGBA, packed RGB,
// greyscale), and the magic-matrix colour-transform form.
package colour

import (
	"math"

	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// Alias identifies the second byte of an `r`-tagged colour value: either a
// channel-count base-36 digit (general form) or one of the reserved
// letters below (named/format/magic-matrix shortcuts).
type Alias byte

// Named, zero-payload shortcuts.
const (
	AliasBlue    Alias = 'b'
	AliasCyan    Alias = 'c'
	AliasGrey    Alias = 'g'
	AliasMagenta Alias = 'j'
	AliasBlack   Alias = 'k'
	AliasLime    Alias = 'l'
	AliasGreen   Alias = 'n'
	AliasOrange  Alias = 'o'
	AliasAqua    Alias = 'q'
	AliasRed     Alias = 'r'
	AliasViolet  Alias = 'v'
	AliasWhite   Alias = 'w'
	AliasYellow  Alias = 'y'
)

// Format shortcuts, carrying a fixed-width payload.
const (
	AliasGrey8     Alias = 'e' // 8-bit greyscale
	AliasGrey16    Alias = 'x' // 16-bit greyscale
	AliasGreyF32   Alias = 'z' // 32-bit float greyscale
	AliasPacked8   Alias = 'i' // 8-bit packed RGB (6x7x6)
	AliasPacked16  Alias = 'p' // 16-bit packed RGB (5-6-5)
	AliasRGB24     Alias = 'u' // 24-bit RGB (8bpc)
	AliasRGB48     Alias = 's' // 48-bit RGB (16bpc)
	AliasRGBF96    Alias = 'f' // 96-bit RGB (32f x 3)
	AliasRGBA32    Alias = 'a' // 32-bit RGBA (8bpc)
	AliasRGBA64    Alias = 't' // 64-bit RGBA (16bpc)
	AliasRGBAF128  Alias = 'h' // 128-bit RGBA (32f x 4)
	AliasMatrix    Alias = 'm' // magic-matrix colour transform
)

var namedAliasSet = map[Alias]struct{}{
	AliasBlue: {}, AliasCyan: {}, AliasGrey: {}, AliasMagenta: {}, AliasBlack: {},
	AliasLime: {}, AliasGreen: {}, AliasOrange: {}, AliasAqua: {}, AliasRed: {},
	AliasViolet: {}, AliasWhite: {}, AliasYellow: {},
}

var formatPayloadWidth = map[Alias]int{
	AliasGrey8: 1, AliasGrey16: 2, AliasGreyF32: 4,
	AliasPacked8: 1, AliasPacked16: 2,
	AliasRGB24: 3, AliasRGB48: 6, AliasRGBF96: 12,
	AliasRGBA32: 4, AliasRGBA64: 8, AliasRGBAF128: 16,
}

func channelsToBase36(n int) (byte, error) {
	switch {
	case n >= 0 && n <= 9:
		return '0' + byte(n), nil
	case n >= 10 && n <= 35:
		return 'A' + byte(n-10), nil
	default:
		return 0, errs.ErrValueOutOfRange
	}
}

func base36ToChannels(b byte) (int, error) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), nil
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 10, nil
	default:
		return 0, errs.ErrInvalidData
	}
}

// General is the general-form colour value: channel_count channels at
// 2^depth bits each, raw data bytes.
type General struct {
	Channels int // 0..35
	Depth    int // depth exponent 0..9 ( bits_per_channel = 2^Depth )
	Data     []byte
}

// NewGeneral constructs a General colour value, validating that Data's
// length matches channels * 2^depth/8 bytes (for depth >= 3; narrower
// depths pack multiple channels per byte and are validated only for
// total bit count).
func NewGeneral(channels, depth int, data []byte) (General, error) {
	if channels < 0 || channels > 35 {
		return General{}, errs.ErrValueOutOfRange
	}
	if depth < 0 || depth > 9 {
		return General{}, errs.ErrValueOutOfRange
	}
	bitsPerChannel := 1 << uint(depth)
	totalBits := channels * bitsPerChannel
	wantBytes := (totalBits + 7) / 8
	if len(data) != wantBytes {
		return General{}, errs.ErrInvalidData
	}

	return General{Channels: channels, Depth: depth, Data: data}, nil
}

func (g General) Tag() format.Tag { return format.TagColour }

func (g General) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagColour))
	ch, _ := channelsToBase36(g.Channels)
	buf = append(buf, ch)
	buf = append(buf, '0'+byte(g.Depth))

	return append(buf, g.Data...)
}

// Named is a zero-payload colour alias (e.g. red, white).
type Named struct {
	Alias Alias
}

func NewNamed(a Alias) (Named, error) {
	if _, ok := namedAliasSet[a]; !ok {
		return Named{}, errs.ErrInvalidData
	}

	return Named{Alias: a}, nil
}

func (n Named) Tag() format.Tag { return format.TagColour }

func (n Named) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagColour))

	return append(buf, byte(n.Alias))
}

// Format is a fixed-width format-shortcut colour value (greyscale,
// packed or standard RGB/RGBA).
type Format struct {
	Alias Alias
	Data  []byte
}

func NewFormat(a Alias, data []byte) (Format, error) {
	width, ok := formatPayloadWidth[a]
	if !ok {
		return Format{}, errs.ErrInvalidData
	}
	if len(data) != width {
		return Format{}, errs.ErrInvalidData
	}

	return Format{Alias: a, Data: data}, nil
}

func (f Format) Tag() format.Tag { return format.TagColour }

func (f Format) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagColour))
	buf = append(buf, byte(f.Alias))

	return append(buf, f.Data...)
}

// Matrix is the magic-matrix colour-transform form: an N-input to
// M-output f32 matrix plus a gamma scalar, used for multispectral to
// LMS (or similar) colour transforms.
type Matrix struct {
	InputChannels, OutputChannels int
	Values                        []float32 // row-major, len == InputChannels*OutputChannels
	Gamma                         float32
}

func NewMatrix(in, out int, values []float32, gamma float32) (Matrix, error) {
	if in <= 0 || out <= 0 {
		return Matrix{}, errs.ErrInvalidTensor
	}
	if len(values) != in*out {
		return Matrix{}, errs.ErrInvalidTensor
	}

	return Matrix{InputChannels: in, OutputChannels: out, Values: values, Gamma: gamma}, nil
}

func (m Matrix) Tag() format.Tag { return format.TagColour }

func (m Matrix) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagColour))
	buf = append(buf, byte(AliasMatrix))
	buf = numcodec.AppendUint(buf, uint64(m.InputChannels))
	buf = numcodec.AppendUint(buf, uint64(m.OutputChannels))
	for _, v := range m.Values {
		buf = appendFloat32(buf, v)
	}

	return appendFloat32(buf, m.Gamma)
}

func appendFloat32(buf []byte, v float32) []byte {
	bits := math.Float32bits(v)

	return append(buf, byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
}

func decodeFloat32(data []byte) (float32, error) {
	if len(data) < 4 {
		return 0, errs.ErrUnexpectedEOF
	}
	bits := uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])

	return math.Float32frombits(bits), nil
}

// Value is the union of all decoded colour forms, returned by Decode.
type Value interface {
	Tag() format.Tag
	AppendTo(buf []byte) []byte
}

// Decode dispatches on the second byte after the 'r' tag (the alias
// byte), returning whichever concrete colour form it describes.
func Decode(data []byte) (Value, int, error) {
	if len(data) < 1 {
		return nil, 0, errs.ErrUnexpectedEOF
	}
	alias := Alias(data[0])

	if _, ok := namedAliasSet[alias]; ok {
		return Named{Alias: alias}, 1, nil
	}

	if alias == AliasMatrix {
		return decodeMatrix(data[1:])
	}

	if width, ok := formatPayloadWidth[alias]; ok {
		if len(data) < 1+width {
			return nil, 0, errs.ErrUnexpectedEOF
		}

		return Format{Alias: alias, Data: data[1 : 1+width]}, 1 + width, nil
	}

	// General form: data[0] is the channels base-36 digit.
	channels, err := base36ToChannels(data[0])
	if err != nil {
		return nil, 0, err
	}
	if len(data) < 2 {
		return nil, 0, errs.ErrUnexpectedEOF
	}
	depthDigit := data[1]
	if depthDigit < '0' || depthDigit > '9' {
		return nil, 0, errs.ErrInvalidData
	}
	depth := int(depthDigit - '0')
	bitsPerChannel := 1 << uint(depth)
	totalBits := channels * bitsPerChannel
	dataLen := (totalBits + 7) / 8
	if len(data) < 2+dataLen {
		return nil, 0, errs.ErrUnexpectedEOF
	}

	g, err := NewGeneral(channels, depth, data[2:2+dataLen])
	if err != nil {
		return nil, 0, err
	}

	return g, 2 + dataLen, nil
}

func decodeMatrix(data []byte) (Value, int, error) {
	in, consumed1, err := numcodec.DecodeUint(data)
	if err != nil {
		return nil, 0, err
	}
	out, consumed2, err := numcodec.DecodeUint(data[consumed1:])
	if err != nil {
		return nil, 0, err
	}

	pos := consumed1 + consumed2
	n := int(in) * int(out)
	values := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := decodeFloat32(data[pos:])
		if err != nil {
			return nil, 0, err
		}
		values[i] = v
		pos += 4
	}

	gamma, err := decodeFloat32(data[pos:])
	if err != nil {
		return nil, 0, err
	}
	pos += 4

	m, err := NewMatrix(int(in), int(out), values, gamma)
	if err != nil {
		return nil, 0, err
	}

	return m, 1 + pos, nil
}
