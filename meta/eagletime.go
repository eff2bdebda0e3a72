package meta

import (
	"math"
	"time"

	"github.com/nickspiker/vsf-sub001/errs"
	"github.com/nickspiker/vsf-sub001/format"
	"github.com/nickspiker/vsf-sub001/numcodec"
)

// Epoch is the Eagle Time reference instant: 1969-07-20 20:17:40 UTC, the
// moment Apollo 11's Eagle touched down on the Moon.
var Epoch = time.Date(1969, time.July, 20, 20, 17, 40, 0, time.UTC)

// eagleSub identifies which numeric sub-type an EagleTime value carries.
type eagleSub byte

const (
	eagleUnsigned eagleSub = 'u'
	eagleSigned   eagleSub = 'i'
	eagleFloat    eagleSub = 'f'
)

// EagleTime is a count of seconds since Epoch, stored as any of the
// unsigned, signed, or float numeric sub-variants.
type EagleTime struct {
	Sub   eagleSub
	U     uint64
	I     int64
	F     float64
	Width int // byte width of the numeric sub-encoding; ignored for Sub==eagleUnsigned/eagleSigned auto
}

// NewEagleTimeFromTime converts a wall-clock instant to Eagle Time, stored
// as a 64-bit float count of seconds (fractional seconds preserved).
func NewEagleTimeFromTime(t time.Time) EagleTime {
	seconds := t.Sub(Epoch).Seconds()

	return EagleTime{Sub: eagleFloat, F: seconds, Width: 8}
}

// ToTime converts an EagleTime back to a wall-clock instant.
func (e EagleTime) ToTime() time.Time {
	switch e.Sub {
	case eagleUnsigned:
		return Epoch.Add(time.Duration(e.U) * time.Second)
	case eagleSigned:
		return Epoch.Add(time.Duration(e.I) * time.Second)
	default:
		return Epoch.Add(time.Duration(e.F * float64(time.Second)))
	}
}

func (e EagleTime) Tag() format.Tag { return format.TagEagleTime }

func (e EagleTime) AppendTo(buf []byte) []byte {
	buf = append(buf, byte(format.TagEagleTime))
	buf = append(buf, byte(e.Sub))

	switch e.Sub {
	case eagleUnsigned:
		return numcodec.AppendUint(buf, e.U)
	case eagleSigned:
		return numcodec.AppendInt(buf, e.I)
	default:
		// Raw big-endian float bits with no size marker: the decoder infers
		// the width from the remaining buffer length.
		if e.Width == 4 {
			bits := math.Float32bits(float32(e.F))

			return append(buf, byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
		}
		bits := math.Float64bits(e.F)

		return append(buf,
			byte(bits>>56), byte(bits>>48), byte(bits>>40), byte(bits>>32),
			byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
	}
}

// DecodeEagleTime decodes the bytes following an 'e' tag.
func DecodeEagleTime(data []byte) (EagleTime, int, error) {
	if len(data) < 1 {
		return EagleTime{}, 0, errs.ErrUnexpectedEOF
	}

	sub := eagleSub(data[0])
	rest := data[1:]

	switch sub {
	case eagleUnsigned:
		v, consumed, err := numcodec.DecodeUint(rest)
		if err != nil {
			return EagleTime{}, 0, err
		}

		return EagleTime{Sub: sub, U: v}, 1 + consumed, nil
	case eagleSigned:
		v, consumed, err := numcodec.DecodeInt(rest)
		if err != nil {
			return EagleTime{}, 0, err
		}

		return EagleTime{Sub: sub, I: v}, 1 + consumed, nil
	case eagleFloat:
		// Width is inferred from the remaining buffer, not a size marker:
		// 4 bytes if at least 4 and fewer than 8 remain, else 8.
		width := 8
		if len(rest) >= 4 && len(rest) < 8 {
			width = 4
		}
		if len(rest) < width {
			return EagleTime{}, 0, errs.ErrUnexpectedEOF
		}
		if width == 4 {
			bits := uint32(rest[0])<<24 | uint32(rest[1])<<16 | uint32(rest[2])<<8 | uint32(rest[3])

			return EagleTime{Sub: sub, F: float64(math.Float32frombits(bits)), Width: 4}, 1 + width, nil
		}
		bits := uint64(rest[0])<<56 | uint64(rest[1])<<48 | uint64(rest[2])<<40 | uint64(rest[3])<<32 |
			uint64(rest[4])<<24 | uint64(rest[5])<<16 | uint64(rest[6])<<8 | uint64(rest[7])

		return EagleTime{Sub: sub, F: math.Float64frombits(bits), Width: 8}, 1 + width, nil
	default:
		return EagleTime{}, 0, errs.ErrInvalidTypeMarker
	}
}
