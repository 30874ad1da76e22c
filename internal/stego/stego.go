// Package stego implements LSB steganographic embedding of a C4-transformed
// byte message into the low bit of each RGB channel of an image, under one
// of four pixel traversal orders.
package stego

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/arcthorne/mnemonix/internal/transform"
	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

// Direction selects the order in which pixels are visited.
type Direction int

// Supported traversal orders.
const (
	Horizontal Direction = iota
	Vertical
	ReverseHorizontal
	ReverseVertical
)

// String renders the direction's external name.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case ReverseHorizontal:
		return "reverse-horizontal"
	case ReverseVertical:
		return "reverse-vertical"
	default:
		return "unknown"
	}
}

const (
	bitsPerByte        = 8
	channelsPerPixel   = 3 // R, G, B; alpha is left untouched
	channelsPerMsgByte = bitsPerByte + 1 // 8 data bits + 1 continuation flag
)

// DirectionFromSelector maps a numeric CLI --direction selector (0..3) to a Direction.
func DirectionFromSelector(n int) (Direction, error) {
	switch n {
	case 0:
		return Horizontal, nil
	case 1:
		return Vertical, nil
	case 2:
		return ReverseHorizontal, nil
	case 3:
		return ReverseVertical, nil
	default:
		return 0, mnerr.WithDetails(mnerr.ErrInvalidValue, map[string]string{
			"expected": "0..3",
		})
	}
}

// channelRef addresses one color channel of one pixel.
type channelRef struct {
	x, y int
	ch   int // 0=R, 1=G, 2=B
}

// pixelOrder returns every pixel coordinate in bounds, ordered per dir.
func pixelOrder(bounds image.Rectangle, dir Direction) []image.Point {
	points := make([]image.Point, 0, bounds.Dx()*bounds.Dy())

	switch dir {
	case Horizontal, ReverseHorizontal:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				points = append(points, image.Point{X: x, Y: y})
			}
		}
	case Vertical, ReverseVertical:
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
				points = append(points, image.Point{X: x, Y: y})
			}
		}
	}

	if dir == ReverseHorizontal || dir == ReverseVertical {
		for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
			points[i], points[j] = points[j], points[i]
		}
	}

	return points
}

// channelStream expands a pixel order into its flat R,G,B channel stream.
func channelStream(points []image.Point) []channelRef {
	refs := make([]channelRef, 0, len(points)*channelsPerPixel)
	for _, p := range points {
		refs = append(refs, channelRef{x: p.X, y: p.Y, ch: 0})
		refs = append(refs, channelRef{x: p.X, y: p.Y, ch: 1})
		refs = append(refs, channelRef{x: p.X, y: p.Y, ch: 2})
	}
	return refs
}

func capacityBytes(refs []channelRef) int {
	return len(refs) / channelsPerMsgByte
}

// Encode applies algo.Encrypt to message, then writes the result bit-serially
// into the low bit of each visited channel: per byte, 8 data bits (MSB
// first) across channels 0..7, then a continuation flag (1 if more bytes
// follow, 0 on the last byte) in channel 8.
func Encode(img image.Image, message []byte, algo transform.Transform, dir Direction) (image.Image, error) {
	ciphertext, err := algo.Encrypt(message)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	refs := channelStream(pixelOrder(bounds, dir))

	if len(ciphertext) > capacityBytes(refs) {
		return nil, mnerr.WithDetails(mnerr.ErrCapacityExceeded, map[string]string{
			"expected": itoa(capacityBytes(refs)) + " bytes or fewer",
			"obtained": itoa(len(ciphertext)) + " bytes",
		})
	}

	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, img, bounds.Min, draw.Src)

	pos := 0
	for i, b := range ciphertext {
		for bit := bitsPerByte - 1; bit >= 0; bit-- {
			setLSB(out, refs[pos], (b>>uint(bit))&1)
			pos++
		}
		continuation := byte(0)
		if i < len(ciphertext)-1 {
			continuation = 1
		}
		setLSB(out, refs[pos], continuation)
		pos++
	}

	return out, nil
}

// Decode walks the same traversal order, reconstructs bytes one continuation
// group at a time, and applies algo.Decrypt to the result.
func Decode(img image.Image, algo transform.Transform, dir Direction) ([]byte, error) {
	bounds := img.Bounds()
	refs := channelStream(pixelOrder(bounds, dir))

	var ciphertext []byte
	pos := 0
	for {
		if pos+channelsPerMsgByte > len(refs) {
			return nil, mnerr.Wrap(mnerr.ErrNotFound, "image exhausted before a terminating continuation bit was found")
		}

		var b byte
		for bit := 0; bit < bitsPerByte; bit++ {
			b = (b << 1) | getLSB(img, refs[pos])
			pos++
		}
		ciphertext = append(ciphertext, b)

		continuation := getLSB(img, refs[pos])
		pos++
		if continuation == 0 {
			break
		}
	}

	return algo.Decrypt(ciphertext)
}

func setLSB(img *image.RGBA, ref channelRef, bit byte) {
	c := color.RGBAModel.Convert(img.At(ref.x, ref.y)).(color.RGBA)
	switch ref.ch {
	case 0:
		c.R = (c.R &^ 1) | bit
	case 1:
		c.G = (c.G &^ 1) | bit
	case 2:
		c.B = (c.B &^ 1) | bit
	}
	img.SetRGBA(ref.x, ref.y, c)
}

func getLSB(img image.Image, ref channelRef) byte {
	c := color.RGBAModel.Convert(img.At(ref.x, ref.y)).(color.RGBA)
	switch ref.ch {
	case 0:
		return c.R & 1
	case 1:
		return c.G & 1
	default:
		return c.B & 1
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
