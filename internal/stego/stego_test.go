package stego

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcthorne/mnemonix/internal/transform"
)

func randomImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	src := rand.New(rand.NewSource(1))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: byte(src.Intn(256)),
				G: byte(src.Intn(256)),
				B: byte(src.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

func TestEncodeDecode_RoundTripsAcrossAllDirections(t *testing.T) {
	message := []byte("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

	for _, dir := range []Direction{Horizontal, Vertical, ReverseHorizontal, ReverseVertical} {
		dir := dir
		t.Run(dir.String(), func(t *testing.T) {
			img := randomImage(32, 32)

			encoded, err := Encode(img, message, transform.None(), dir)
			require.NoError(t, err)

			decoded, err := Decode(encoded, transform.None(), dir)
			require.NoError(t, err)
			assert.Equal(t, message, decoded)
		})
	}
}

func TestEncodeDecode_RoundTripsAcrossAllTransforms(t *testing.T) {
	message := []byte("hello stego")

	algos := []transform.Transform{
		transform.None(),
		transform.Negative(),
		transform.Reversal(),
		transform.Password("s3cr3t"),
	}

	for _, algo := range algos {
		algo := algo
		t.Run(algo.Kind().String(), func(t *testing.T) {
			img := randomImage(32, 32)

			encoded, err := Encode(img, message, algo, Horizontal)
			require.NoError(t, err)

			decoded, err := Decode(encoded, algo, Horizontal)
			require.NoError(t, err)
			assert.Equal(t, message, decoded)
		})
	}
}

func TestEncode_RejectsOverCapacityMessage(t *testing.T) {
	img := randomImage(2, 2) // 4 pixels => 12 channels => 1 byte capacity
	_, err := Encode(img, []byte("this message is definitely too long"), transform.None(), Horizontal)
	require.Error(t, err)
}

func TestDirectionFromSelector(t *testing.T) {
	cases := map[int]Direction{
		0: Horizontal,
		1: Vertical,
		2: ReverseHorizontal,
		3: ReverseVertical,
	}
	for n, want := range cases {
		got, err := DirectionFromSelector(n)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := DirectionFromSelector(4)
	require.Error(t, err)
}

func TestDecode_EmptyImageWithoutTerminator(t *testing.T) {
	img := randomImage(1, 1)
	_, err := Decode(img, transform.None(), Horizontal)
	require.Error(t, err)
}
