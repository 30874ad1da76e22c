package cli

import (
	"image"
	"image/png"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcthorne/mnemonix/internal/stego"
	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

var stegoCmd = &cobra.Command{
	Use:   "stego",
	Short: "LSB steganographic embedding of a message into a PNG image",
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	stegoIn        string
	stegoOut       string
	stegoMessage   string
	stegoAlgo      string
	stegoDirection string
)

var stegoEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Apply the transform to a message and embed it into an image's low color bits",
	RunE:  runStegoEncode,
}

var stegoDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Extract an embedded message from an image and reverse the transform",
	RunE:  runStegoDecode,
}

func runStegoEncode(cmd *cobra.Command, _ []string) error {
	algo, err := resolveTransformAlgo(stegoAlgo)
	if err != nil {
		return err
	}
	dir, err := resolveDirection(stegoDirection)
	if err != nil {
		return err
	}

	img, err := readPNG(stegoIn)
	if err != nil {
		return err
	}

	out, err := stego.Encode(img, []byte(stegoMessage), algo, dir)
	if err != nil {
		return err
	}

	if err := writePNG(stegoOut, out); err != nil {
		return err
	}

	outln(cmd.OutOrStdout(), "wrote", stegoOut)
	return nil
}

func runStegoDecode(cmd *cobra.Command, _ []string) error {
	algo, err := resolveTransformAlgo(stegoAlgo)
	if err != nil {
		return err
	}
	dir, err := resolveDirection(stegoDirection)
	if err != nil {
		return err
	}

	img, err := readPNG(stegoIn)
	if err != nil {
		return err
	}

	message, err := stego.Decode(img, algo, dir)
	if err != nil {
		return err
	}

	outln(cmd.OutOrStdout(), string(message))
	return nil
}

func resolveDirection(s string) (stego.Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		return stego.DirectionFromSelector(n)
	}

	switch s {
	case "horizontal":
		return stego.Horizontal, nil
	case "vertical":
		return stego.Vertical, nil
	case "reverse-horizontal":
		return stego.ReverseHorizontal, nil
	case "reverse-vertical":
		return stego.ReverseVertical, nil
	default:
		return 0, mnerr.WithDetails(mnerr.ErrInvalidValue, map[string]string{
			"expected": "horizontal, vertical, reverse-horizontal, or reverse-vertical",
		})
	}
}

func readPNG(path string) (image.Image, error) {
	// #nosec G304 -- image path is from validated CLI input
	f, err := os.Open(path)
	if err != nil {
		return nil, mnerr.Wrap(mnerr.ErrNotFound, "opening image %q", path)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, mnerr.Wrap(mnerr.ErrInvalidValue, "decoding PNG %q", path)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	// #nosec G304 -- image path is from validated CLI input
	f, err := os.Create(path)
	if err != nil {
		return mnerr.Wrap(mnerr.ErrNotFound, "creating image %q", path)
	}
	defer f.Close()

	return png.Encode(f, img)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	for _, c := range []*cobra.Command{stegoEncodeCmd, stegoDecodeCmd} {
		c.Flags().StringVar(&stegoIn, "in", "", "input PNG path")
		c.Flags().StringVar(&stegoAlgo, "algo", "none", "none, negative, reversal, or password")
		c.Flags().StringVar(&stegoDirection, "direction", "horizontal", "horizontal, vertical, reverse-horizontal, or reverse-vertical")
		_ = c.MarkFlagRequired("in")
	}
	stegoEncodeCmd.Flags().StringVar(&stegoOut, "out", "", "output PNG path")
	stegoEncodeCmd.Flags().StringVar(&stegoMessage, "message", "", "message to embed (typically a mnemonic string)")
	_ = stegoEncodeCmd.MarkFlagRequired("out")
	_ = stegoEncodeCmd.MarkFlagRequired("message")

	stegoCmd.AddCommand(stegoEncodeCmd, stegoDecodeCmd)
	rootCmd.AddCommand(stegoCmd)
}
