package cli

import (
	"github.com/spf13/cobra"

	"github.com/arcthorne/mnemonix/internal/output"
	"github.com/arcthorne/mnemonix/internal/splitjoin"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var splitAlgo string

var splitCmd = &cobra.Command{
	Use:   "split [24-word mnemonic]",
	Short: "Split a 24-word mnemonic into two 12-word halves",
	Long: `split decodes a 24-word mnemonic to its 32-byte entropy, applies the
chosen transform, and splits the result into two 16-byte halves, each
re-encoded as a 12-word mnemonic. The password transform is rejected: it
is non-involutive and cannot preserve the fixed 256-bit width this
algorithm requires.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func runSplit(cmd *cobra.Command, args []string) error {
	algo, err := resolveTransformAlgo(splitAlgo)
	if err != nil {
		return err
	}

	left, right, err := splitjoin.Split(normalizeMnemonicInput(args[0]), algo)
	if err != nil {
		return err
	}

	ctx := GetCmdContext(cmd)
	if ctx != nil && ctx.Fmt != nil && ctx.Fmt.Format() == output.FormatJSON {
		return Formatter().Print(map[string]any{"left": left, "right": right})
	}
	outln(cmd.OutOrStdout(), "left: ", left)
	outln(cmd.OutOrStdout(), "right:", right)
	return nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	splitCmd.Flags().StringVar(&splitAlgo, "algo", "none", "none, negative, or reversal")
	rootCmd.AddCommand(splitCmd)
}
