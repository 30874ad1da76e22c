package cli

import (
	"github.com/spf13/cobra"

	"github.com/arcthorne/mnemonix/internal/output"
	"github.com/arcthorne/mnemonix/internal/splitjoin"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var joinAlgo string

var joinCmd = &cobra.Command{
	Use:   "join [12-word left] [12-word right]",
	Short: "Join two 12-word mnemonic halves into a 24-word mnemonic",
	Long: `join decodes two 12-word mnemonics to 16-byte entropies each,
concatenates them (left || right), applies the chosen transform, and
re-encodes the resulting 32 bytes as a single 24-word mnemonic. This
applies the same transform operation split applied, not its inverse:
NEGATIVE and REVERSAL are self-inverse involutions, so one operation
undoes the other.`,
	Args: cobra.ExactArgs(2),
	RunE: runJoin,
}

func runJoin(cmd *cobra.Command, args []string) error {
	algo, err := resolveTransformAlgo(joinAlgo)
	if err != nil {
		return err
	}

	joined, err := splitjoin.Join(normalizeMnemonicInput(args[0]), normalizeMnemonicInput(args[1]), algo)
	if err != nil {
		return err
	}

	ctx := GetCmdContext(cmd)
	if ctx != nil && ctx.Fmt != nil && ctx.Fmt.Format() == output.FormatJSON {
		return Formatter().Print(map[string]any{"mnemonic": joined})
	}
	outln(cmd.OutOrStdout(), joined)
	return nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	joinCmd.Flags().StringVar(&joinAlgo, "algo", "none", "none, negative, or reversal")
	rootCmd.AddCommand(joinCmd)
}
