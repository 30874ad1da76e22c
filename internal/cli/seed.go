package cli

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcthorne/mnemonix/internal/mnemonic"
	"github.com/arcthorne/mnemonix/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var seedPassphrase bool

var seedCmd = &cobra.Command{
	Use:   "seed [mnemonic]",
	Short: "Derive the 64-byte BIP-0039 root seed from a mnemonic",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	normalized := normalizeMnemonicInput(args[0])
	words := strings.Fields(normalized)

	seed, err := mnemonic.FromMnemonic(words, false)
	if err != nil {
		return err
	}

	if seedPassphrase {
		pass, err := promptPassword("Enter BIP-39 passphrase: ")
		if err != nil {
			return err
		}
		seed.SetPassphrase(string(pass))
	}

	rootSeed := seed.RootSeed()
	hexSeed := hex.EncodeToString(rootSeed)

	ctx := GetCmdContext(cmd)
	if ctx != nil && ctx.Fmt != nil && ctx.Fmt.Format() == output.FormatJSON {
		return Formatter().Print(map[string]any{"seed": hexSeed})
	}
	outln(cmd.OutOrStdout(), hexSeed)
	return nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	seedCmd.Flags().BoolVar(&seedPassphrase, "passphrase", false, "prompt for the BIP-39 passphrase")
	rootCmd.AddCommand(seedCmd)
}
