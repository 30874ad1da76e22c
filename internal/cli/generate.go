package cli

import (
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/arcthorne/mnemonix/internal/entropy"
	"github.com/arcthorne/mnemonix/internal/mnemonic"
	"github.com/arcthorne/mnemonix/internal/output"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	generateBits       int
	generateRaw        bool
	generatePassphrase bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new mnemonic from fresh entropy",
	Long: `Generate a new BIP-0039 mnemonic. By default entropy is "hardened":
CSPRNG-generated password and salt run through PBKDF2-HMAC-SHA256, yielding
256 bits. Pass --raw to use CSPRNG bytes directly at a chosen bit size.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	var seed *mnemonic.Seed

	if generateRaw {
		n, err := entropy.Raw(generateBits)
		if err != nil {
			return err
		}
		seed, err = mnemonic.FromEntropyInt(n)
		if err != nil {
			return err
		}
	} else {
		b, err := entropy.Hardened()
		if err != nil {
			return err
		}
		seed, err = mnemonic.FromEntropyBytes(b)
		if err != nil {
			return err
		}
	}

	if generatePassphrase {
		pass, err := promptPassword("Enter BIP-39 passphrase (optional): ")
		if err != nil {
			return err
		}
		seed.SetPassphrase(string(pass))
	}

	result := map[string]any{
		"mnemonic": seed.MnemonicString(),
		"entropy":  hex.EncodeToString(seed.Entropy()),
	}

	ctx := GetCmdContext(cmd)
	if ctx != nil && ctx.Fmt != nil && ctx.Fmt.Format() == output.FormatJSON {
		return Formatter().Print(result)
	}
	outln(cmd.OutOrStdout(), seed.MnemonicString())
	return nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	generateCmd.Flags().IntVar(&generateBits, "bits", 256, "entropy size in bits (128..256, multiple of 32); only used with --raw")
	generateCmd.Flags().BoolVar(&generateRaw, "raw", false, "use raw CSPRNG entropy instead of PBKDF2-hardened entropy")
	generateCmd.Flags().BoolVar(&generatePassphrase, "passphrase", false, "prompt for an optional BIP-39 passphrase")
	rootCmd.AddCommand(generateCmd)
}
