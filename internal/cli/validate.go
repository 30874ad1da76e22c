package cli

import (
	"strings"

	"github.com/mrz1836/go-sanitize"
	"github.com/spf13/cobra"

	"github.com/arcthorne/mnemonix/internal/mnemonic"
	"github.com/arcthorne/mnemonix/internal/output"
	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

var validateCmd = &cobra.Command{
	Use:   "validate [mnemonic]",
	Short: "Validate a mnemonic's word list membership and checksum",
	Long: `Validate checks that every word is in the BIP-0039 word list and that
the checksum embedded in the final word matches the recomputed value. Typos
are reported with a closest-word suggestion (Levenshtein distance <= 2).`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cleaned := sanitize.AlphaNumeric(args[0], true)
	normalized := normalizeMnemonicInput(cleaned)
	words := strings.Fields(normalized)

	typos := mnemonic.DetectTypos(words)
	if len(typos) > 0 {
		return mnerr.WithSuggestion(mnerr.ErrInvalidWord, formatTypoSuggestions(typos))
	}

	seed, err := mnemonic.FromMnemonic(words, false)
	if err != nil {
		return err
	}

	result := map[string]any{
		"valid":      true,
		"word_count": len(words),
		"checksum":   seed.Checksum(),
	}

	ctx := GetCmdContext(cmd)
	if ctx != nil && ctx.Fmt != nil && ctx.Fmt.Format() == output.FormatJSON {
		return Formatter().Print(result)
	}
	outln(cmd.OutOrStdout(), "valid")
	return nil
}

func formatTypoSuggestions(typos []mnemonic.TypoInfo) string {
	var b strings.Builder
	for i, t := range typos {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("word ")
		b.WriteString(itoaSimple(t.Index + 1))
		b.WriteString(": '")
		b.WriteString(t.Word)
		b.WriteByte('\'')
		if t.Suggestion != "" {
			b.WriteString(" - did you mean '")
			b.WriteString(t.Suggestion)
			b.WriteString("'?")
		} else {
			b.WriteString(" is not a valid word list entry")
		}
	}
	return b.String()
}

func itoaSimple(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(validateCmd)
}
