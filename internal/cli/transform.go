package cli

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcthorne/mnemonix/internal/output"
	"github.com/arcthorne/mnemonix/internal/transform"
	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	transformEntropyHex string
	transformAlgo       string
	transformDecrypt    bool
)

var transformCmd = &cobra.Command{
	Use:   "transform --entropy-hex HEX --algo none|negative|reversal|password",
	Short: "Apply an entropy transform: identity, bitwise complement, bit reversal, or password AEAD",
	RunE:  runTransform,
}

func runTransform(cmd *cobra.Command, _ []string) error {
	entropyBytes, err := hex.DecodeString(strings.TrimSpace(transformEntropyHex))
	if err != nil {
		return mnerr.WithDetails(mnerr.ErrInvalidValue, map[string]string{"obtained": "malformed hex"})
	}

	algo, err := resolveTransformAlgo(transformAlgo)
	if err != nil {
		return err
	}

	var result []byte
	if transformDecrypt {
		result, err = algo.Decrypt(entropyBytes)
	} else {
		result, err = algo.Encrypt(entropyBytes)
	}
	if err != nil {
		return err
	}

	hexResult := hex.EncodeToString(result)
	ctx := GetCmdContext(cmd)
	if ctx != nil && ctx.Fmt != nil && ctx.Fmt.Format() == output.FormatJSON {
		return Formatter().Print(map[string]any{"result": hexResult})
	}
	outln(cmd.OutOrStdout(), hexResult)
	return nil
}

// resolveTransformAlgo accepts both the CLI selector's numeric form (0..3)
// and its name (none, negative, reversal, password), prompting for a
// password when the PASSWORD algorithm is selected.
func resolveTransformAlgo(s string) (transform.Transform, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	var kind transform.Kind
	if n, err := strconv.Atoi(s); err == nil {
		kind, err = transform.FromSelector(n)
		if err != nil {
			return transform.Transform{}, err
		}
	} else {
		switch s {
		case "none":
			kind = transform.KindNone
		case "negative":
			kind = transform.KindNegative
		case "reversal":
			kind = transform.KindReversal
		case "password":
			kind = transform.KindPassword
		default:
			return transform.Transform{}, mnerr.WithDetails(mnerr.ErrInvalidValue, map[string]string{
				"expected": "none, negative, reversal, or password",
			})
		}
	}

	switch kind {
	case transform.KindNone:
		return transform.None(), nil
	case transform.KindNegative:
		return transform.Negative(), nil
	case transform.KindReversal:
		return transform.Reversal(), nil
	case transform.KindPassword:
		pass, err := promptPassword("Enter transform password: ")
		if err != nil {
			return transform.Transform{}, err
		}
		return transform.Password(string(pass)), nil
	default:
		return transform.Transform{}, mnerr.ErrInvalidValue
	}
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	transformCmd.Flags().StringVar(&transformEntropyHex, "entropy-hex", "", "entropy or ciphertext, as hex")
	transformCmd.Flags().StringVar(&transformAlgo, "algo", "none", "none, negative, reversal, or password")
	transformCmd.Flags().BoolVar(&transformDecrypt, "decrypt", false, "decrypt/open instead of encrypt/seal")
	_ = transformCmd.MarkFlagRequired("entropy-hex")
	rootCmd.AddCommand(transformCmd)
}
