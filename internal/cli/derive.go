package cli

import (
	"encoding/hex"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcthorne/mnemonix/internal/hdwallet"
	"github.com/arcthorne/mnemonix/internal/mnemonic"
	"github.com/arcthorne/mnemonix/internal/output"
	"github.com/arcthorne/mnemonix/internal/versions"
	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	deriveMnemonic    string
	deriveSeedHex     string
	derivePassphrase  bool
	deriveNetwork     string
	deriveAddressType string
	derivePublicOnly  bool
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Build the BIP-0032 master node and print its xprv/xpub",
	Long: `derive builds the master extended key from a BIP-0039 root seed
(I_L/I_R via HMAC-SHA512("Bitcoin seed", seed)) and serializes it as
Base58Check under the SLIP-0132 version pair selected by --network and
--address-type. Provide the seed directly with --seed-hex, or a mnemonic
with --mnemonic (root seed is derived internally).`,
	RunE: runDerive,
}

func runDerive(cmd *cobra.Command, _ []string) error {
	seedBytes, err := resolveDeriveSeed()
	if err != nil {
		return err
	}

	network, addressType, err := parseNetworkAddressType(deriveNetwork, deriveAddressType)
	if err != nil {
		return err
	}

	node, err := hdwallet.FromSeed(seedBytes, network, addressType)
	if err != nil {
		return err
	}

	if derivePublicOnly {
		xpub, err := node.Xpub()
		if err != nil {
			return err
		}
		return printDeriveResult(cmd, map[string]any{"xpub": xpub})
	}

	xprv, err := node.Xprv()
	if err != nil {
		return err
	}
	xpub, err := node.Xpub()
	if err != nil {
		return err
	}

	return printDeriveResult(cmd, map[string]any{"xprv": xprv, "xpub": xpub})
}

func printDeriveResult(cmd *cobra.Command, result map[string]any) error {
	ctx := GetCmdContext(cmd)
	if ctx != nil && ctx.Fmt != nil && ctx.Fmt.Format() == output.FormatJSON {
		return Formatter().Print(result)
	}
	if xprv, ok := result["xprv"]; ok {
		outln(cmd.OutOrStdout(), "xprv:", xprv)
	}
	outln(cmd.OutOrStdout(), "xpub:", result["xpub"])
	return nil
}

func resolveDeriveSeed() ([]byte, error) {
	if deriveSeedHex != "" {
		seed, err := hex.DecodeString(strings.TrimSpace(deriveSeedHex))
		if err != nil {
			return nil, mnerr.WithDetails(mnerr.ErrInvalidValue, map[string]string{"obtained": "malformed hex"})
		}
		return seed, nil
	}

	if deriveMnemonic == "" {
		return nil, mnerr.WithSuggestion(mnerr.ErrInvalidArgument, "provide --seed-hex or --mnemonic")
	}

	normalized := normalizeMnemonicInput(deriveMnemonic)
	words := strings.Fields(normalized)
	seed, err := mnemonic.FromMnemonic(words, false)
	if err != nil {
		return nil, err
	}

	if derivePassphrase {
		pass, err := promptPassword("Enter BIP-39 passphrase: ")
		if err != nil {
			return nil, err
		}
		seed.SetPassphrase(string(pass))
	}

	return seed.RootSeed(), nil
}

func parseNetworkAddressType(networkStr, addressTypeStr string) (versions.Network, versions.AddressType, error) {
	var network versions.Network
	switch strings.ToLower(strings.TrimSpace(networkStr)) {
	case "", "mainnet":
		network = versions.Mainnet
	case "testnet":
		network = versions.Testnet
	default:
		return 0, 0, mnerr.WithDetails(mnerr.ErrInvalidValue, map[string]string{"expected": "mainnet or testnet"})
	}

	var addressType versions.AddressType
	switch strings.ToLower(strings.TrimSpace(addressTypeStr)) {
	case "", "p2wpkh":
		addressType = versions.DefaultAddressType
	case "p2sh":
		addressType = versions.P2SH
	case "p2sh-p2wpkh":
		addressType = versions.P2SHP2WPKH
	default:
		return 0, 0, mnerr.WithDetails(mnerr.ErrInvalidValue, map[string]string{"expected": "p2sh, p2sh-p2wpkh, or p2wpkh"})
	}

	return network, addressType, nil
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	deriveCmd.Flags().StringVar(&deriveMnemonic, "mnemonic", "", "mnemonic to derive the root seed from")
	deriveCmd.Flags().StringVar(&deriveSeedHex, "seed-hex", "", "root seed as a hex string, bypassing mnemonic derivation")
	deriveCmd.Flags().BoolVar(&derivePassphrase, "passphrase", false, "prompt for the BIP-39 passphrase (only with --mnemonic)")
	deriveCmd.Flags().StringVar(&deriveNetwork, "network", "mainnet", "mainnet or testnet")
	deriveCmd.Flags().StringVar(&deriveAddressType, "address-type", "p2wpkh", "p2sh, p2sh-p2wpkh, or p2wpkh")
	deriveCmd.Flags().BoolVar(&derivePublicOnly, "public", false, "only print the xpub, never materialize the xprv")
	rootCmd.AddCommand(deriveCmd)
}
