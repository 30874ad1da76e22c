// Package versions implements the SLIP-0132 static registry of BIP-0032
// extended-key version bytes, keyed by (network, address type, key type).
package versions

import mnerr "github.com/arcthorne/mnemonix/pkg/errors"

// Network identifies which Bitcoin network a node belongs to.
type Network int

// Supported networks.
const (
	Mainnet Network = iota
	Testnet
)

// String renders the network's external name.
func (n Network) String() string {
	if n == Testnet {
		return "testnet"
	}
	return "mainnet"
}

// AddressType identifies the address scheme an extended key serializes
// version bytes for.
type AddressType int

// Supported address types. DefaultAddressType aliases P2WPKH.
const (
	P2SH AddressType = iota
	P2SHP2WPKH
	P2WPKH
)

// DefaultAddressType is the alias the original registry marks as its
// default member, modeled here as a plain constant rather than an
// aliased enum value.
const DefaultAddressType = P2WPKH

// String renders the address type's external name.
func (a AddressType) String() string {
	switch a {
	case P2SH:
		return "p2sh"
	case P2SHP2WPKH:
		return "p2sh-p2wpkh"
	case P2WPKH:
		return "p2wpkh"
	default:
		return "unknown"
	}
}

// KeyType selects whether a version applies to a public or private
// extended key.
type KeyType int

// Supported key types. DefaultKeyType aliases PubKey.
const (
	PubKey KeyType = iota
	PrvKey
)

// DefaultKeyType is the alias the original registry marks as its
// default member.
const DefaultKeyType = PubKey

// entry is one row of the static version registry.
type entry struct {
	network     Network
	addressType AddressType
	path        string
	pubVersion  uint32
	prvVersion  uint32
}

//nolint:gochecknoglobals // Static SLIP-0132 registry
var registry = [...]entry{
	{Mainnet, P2SH, "m/44h/0h", 0x0488b21e, 0x0488ade4},
	{Mainnet, P2SHP2WPKH, "m/49h/0h", 0x049d7cb2, 0x049d7878},
	{Mainnet, P2WPKH, "m/84h/0h", 0x04b24746, 0x04b2430c},
	{Testnet, P2SH, "m/44h/1h", 0x043587cf, 0x04358394},
	{Testnet, P2SHP2WPKH, "m/49h/1h", 0x044a5262, 0x044a4e28},
	{Testnet, P2WPKH, "m/84h/1h", 0x045f1cf6, 0x045f18bc},
}

func find(network Network, addressType AddressType) (entry, bool) {
	for _, e := range registry {
		if e.network == network && e.addressType == addressType {
			return e, true
		}
	}
	return entry{}, false
}

// Version returns the 32-bit version for (network, addressType, keyType).
func Version(network Network, addressType AddressType, keyType KeyType) (uint32, error) {
	e, ok := find(network, addressType)
	if !ok {
		return 0, mnerr.ErrInvalidValue
	}
	if keyType == PrvKey {
		return e.prvVersion, nil
	}
	return e.pubVersion, nil
}

// Path returns the default BIP-0044-ish path for (network, addressType).
func Path(network Network, addressType AddressType) (string, bool) {
	e, ok := find(network, addressType)
	if !ok {
		return "", false
	}
	return e.path, true
}

// FindByVersion reverse-looks-up a 32-bit version value. Total: returns
// ok=false when the value does not match any registered entry.
func FindByVersion(value uint32) (network Network, addressType AddressType, keyType KeyType, ok bool) {
	for _, e := range registry {
		if e.pubVersion == value {
			return e.network, e.addressType, PubKey, true
		}
		if e.prvVersion == value {
			return e.network, e.addressType, PrvKey, true
		}
	}
	return 0, 0, 0, false
}

// FindByPath reverse-looks-up a default path string. Total: returns
// ok=false when the path does not match any registered entry.
func FindByPath(path string) (network Network, addressType AddressType, ok bool) {
	for _, e := range registry {
		if e.path == path {
			return e.network, e.addressType, true
		}
	}
	return 0, 0, false
}
