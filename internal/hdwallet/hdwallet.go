// Package hdwallet builds a BIP-0032 master extended key from a BIP-0039
// root seed, serialized under the SLIP-0132 version pair selected by
// network and address type.
package hdwallet

import (
	"encoding/binary"

	"github.com/decred/dcrd/hdkeychain/v3"

	"github.com/arcthorne/mnemonix/internal/versions"
	mnerr "github.com/arcthorne/mnemonix/pkg/errors"
)

// netParams adapts a SLIP-0132 (pubVersion, prvVersion) pair to
// hdkeychain.NetworkParams, the interface hdkeychain.NewMaster uses to
// pick which version bytes a serialized extended key carries.
type netParams struct {
	prv [4]byte
	pub [4]byte
}

func (p netParams) HDPrivKeyVersion() [4]byte { return p.prv }
func (p netParams) HDPubKeyVersion() [4]byte  { return p.pub }

func paramsFor(network versions.Network, addressType versions.AddressType) (netParams, error) {
	prv, err := versions.Version(network, addressType, versions.PrvKey)
	if err != nil {
		return netParams{}, err
	}
	pub, err := versions.Version(network, addressType, versions.PubKey)
	if err != nil {
		return netParams{}, err
	}

	var params netParams
	binary.BigEndian.PutUint32(params.prv[:], prv)
	binary.BigEndian.PutUint32(params.pub[:], pub)
	return params, nil
}

// Node is a BIP-0032 master extended key, tagged with the network and
// address type whose version bytes it was serialized under.
type Node struct {
	key         *hdkeychain.ExtendedKey
	network     versions.Network
	addressType versions.AddressType
}

// FromSeed derives the master node from a BIP-0039 root seed: I_L/I_R via
// HMAC-SHA512("Bitcoin seed", seed), I_L as the master private key, I_R
// as the master chain code. Seeds producing a degenerate I_L (zero, or
// >= the secp256k1 curve order) are rejected by hdkeychain.NewMaster and
// surfaced here as ErrInvalidValue, per the design note that a wallet
// must never silently serialize an unusable key.
func FromSeed(seed []byte, network versions.Network, addressType versions.AddressType) (*Node, error) {
	if len(seed) < hdkeychain.MinSeedBytes || len(seed) > hdkeychain.MaxSeedBytes {
		return nil, mnerr.WithDetails(mnerr.ErrInvalidSize, map[string]string{
			"expected": "16..64 bytes",
		})
	}

	params, err := paramsFor(network, addressType)
	if err != nil {
		return nil, err
	}

	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, mnerr.Wrap(mnerr.ErrInvalidValue, "seed produced a degenerate master key: %v", err)
	}

	return &Node{key: master, network: network, addressType: addressType}, nil
}

// IsPrivate reports whether this node still carries private key material.
func (n *Node) IsPrivate() bool { return n.key.IsPrivate() }

// Xprv returns the Base58Check-encoded extended private key. Fails if
// the node has already been neutered to a public-only key.
func (n *Node) Xprv() (string, error) {
	if !n.key.IsPrivate() {
		return "", mnerr.WithSuggestion(mnerr.ErrInvalidArgument, "node holds only public key material")
	}
	return n.key.String(), nil
}

// Xpub returns the Base58Check-encoded extended public key, discarding
// any private key material from the result.
func (n *Node) Xpub() (string, error) {
	pub := n.key.Neuter()
	return pub.String(), nil
}

// Network reports which network this node's version bytes select.
func (n *Node) Network() versions.Network { return n.network }

// AddressType reports which address type this node's version bytes select.
func (n *Node) AddressType() versions.AddressType { return n.addressType }

// Info is a read-only view of a master node, restoring the descriptive
// summary the original engine's Node.info property offered.
type Info struct {
	Path        string `json:"path"`
	Network     string `json:"network"`
	AddressType string `json:"address_type"`
	CanSign     bool   `json:"can_sign"`
	Xpub        string `json:"xpub"`
}

// Info builds the descriptive view of this node.
func (n *Node) Info() (Info, error) {
	xpub, err := n.Xpub()
	if err != nil {
		return Info{}, err
	}
	path, _ := versions.Path(n.network, n.addressType)

	return Info{
		Path:        path,
		Network:     n.network.String(),
		AddressType: n.addressType.String(),
		CanSign:     n.IsPrivate(),
		Xpub:        xpub,
	}, nil
}
