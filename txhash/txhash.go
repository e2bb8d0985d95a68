// Package txhash derives the signing commitment for a proposed transfer.
// The commitment covers everything the network will verify at submission
// time: the chain, the predicate configuration, the full signer set with
// its threshold, and the transfer intent. Two proposals that differ in any
// of these produce different hashes, so a signature can never be replayed
// against another transfer.
package txhash

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"sort"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"

	"github.com/vaultsig/vaultsig/network"
	"github.com/vaultsig/vaultsig/proposal"
	"github.com/vaultsig/vaultsig/wallet"
)

var amountRe = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

var _ proposal.HashComputer = (*Computer)(nil)

// Computer is the default keccak256-based signing hash implementation.
type Computer struct{}

func NewComputer() *Computer {
	return &Computer{}
}

// ComputeSigningHash encodes the transfer canonically and hashes it with
// keccak256. The encoding is length-prefixed per field, so no two distinct
// transfers share an encoding.
func (c *Computer) ComputeSigningHash(intent proposal.TransactionIntent, w *wallet.Wallet, n *network.Network) (string, error) {
	if !amountRe.MatchString(intent.Amount) {
		return "", fmt.Errorf("invalid amount %q: expected a decimal string", intent.Amount)
	}

	var buf []byte
	buf = appendUint64(buf, n.ChainID)
	buf = appendField(buf, w.PredicateVersion)

	// Predicate params are a map; encode them in sorted key order.
	paramKeys := make([]string, 0, len(w.PredicateParams))
	for k := range w.PredicateParams {
		paramKeys = append(paramKeys, k)
	}
	sort.Strings(paramKeys)
	for _, k := range paramKeys {
		buf = appendField(buf, k)
		buf = appendField(buf, w.PredicateParams[k])
	}

	buf = appendUint64(buf, uint64(w.RequiredSignatures))
	buf = appendUint64(buf, uint64(len(w.SignerAddresses)))
	for _, signer := range w.SignerAddresses {
		buf = appendField(buf, signer)
	}

	buf = appendField(buf, intent.Recipient)
	buf = appendField(buf, intent.Amount)
	buf = appendField(buf, intent.AssetID)

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(buf)
	return hexutil.Encode(hasher.Sum(nil)), nil
}

func appendUint64(buf []byte, v uint64) []byte {
	var bz [8]byte
	binary.BigEndian.PutUint64(bz[:], v)
	return append(buf, bz[:]...)
}

func appendField(buf []byte, field string) []byte {
	buf = appendUint64(buf, uint64(len(field)))
	return append(buf, field...)
}
