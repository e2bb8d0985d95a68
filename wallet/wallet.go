package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/censync/go-validator"
	"github.com/ethereum/go-ethereum/common"
)

// ErrWalletNotFound is returned when the requested wallet is not present in
// the loaded configuration.
var ErrWalletNotFound = errors.New("wallet not found")

// Wallet is one M-of-N predicate vault: the full signer set plus the number
// of distinct signatures the predicate requires to spend.
type Wallet struct {
	Name               string            `json:"name" validate:"attr=name,min=1"`
	SignerAddresses    []string          `json:"signers"`
	RequiredSignatures int               `json:"required_signatures"`
	PredicateVersion   string            `json:"predicate_version" validate:"attr=predicate_version,min=1"`
	PredicateParams    map[string]string `json:"predicate_params,omitempty"`
}

// Validate checks the threshold arithmetic and the signer set shape. A
// wallet that fails here never reaches the proposal lifecycle, so the
// lifecycle itself does not re-validate thresholds.
func (w *Wallet) Validate() error {
	if err := validator.Validate(w); !err.IsEmpty() {
		return err.Error()
	}

	if len(w.SignerAddresses) == 0 {
		return errors.New("{signers} cannot be empty")
	}
	if w.RequiredSignatures < 1 {
		return errors.New("{required_signatures} must be at least 1")
	}
	if w.RequiredSignatures > len(w.SignerAddresses) {
		return fmt.Errorf("{required_signatures} (%d) cannot exceed the signer set size (%d)",
			w.RequiredSignatures, len(w.SignerAddresses))
	}

	seen := make(map[string]struct{}, len(w.SignerAddresses))
	for _, addr := range w.SignerAddresses {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("invalid signer address %q", addr)
		}
		if _, ok := seen[addr]; ok {
			return fmt.Errorf("duplicate signer address %q", addr)
		}
		seen[addr] = struct{}{}
	}
	return nil
}

// IsSigner reports whether addr belongs to the wallet's signer set
// (exact, case-sensitive match).
func (w *Wallet) IsSigner(addr string) bool {
	for _, s := range w.SignerAddresses {
		if s == addr {
			return true
		}
	}
	return false
}

type walletsFile struct {
	Wallets []*Wallet `json:"wallets"`
}

// Provider resolves wallet names against a JSON configuration file loaded
// once at startup.
type Provider struct {
	wallets map[string]*Wallet
}

func NewProvider(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wallets file: %w", err)
	}

	var wf walletsFile
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallets file: %w", err)
	}

	wallets := make(map[string]*Wallet, len(wf.Wallets))
	for _, w := range wf.Wallets {
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("invalid wallet %q: %w", w.Name, err)
		}
		if _, ok := wallets[w.Name]; ok {
			return nil, fmt.Errorf("duplicate wallet name %q", w.Name)
		}
		wallets[w.Name] = w
	}

	return &Provider{wallets: wallets}, nil
}

func (p *Provider) GetWallet(name string) (*Wallet, error) {
	w, ok := p.wallets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWalletNotFound, name)
	}
	return w, nil
}

// Wallets returns all configured wallets ordered by name.
func (p *Provider) Wallets() []*Wallet {
	out := make([]*Wallet, 0, len(p.wallets))
	for _, w := range p.wallets {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
