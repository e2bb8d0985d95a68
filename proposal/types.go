package proposal

import (
	"encoding/json"
	"time"
)

// SchemaVersion is bumped on every incompatible change of the persisted
// proposal layout. A record with an unknown version is refused instead of
// being misparsed.
const SchemaVersion = 1

// State is a computed view over a stored proposal; it is never persisted.
type State string

const (
	StateEmpty    State = "empty"
	StateProposed State = "proposed"
	StateSigning  State = "signing"
	StateReady    State = "ready"
)

// TransactionIntent describes the transfer a proposal commits to. It is
// immutable once the proposal is created.
type TransactionIntent struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	AssetID   string `json:"asset_id,omitempty"`
}

// SignatureEntry is one signer's contribution. Two entries are duplicates
// iff their Signer matches exactly; the signature payload is not compared.
type SignatureEntry struct {
	Signer    string `json:"signer"`
	Signature string `json:"signature"`
}

// SignatureSet keeps signatures in insertion order with at most one entry
// per signer.
type SignatureSet struct {
	entries []SignatureEntry
}

// Add appends the entry unless its signer is already present. Re-adding a
// signer is a silent no-op (first write wins), so a signer re-submitting
// over a flaky channel never breaks the flow.
func (s *SignatureSet) Add(entry SignatureEntry) (appended bool) {
	for _, e := range s.entries {
		if e.Signer == entry.Signer {
			return false
		}
	}
	s.entries = append(s.entries, entry)
	return true
}

// UniqueCount returns the number of distinct signers present.
func (s *SignatureSet) UniqueCount() int {
	return len(s.entries)
}

// All returns the collected entries in insertion order.
func (s *SignatureSet) All() []SignatureEntry {
	out := make([]SignatureEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s SignatureSet) MarshalJSON() ([]byte, error) {
	if s.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.entries)
}

// UnmarshalJSON rebuilds the set through Add, so a hand-edited or corrupted
// record carrying the same signer twice collapses to its first entry instead
// of inflating the distinct-signer count.
func (s *SignatureSet) UnmarshalJSON(data []byte) error {
	var raw []SignatureEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.entries = nil
	for _, entry := range raw {
		s.Add(entry)
	}
	return nil
}

// PendingProposal is the persisted record of one in-flight transfer.
// All fields are human-readable so an operator can inspect or recover the
// record without tooling.
type PendingProposal struct {
	SchemaVersion int    `json:"schema_version"`
	ID            string `json:"id"` // UUID4

	WalletName  string `json:"wallet"`
	NetworkName string `json:"network"`

	SigningHash string            `json:"signing_hash"`
	Intent      TransactionIntent `json:"intent"`
	CreatedAt   time.Time         `json:"created_at"`

	Signatures         SignatureSet `json:"signatures"`
	RequiredSignatures int          `json:"required_signatures"`
}

// ReadyToSend reports whether enough distinct signers have signed.
func (p *PendingProposal) ReadyToSend() bool {
	return p.Signatures.UniqueCount() >= p.RequiredSignatures
}

// State derives the lifecycle state from the collected signature count.
func (p *PendingProposal) State() State {
	switch count := p.Signatures.UniqueCount(); {
	case count >= p.RequiredSignatures:
		return StateReady
	case count > 0:
		return StateSigning
	default:
		return StateProposed
	}
}
