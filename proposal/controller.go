package proposal

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vaultsig/vaultsig/common"
	"github.com/vaultsig/vaultsig/network"
	"github.com/vaultsig/vaultsig/wallet"
)

// WalletProvider resolves a wallet name to its configured signer set and
// threshold.
type WalletProvider interface {
	GetWallet(name string) (*wallet.Wallet, error)
}

// NetworkProvider resolves a network name to its submission endpoint.
type NetworkProvider interface {
	GetNetwork(name string) (*network.Network, error)
}

// HashComputer derives the exact byte commitment every signer must sign
// over. The lifecycle never computes it itself.
type HashComputer interface {
	ComputeSigningHash(intent TransactionIntent, w *wallet.Wallet, n *network.Network) (string, error)
}

// SubmitResult is the network's acknowledgement of a submitted transaction.
type SubmitResult struct {
	TransactionID string
	Status        string
}

// Submitter encodes collected signatures into witnesses and submits the
// transaction to the network.
type Submitter interface {
	Submit(p *PendingProposal, w *wallet.Wallet, n *network.Network, signatures []SignatureEntry) (*SubmitResult, error)
}

// CreateResult reports what signers need to know to start signing.
type CreateResult struct {
	ProposalID  string
	SigningHash string
	Required    int
}

// SignatureProgress reports collection progress after an AddSignature call.
type SignatureProgress struct {
	Appended         bool
	UniqueCount      int
	Required         int
	ThresholdReached bool
}

// StatusInfo is a read-only view over the stored proposal.
type StatusInfo struct {
	Proposal *PendingProposal
	State    State
}

// Controller drives the pending-proposal lifecycle:
// Empty -> Proposed -> Signing -> Ready -> Sent|Cancelled.
// Every operation performs at most one store load and one store save; the
// store is mutated after an external submission succeeds, never before.
type Controller struct {
	store     Store
	wallets   WalletProvider
	networks  NetworkProvider
	hasher    HashComputer
	submitter Submitter
	logger    common.Logger
}

func NewController(
	store Store,
	wallets WalletProvider,
	networks NetworkProvider,
	hasher HashComputer,
	submitter Submitter,
	logger common.Logger,
) *Controller {
	return &Controller{
		store:     store,
		wallets:   wallets,
		networks:  networks,
		hasher:    hasher,
		submitter: submitter,
		logger:    logger,
	}
}

// Create starts a new proposal. If a proposal is already stored it is
// refused unless replace is set, in which case the new record overwrites
// the slot as a whole and no signatures are carried over.
func (c *Controller) Create(walletName, networkName string, intent TransactionIntent, replace bool) (*CreateResult, error) {
	exists, err := c.store.Exists()
	if err != nil {
		return nil, fmt.Errorf("failed to check proposal store: %w", err)
	}
	if exists && !replace {
		return nil, ErrProposalExists
	}

	w, err := c.wallets.GetWallet(walletName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wallet: %w", err)
	}
	n, err := c.networks.GetNetwork(networkName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}

	signingHash, err := c.hasher.ComputeSigningHash(intent, w, n)
	if err != nil {
		return nil, fmt.Errorf("failed to compute signing hash: %w", err)
	}

	p := &PendingProposal{
		SchemaVersion:      SchemaVersion,
		ID:                 uuid.New().String(),
		WalletName:         walletName,
		NetworkName:        networkName,
		SigningHash:        signingHash,
		Intent:             intent,
		CreatedAt:          time.Now(),
		RequiredSignatures: w.RequiredSignatures,
	}

	if err := c.store.Save(p); err != nil {
		return nil, fmt.Errorf("failed to save proposal: %w", err)
	}
	c.logger.Log("Created proposal %s (%d signatures required)", p.ID, p.RequiredSignatures)

	return &CreateResult{
		ProposalID:  p.ID,
		SigningHash: p.SigningHash,
		Required:    p.RequiredSignatures,
	}, nil
}

// AddSignature records one signer's contribution. Pure bookkeeping: the
// signature bytes are not verified here, though a signer outside the
// wallet's configured set is flagged to the operator since that is almost
// always a typo. Re-adding a signer is a silent no-op and does not touch
// the store.
func (c *Controller) AddSignature(signerAddress, signatureHex string) (*SignatureProgress, error) {
	p, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	if w, werr := c.wallets.GetWallet(p.WalletName); werr == nil && !w.IsSigner(signerAddress) {
		c.logger.Log("Warning: %s is not in wallet %s's signer set", signerAddress, p.WalletName)
	}

	appended := p.Signatures.Add(SignatureEntry{
		Signer:    signerAddress,
		Signature: signatureHex,
	})
	if appended {
		if err := c.store.Save(p); err != nil {
			return nil, fmt.Errorf("failed to save proposal: %w", err)
		}
		c.logger.Log("Recorded signature from %s (%d of %d)",
			signerAddress, p.Signatures.UniqueCount(), p.RequiredSignatures)
	}

	return &SignatureProgress{
		Appended:         appended,
		UniqueCount:      p.Signatures.UniqueCount(),
		Required:         p.RequiredSignatures,
		ThresholdReached: p.ReadyToSend(),
	}, nil
}

// ReadyToSend reports whether the stored proposal has reached its
// threshold.
func (c *Controller) ReadyToSend() (bool, error) {
	p, err := c.store.Load()
	if err != nil {
		return false, err
	}
	return p.ReadyToSend(), nil
}

// Status returns the stored proposal together with its computed lifecycle
// state.
func (c *Controller) Status() (*StatusInfo, error) {
	p, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	return &StatusInfo{Proposal: p, State: p.State()}, nil
}

// Send submits the proposal to the network. Signatures collected out of
// band may be passed in extra; they are merged with the same dedup rule as
// AddSignature but are never persisted — the only store mutation here is
// the delete after the network confirms the submission. A failed
// submission leaves the stored proposal intact so Send can simply be
// re-invoked.
func (c *Controller) Send(extra []SignatureEntry) (*SubmitResult, error) {
	p, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	for _, entry := range extra {
		p.Signatures.Add(entry)
	}

	if have := p.Signatures.UniqueCount(); have < p.RequiredSignatures {
		return nil, &InsufficientSignaturesError{Have: have, Need: p.RequiredSignatures}
	}

	w, err := c.wallets.GetWallet(p.WalletName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve wallet: %w", err)
	}
	n, err := c.networks.GetNetwork(p.NetworkName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}

	result, err := c.submitter.Submit(p, w, n, p.Signatures.All())
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}
	c.logger.Log("Submitted transaction %s (status: %s)", result.TransactionID, result.Status)

	if err := c.store.Delete(); err != nil {
		return result, fmt.Errorf("transaction %s submitted but failed to clear pending proposal: %w",
			result.TransactionID, err)
	}
	return result, nil
}

// Cancel discards the stored proposal. Cancelling an empty slot is not an
// error.
func (c *Controller) Cancel() error {
	if err := c.store.Delete(); err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}
	return nil
}
