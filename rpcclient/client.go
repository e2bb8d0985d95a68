// Package rpcclient submits assembled transactions to a network node. It
// turns the ordered signature list into the witness layout the node
// expects and posts the whole package as JSON.
package rpcclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vaultsig/vaultsig/network"
	"github.com/vaultsig/vaultsig/proposal"
	"github.com/vaultsig/vaultsig/wallet"
)

const defaultTimeout = 30 * time.Second

var _ proposal.Submitter = (*Client)(nil)

type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Witness is the network-level encoded form of one collected signature.
// The index preserves the collection order the predicate expects.
type Witness struct {
	Index  int    `json:"index"`
	Signer string `json:"signer"`
	Data   string `json:"data"`
}

type predicateInfo struct {
	Version   string            `json:"version"`
	Params    map[string]string `json:"params,omitempty"`
	Signers   []string          `json:"signers"`
	Threshold int               `json:"threshold"`
}

type submitTransactionRequest struct {
	ChainID     uint64                     `json:"chain_id"`
	Predicate   predicateInfo              `json:"predicate"`
	Intent      proposal.TransactionIntent `json:"intent"`
	SigningHash string                     `json:"signing_hash"`
	Witnesses   []Witness                  `json:"witnesses"`
}

type submitTransactionResult struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
}

type submitTransactionResponse struct {
	ErrorMessage string                   `json:"error_message,omitempty"`
	Result       *submitTransactionResult `json:"result"`
}

// Submit posts the transaction to the network node configured for n.
func (c *Client) Submit(p *proposal.PendingProposal, w *wallet.Wallet, n *network.Network, signatures []proposal.SignatureEntry) (*proposal.SubmitResult, error) {
	witnesses := make([]Witness, 0, len(signatures))
	for i, entry := range signatures {
		witnesses = append(witnesses, Witness{
			Index:  i,
			Signer: entry.Signer,
			Data:   entry.Signature,
		})
	}

	request := submitTransactionRequest{
		ChainID: n.ChainID,
		Predicate: predicateInfo{
			Version:   w.PredicateVersion,
			Params:    w.PredicateParams,
			Signers:   w.SignerAddresses,
			Threshold: w.RequiredSignatures,
		},
		Intent:      p.Intent,
		SigningHash: p.SigningHash,
		Witnesses:   witnesses,
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submit request: %w", err)
	}

	resp, err := c.httpClient.Post(
		fmt.Sprintf("%s/submitTransaction", n.RPCURL),
		"application/json",
		bytes.NewReader(requestBody),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	var response submitTransactionResponse
	if err = json.Unmarshal(responseBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if response.ErrorMessage != "" {
		return nil, fmt.Errorf("node rejected transaction: %s", response.ErrorMessage)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from node", resp.StatusCode)
	}
	if response.Result == nil {
		return nil, fmt.Errorf("node returned an empty result")
	}

	return &proposal.SubmitResult{
		TransactionID: response.Result.TransactionID,
		Status:        response.Result.Status,
	}, nil
}
