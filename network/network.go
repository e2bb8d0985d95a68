package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/censync/go-validator"
)

// ErrNetworkNotFound is returned when the requested network is not present
// in the loaded configuration.
var ErrNetworkNotFound = errors.New("network not found")

// Network describes one target chain: where to submit and which asset
// identifiers are known there.
type Network struct {
	Name        string            `json:"name" validate:"attr=name,min=1"`
	RPCURL      string            `json:"rpc_url" validate:"attr=rpc_url,min=1"`
	ChainID     uint64            `json:"chain_id"`
	AssetIDs    map[string]string `json:"asset_ids,omitempty"`
	ExplorerURL string            `json:"explorer_url,omitempty"`
}

func (n *Network) Validate() error {
	if err := validator.Validate(n); !err.IsEmpty() {
		return err.Error()
	}
	return nil
}

// TxURL renders an explorer link for a submitted transaction, or an empty
// string if the network has no explorer configured.
func (n *Network) TxURL(txID string) string {
	if n.ExplorerURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/tx/%s", n.ExplorerURL, txID)
}

type networksFile struct {
	Networks []*Network `json:"networks"`
}

// Provider resolves network names against a JSON configuration file loaded
// once at startup.
type Provider struct {
	networks map[string]*Network
}

func NewProvider(path string) (*Provider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read networks file: %w", err)
	}

	var nf networksFile
	if err := json.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal networks file: %w", err)
	}

	networks := make(map[string]*Network, len(nf.Networks))
	for _, n := range nf.Networks {
		if err := n.Validate(); err != nil {
			return nil, fmt.Errorf("invalid network %q: %w", n.Name, err)
		}
		if _, ok := networks[n.Name]; ok {
			return nil, fmt.Errorf("duplicate network name %q", n.Name)
		}
		networks[n.Name] = n
	}

	return &Provider{networks: networks}, nil
}

func (p *Provider) GetNetwork(name string) (*Network, error) {
	n, ok := p.networks[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNetworkNotFound, name)
	}
	return n, nil
}

// Networks returns all configured networks ordered by name.
func (p *Provider) Networks() []*Network {
	out := make([]*Network, 0, len(p.networks))
	for _, n := range p.networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
