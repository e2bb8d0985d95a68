package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vaultsig/vaultsig/common"
	"github.com/vaultsig/vaultsig/config"
	"github.com/vaultsig/vaultsig/network"
	"github.com/vaultsig/vaultsig/proposal"
	"github.com/vaultsig/vaultsig/rpcclient"
	"github.com/vaultsig/vaultsig/txhash"
	"github.com/vaultsig/vaultsig/wallet"
)

const (
	flagConfig       = "config"
	flagStoreBackend = "store_backend"
	flagStorePath    = "store_path"
	flagAssetID      = "asset_id"
	flagReplace      = "replace"
	flagSignature    = "signature"
)

var rootCmd = &cobra.Command{
	Use:   "vaultsig_cli",
	Short: "coordinator-free multisig transfer utilities",
}

func init() {
	rootCmd.PersistentFlags().String(flagConfig, "", "Path to the config file (optional)")
	rootCmd.PersistentFlags().String(flagStoreBackend, "", "Override the pending transfer store backend (file or leveldb)")
	rootCmd.PersistentFlags().String(flagStorePath, "", "Override the pending transfer store path")
}

func main() {
	rootCmd.AddCommand(
		createTransferCommand(),
		addSignatureCommand(),
		statusCommand(),
		sendCommand(),
		cancelCommand(),
		listWalletsCommand(),
		listNetworksCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute root command: %v", err)
	}
}

type app struct {
	conf       *config.Config
	wallets    *wallet.Provider
	networks   *network.Provider
	controller *proposal.Controller
}

func buildApp(cmd *cobra.Command) (*app, error) {
	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %v", err)
	}

	conf, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	storeBackend, err := cmd.Flags().GetString(flagStoreBackend)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %v", err)
	}
	if storeBackend != "" {
		conf.Store.Backend = storeBackend
	}
	storePath, err := cmd.Flags().GetString(flagStorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %v", err)
	}
	if storePath != "" {
		conf.Store.Path = storePath
	}

	wallets, err := wallet.NewProvider(conf.WalletsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallets: %w", err)
	}
	networks, err := network.NewProvider(conf.NetworksPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load networks: %w", err)
	}

	store, err := buildStore(conf.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to init proposal store: %w", err)
	}

	controller := proposal.NewController(
		store,
		wallets,
		networks,
		txhash.NewComputer(),
		rpcclient.NewClient(conf.RPCTimeout),
		common.NewLogger(cmd.Name()),
	)

	return &app{
		conf:       conf,
		wallets:    wallets,
		networks:   networks,
		controller: controller,
	}, nil
}

func buildStore(conf *config.StoreConfig) (proposal.Store, error) {
	switch conf.Backend {
	case config.StoreBackendLevelDB:
		return proposal.NewLevelDBStore(conf.Path)
	case config.StoreBackendFile:
		if conf.LockPath != "" {
			return proposal.NewFileStore(conf.Path, conf.LockPath), nil
		}
		return proposal.NewFileStore(conf.Path), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", conf.Backend)
	}
}

func createTransferCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create_transfer [wallet] [network] [recipient] [amount]",
		Args:  cobra.ExactArgs(4),
		Short: "proposes a transfer and prints the hash every signer must sign",
		RunE: func(cmd *cobra.Command, args []string) error {
			assetID, err := cmd.Flags().GetString(flagAssetID)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			replace, err := cmd.Flags().GetBool(flagReplace)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}

			app, err := buildApp(cmd)
			if err != nil {
				return err
			}

			intent := proposal.TransactionIntent{
				Recipient: args[2],
				Amount:    args[3],
				AssetID:   assetID,
			}
			result, err := app.controller.Create(args[0], args[1], intent, replace)
			if errors.Is(err, proposal.ErrProposalExists) {
				return fmt.Errorf("%w; cancel it or pass --replace to discard it", err)
			}
			if err != nil {
				return fmt.Errorf("failed to create transfer: %w", err)
			}

			fmt.Printf("Proposal ID: %s\n", result.ProposalID)
			fmt.Printf("Signing hash: %s\n", result.SigningHash)
			fmt.Printf("Required signatures: %d\n", result.Required)
			return nil
		},
	}
	cmd.Flags().String(flagAssetID, "", "Asset to transfer (defaults to the network's base asset)")
	cmd.Flags().Bool(flagReplace, false, "Discard the current pending transfer and start over")
	return cmd
}

func addSignatureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add_signature [signer] [signature-hex]",
		Args:  cobra.ExactArgs(2),
		Short: "records one signer's signature over the pending transfer",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}

			progress, err := app.controller.AddSignature(args[0], args[1])
			if errors.Is(err, proposal.ErrNoPendingProposal) {
				return fmt.Errorf("%w; create a transfer first", err)
			}
			if err != nil {
				return fmt.Errorf("failed to add signature: %w", err)
			}

			if !progress.Appended {
				fmt.Printf("Signer %s already signed, keeping the original signature\n", args[0])
			}
			fmt.Printf("Collected %d of %d required signatures\n", progress.UniqueCount, progress.Required)
			if progress.ThresholdReached {
				fmt.Println("Threshold reached, the transfer is ready to send")
			}
			return nil
		},
	}
}

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "shows the pending transfer and its signature progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}

			status, err := app.controller.Status()
			if errors.Is(err, proposal.ErrNoPendingProposal) {
				fmt.Println("No pending transfer")
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to load status: %w", err)
			}

			p := status.Proposal
			fmt.Printf("Proposal ID: %s\n", p.ID)
			fmt.Printf("State: %s\n", colorizeState(status.State))
			fmt.Printf("Wallet: %s\n", p.WalletName)
			fmt.Printf("Network: %s\n", p.NetworkName)
			fmt.Printf("Recipient: %s\n", p.Intent.Recipient)
			fmt.Printf("Amount: %s\n", p.Intent.Amount)
			if p.Intent.AssetID != "" {
				fmt.Printf("Asset: %s\n", p.Intent.AssetID)
			}
			fmt.Printf("Signing hash: %s\n", p.SigningHash)
			fmt.Printf("Created: %s\n", p.CreatedAt.Format("2006-01-02 15:04:05 MST"))
			fmt.Printf("Signatures: %d of %d\n", p.Signatures.UniqueCount(), p.RequiredSignatures)
			for _, entry := range p.Signatures.All() {
				fmt.Printf("\t%s\n", entry.Signer)
			}
			return nil
		},
	}
}

func colorizeState(state proposal.State) string {
	switch state {
	case proposal.StateReady:
		return color.GreenString(string(state))
	case proposal.StateSigning:
		return color.YellowString(string(state))
	default:
		return string(state)
	}
}

func sendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "submits the pending transfer once enough signatures are collected",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawSignatures, err := cmd.Flags().GetStringArray(flagSignature)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}

			extra := make([]proposal.SignatureEntry, 0, len(rawSignatures))
			for _, raw := range rawSignatures {
				entry, err := parseSignatureEntry(raw)
				if err != nil {
					return err
				}
				extra = append(extra, entry)
			}

			app, err := buildApp(cmd)
			if err != nil {
				return err
			}

			// Capture the target network before the slot is cleared so the
			// explorer link can still be rendered after a successful send.
			var targetNetwork *network.Network
			if status, loadErr := app.controller.Status(); loadErr == nil {
				if n, netErr := app.networks.GetNetwork(status.Proposal.NetworkName); netErr == nil {
					targetNetwork = n
				}
			}

			result, err := app.controller.Send(extra)
			var insufficient *proposal.InsufficientSignaturesError
			if errors.As(err, &insufficient) {
				return fmt.Errorf("%w; the pending transfer is kept, collect more signatures and retry", err)
			}
			if errors.Is(err, proposal.ErrNoPendingProposal) {
				return fmt.Errorf("%w; create a transfer first", err)
			}
			if result == nil && err != nil {
				return fmt.Errorf("failed to send transfer (the pending transfer is kept, retry is safe): %w", err)
			}

			fmt.Printf("Transaction ID: %s\n", result.TransactionID)
			fmt.Printf("Status: %s\n", result.Status)
			if targetNetwork != nil {
				if link := targetNetwork.TxURL(result.TransactionID); link != "" {
					fmt.Printf("Explorer: %s\n", link)
				}
			}
			// A non-nil error alongside a result means the submission went
			// through but the slot could not be cleared.
			return err
		},
	}
	cmd.Flags().StringArray(flagSignature, nil, "Out-of-band signature as signer:signature-hex (repeatable)")
	return cmd
}

func cancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "discards the pending transfer and all collected signatures",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}
			if err := app.controller.Cancel(); err != nil {
				return fmt.Errorf("failed to cancel transfer: %w", err)
			}
			fmt.Println("Pending transfer discarded")
			return nil
		},
	}
}

func listWalletsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list_wallets",
		Short: "lists the configured multisig wallets",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}
			for _, w := range app.wallets.Wallets() {
				fmt.Printf("Wallet: %s\n", w.Name)
				fmt.Printf("Threshold: %d of %d\n", w.RequiredSignatures, len(w.SignerAddresses))
				fmt.Printf("Predicate version: %s\n", w.PredicateVersion)
				for _, signer := range w.SignerAddresses {
					fmt.Printf("\t%s\n", signer)
				}
				fmt.Println("-----------------------------------------------------")
			}
			return nil
		},
	}
}

func listNetworksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list_networks",
		Short: "lists the configured networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd)
			if err != nil {
				return err
			}
			for _, n := range app.networks.Networks() {
				fmt.Printf("Network: %s (chain %d)\n", n.Name, n.ChainID)
				fmt.Printf("RPC: %s\n", n.RPCURL)
				if n.ExplorerURL != "" {
					fmt.Printf("Explorer: %s\n", n.ExplorerURL)
				}
				fmt.Println("-----------------------------------------------------")
			}
			return nil
		},
	}
}

func parseSignatureEntry(raw string) (proposal.SignatureEntry, error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return proposal.SignatureEntry{}, fmt.Errorf("failed to parse signature %q: expected signer:signature-hex", raw)
	}
	return proposal.SignatureEntry{
		Signer:    parts[0],
		Signature: parts[1],
	}, nil
}
