package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/core/sdkerr"
	"github.com/silkyway/silk/internal/infra/signer"
	"github.com/silkyway/silk/internal/infra/store"
)

var (
	fundSol    bool
	fundUSDC   bool
	fundWallet string
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage wallets",
}

var walletCreateCmd = &cobra.Command{
	Use:   "create [label]",
	Short: "Create a new wallet",
	Args:  cobra.MaximumNArgs(1),
	Run:   runWalletCreate,
}

var walletListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all wallets",
	Args:  cobra.NoArgs,
	Run:   runWalletList,
}

var walletFundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Fund wallet from the devnet faucet (devnet only)",
	Args:  cobra.NoArgs,
	Run:   runWalletFund,
}

func init() {
	walletFundCmd.Flags().BoolVar(&fundSol, "sol", false, "request SOL only")
	walletFundCmd.Flags().BoolVar(&fundUSDC, "usdc", false, "request USDC only")
	walletFundCmd.Flags().StringVar(&fundWallet, "wallet", "", "wallet label to fund")

	walletCmd.AddCommand(walletCreateCmd, walletListCmd, walletFundCmd)
	rootCmd.AddCommand(walletCmd)
}

func runWalletCreate(cmd *cobra.Command, args []string) {
	st := openStore()
	cfg := st.LoadConfig()

	label := "main"
	if len(args) == 1 {
		label = args[0]
	}
	for _, w := range cfg.Wallets {
		if w.Label == label {
			fail(sdkerr.New(sdkerr.CodeWalletExists, "Wallet %q already exists (%s)", label, w.Address))
		}
	}

	kp, err := signer.Generate()
	if err != nil {
		fail(err)
	}
	cfg.Wallets = append(cfg.Wallets, domain.Wallet{
		Label:      label,
		Address:    kp.Address(),
		PrivateKey: kp.PrivateKeyBase58(),
	})
	if len(cfg.Wallets) == 1 {
		cfg.DefaultWallet = label
	}
	if err := st.SaveConfig(cfg); err != nil {
		fail(err)
	}

	success(map[string]any{
		"action":  "wallet_create",
		"label":   label,
		"address": kp.Address(),
	})
}

func runWalletList(cmd *cobra.Command, args []string) {
	st := openStore()
	cfg := st.LoadConfig()

	// Private keys never leave the config file.
	wallets := make([]map[string]any, 0, len(cfg.Wallets))
	for _, w := range cfg.Wallets {
		wallets = append(wallets, map[string]any{
			"label":   w.Label,
			"address": w.Address,
			"default": w.Label == cfg.DefaultWallet,
		})
	}
	success(map[string]any{
		"action":  "wallet_list",
		"wallets": wallets,
	})
}

func runWalletFund(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	if cfg.ActiveCluster() != store.ClusterDevnet {
		fail(sdkerr.New(sdkerr.CodeUnsupportedCluster,
			"Faucet funding is only available on devnet. Run: silk config set-cluster devnet"))
	}
	wallet, err := cfg.Wallet(fundWallet)
	if err != nil {
		fail(err)
	}

	// Neither flag means both assets.
	sol, usdc := fundSol, fundUSDC
	if !sol && !usdc {
		sol, usdc = true, true
	}

	res, err := newClient(cfg).Fund(ctx, wallet.Address, sol, usdc)
	if err != nil {
		fail(err)
	}

	success(map[string]any{
		"action":  "fund",
		"address": wallet.Address,
		"result":  res,
	})
}
