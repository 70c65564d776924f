package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var balanceWallet string

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Check wallet balances",
	Args:  cobra.NoArgs,
	Run:   runBalance,
}

func init() {
	balanceCmd.Flags().StringVar(&balanceWallet, "wallet", "", "wallet label to check")
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	wallet, err := cfg.Wallet(balanceWallet)
	if err != nil {
		fail(err)
	}

	bal, err := newClient(cfg).GetBalance(ctx, wallet.Address)
	if err != nil {
		fail(err)
	}

	success(map[string]any{
		"wallet":  wallet.Label,
		"address": wallet.Address,
		"sol":     bal.Sol,
		"tokens":  bal.Tokens,
	})
}
