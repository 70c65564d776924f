package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var paymentsWallet string

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "View payment history",
}

var paymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transfers",
	Args:  cobra.NoArgs,
	Run:   runPaymentsList,
}

var paymentsGetCmd = &cobra.Command{
	Use:   "get <transferPda>",
	Short: "Get transfer details",
	Args:  cobra.ExactArgs(1),
	Run:   runPaymentsGet,
}

func init() {
	paymentsListCmd.Flags().StringVar(&paymentsWallet, "wallet", "", "wallet label to query")
	paymentsCmd.AddCommand(paymentsListCmd, paymentsGetCmd)
	rootCmd.AddCommand(paymentsCmd)
}

func runPaymentsList(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	wallet, err := cfg.Wallet(paymentsWallet)
	if err != nil {
		fail(err)
	}

	transfers, err := newClient(cfg).ListTransfers(ctx, wallet.Address)
	if err != nil {
		fail(err)
	}

	success(map[string]any{
		"transfers": transfers,
	})
}

func runPaymentsGet(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	transfer, err := newClient(cfg).GetTransfer(ctx, args[0])
	if err != nil {
		fail(err)
	}

	success(map[string]any{
		"transfer": transfer,
	})
}
