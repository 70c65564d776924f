package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/core/guard"
	"github.com/silkyway/silk/internal/core/pipeline"
	"github.com/silkyway/silk/internal/infra/signer"
)

var (
	payMemo   string
	payWallet string
)

var payCmd = &cobra.Command{
	Use:   "pay <recipient> <amount>",
	Short: "Send a USDC payment",
	Args:  cobra.ExactArgs(2),
	Run:   runPay,
}

func init() {
	payCmd.Flags().StringVar(&payMemo, "memo", "", "payment memo")
	payCmd.Flags().StringVar(&payWallet, "wallet", "", "sender wallet label")
	rootCmd.AddCommand(payCmd)
}

func runPay(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	wallet, err := cfg.Wallet(payWallet)
	if err != nil {
		fail(err)
	}
	recipient := st.ResolveRecipient(args[0])
	client := newClient(cfg)

	amount, err := guard.Pay(ctx, recipient, args[1], func(ctx context.Context) (*domain.Balance, error) {
		return client.GetBalance(ctx, wallet.Address)
	})
	if err != nil {
		fail(err)
	}

	kp, err := signer.FromBase58(wallet.PrivateKey)
	if err != nil {
		fail(err)
	}

	p := pipeline.Pipeline{Submitter: client, Signer: kp}
	var transferPDA string
	txid, err := p.Run(ctx, func(ctx context.Context) (string, error) {
		built, buildErr := client.BuildTransferTx(ctx, wallet.Address, recipient, amount, "usdc", payMemo)
		if buildErr != nil {
			return "", buildErr
		}
		transferPDA = built.TransferPDA
		return built.Transaction, nil
	})
	if err != nil {
		fail(err)
	}

	success(map[string]any{
		"action":      "pay",
		"transferPda": transferPDA,
		"txid":        txid,
		"amount":      amount,
		"recipient":   recipient,
		"claimUrl":    cfg.ClaimURL(transferPDA),
	})
}
