package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/silkyway/silk/internal/core/guard"
	"github.com/silkyway/silk/internal/core/pipeline"
	"github.com/silkyway/silk/internal/infra/signer"
)

var cancelWallet string

var cancelCmd = &cobra.Command{
	Use:   "cancel <transferPda>",
	Short: "Cancel a sent payment",
	Args:  cobra.ExactArgs(1),
	Run:   runCancel,
}

func init() {
	cancelCmd.Flags().StringVar(&cancelWallet, "wallet", "", "wallet label to cancel with")
	rootCmd.AddCommand(cancelCmd)
}

func runCancel(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()
	transferPDA := args[0]

	wallet, err := cfg.Wallet(cancelWallet)
	if err != nil {
		fail(err)
	}
	client := newClient(cfg)

	transfer, err := client.GetTransfer(ctx, transferPDA)
	if err != nil {
		fail(err)
	}
	if err := guard.Cancel(transfer, wallet.Address); err != nil {
		fail(err)
	}

	kp, err := signer.FromBase58(wallet.PrivateKey)
	if err != nil {
		fail(err)
	}

	p := pipeline.Pipeline{Submitter: client, Signer: kp}
	txid, err := p.Run(ctx, func(ctx context.Context) (string, error) {
		return client.BuildCancelTx(ctx, wallet.Address, transferPDA)
	})
	if err != nil {
		fail(err)
	}

	success(map[string]any{
		"action":      "cancel",
		"transferPda": transferPDA,
		"txid":        txid,
	})
}
