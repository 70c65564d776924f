package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/silkyway/silk/internal/core/guard"
	"github.com/silkyway/silk/internal/core/pipeline"
	"github.com/silkyway/silk/internal/infra/signer"
)

var claimWallet string

var claimCmd = &cobra.Command{
	Use:   "claim <transferPda>",
	Short: "Claim a received payment",
	Args:  cobra.ExactArgs(1),
	Run:   runClaim,
}

func init() {
	claimCmd.Flags().StringVar(&claimWallet, "wallet", "", "wallet label to claim with")
	rootCmd.AddCommand(claimCmd)
}

func runClaim(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()
	transferPDA := args[0]

	wallet, err := cfg.Wallet(claimWallet)
	if err != nil {
		fail(err)
	}
	client := newClient(cfg)

	transfer, err := client.GetTransfer(ctx, transferPDA)
	if err != nil {
		fail(err)
	}
	if err := guard.Claim(transfer, wallet.Address, time.Now()); err != nil {
		fail(err)
	}

	kp, err := signer.FromBase58(wallet.PrivateKey)
	if err != nil {
		fail(err)
	}

	p := pipeline.Pipeline{Submitter: client, Signer: kp}
	txid, err := p.Run(ctx, func(ctx context.Context) (string, error) {
		return client.BuildClaimTx(ctx, wallet.Address, transferPDA)
	})
	if err != nil {
		fail(err)
	}

	success(map[string]any{
		"action":      "claim",
		"transferPda": transferPDA,
		"txid":        txid,
	})
}
