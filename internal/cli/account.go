package cli

import (
	"context"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/silkyway/silk/internal/core/accountsync"
	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/core/pipeline"
	"github.com/silkyway/silk/internal/core/sdkerr"
	"github.com/silkyway/silk/internal/core/validate"
	"github.com/silkyway/silk/internal/infra/signer"
	"github.com/silkyway/silk/internal/infra/store"
)

var (
	accountWallet    string
	accountSyncPDA   string
	accountEventType string
	accountSendMemo  string
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the shared spending account",
}

var accountSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Discover and sync your account",
	Args:  cobra.NoArgs,
	Run:   runAccountSync,
}

var accountStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show account balance and policy",
	Args:  cobra.NoArgs,
	Run:   runAccountStatus,
}

var accountEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List account events",
	Args:  cobra.NoArgs,
	Run:   runAccountEvents,
}

var accountDepositCmd = &cobra.Command{
	Use:   "deposit <amount>",
	Short: "Deposit into the account",
	Args:  cobra.ExactArgs(1),
	Run:   runAccountDeposit,
}

var accountWithdrawCmd = &cobra.Command{
	Use:   "withdraw <amount>",
	Short: "Withdraw from the account to your wallet",
	Args:  cobra.ExactArgs(1),
	Run:   runAccountWithdraw,
}

var accountSendCmd = &cobra.Command{
	Use:   "send <recipient> <amount>",
	Short: "Send from the account (policy-enforced)",
	Args:  cobra.ExactArgs(2),
	Run:   runAccountSend,
}

func init() {
	accountCmd.PersistentFlags().StringVar(&accountWallet, "wallet", "", "wallet label")
	accountSyncCmd.Flags().StringVar(&accountSyncPDA, "account", "", "sync a specific account by PDA")
	accountEventsCmd.Flags().StringVar(&accountEventType, "type", "", "filter by event type")
	accountSendCmd.Flags().StringVar(&accountSendMemo, "memo", "", "payment memo")

	accountCmd.AddCommand(accountSyncCmd, accountStatusCmd, accountEventsCmd,
		accountDepositCmd, accountWithdrawCmd, accountSendCmd)
	rootCmd.AddCommand(accountCmd)
}

func runAccountSync(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	wallet, err := cfg.Wallet(accountWallet)
	if err != nil {
		fail(err)
	}
	resolver := &accountsync.Resolver{API: newClient(cfg)}

	var res *accountsync.Result
	if accountSyncPDA != "" {
		res, err = resolver.SyncDirect(ctx, wallet, accountSyncPDA, time.Now())
	} else {
		res, err = resolver.Discover(ctx, wallet, time.Now())
	}
	if err != nil {
		fail(err)
	}

	if !res.Found {
		success(map[string]any{
			"action":  "sync",
			"found":   0,
			"message": "No account found for wallet \"" + wallet.Label + "\" (" + wallet.Address + ").",
			"hint":    "Ask your human to set up your account at:\n  " + cfg.SetupURL(wallet.Address),
		})
		return
	}

	cfg.Account = res.Info
	if err := st.SaveConfig(cfg); err != nil {
		fail(err)
	}

	out := map[string]any{
		"action":     "sync",
		"pda":        res.Info.PDA,
		"owner":      res.Info.Owner,
		"balance":    validate.DisplayAmount(res.Balance, res.Info.MintDecimals),
		"perTxLimit": validate.DisplayAmount(res.Info.PerTxLimit, res.Info.MintDecimals),
		"mint":       res.Info.Mint,
	}
	if res.Warning != "" {
		out["warning"] = res.Warning
		all := make([]map[string]any, 0, len(res.Candidates))
		for _, a := range res.Candidates {
			all = append(all, map[string]any{
				"pda":     a.PDA,
				"owner":   a.Owner,
				"balance": validate.DisplayAmount(a.Balance, a.MintDecimals),
			})
		}
		out["allAccounts"] = all
	}
	success(out)
}

func runAccountStatus(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	if _, err := cfg.Wallet(accountWallet); err != nil {
		fail(err)
	}
	info := requireAccount(cfg)
	client := newClient(cfg)

	acct, err := client.GetAccount(ctx, info.PDA)
	if err != nil {
		fail(err)
	}

	// Prefer the live slot; the snapshot limit is only a fallback for a
	// slot the backend no longer reports.
	perTxLimit := info.PerTxLimit
	for _, op := range acct.Operators {
		if op.Index == info.OperatorIndex {
			if n, ok := parseRaw(op.PerTxLimit); ok {
				perTxLimit = n
			}
			break
		}
	}

	success(map[string]any{
		"action":        "status",
		"pda":           acct.PDA,
		"owner":         acct.Owner,
		"balance":       validate.DisplayAmount(acct.Balance, acct.MintDecimals),
		"mint":          acct.Mint,
		"isPaused":      acct.IsPaused,
		"operatorIndex": info.OperatorIndex,
		"perTxLimit":    validate.DisplayAmount(perTxLimit, acct.MintDecimals),
	})
}

func runAccountEvents(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	if _, err := cfg.Wallet(accountWallet); err != nil {
		fail(err)
	}
	info := requireAccount(cfg)

	events, err := newClient(cfg).GetAccountEvents(ctx, info.PDA, accountEventType)
	if err != nil {
		fail(err)
	}

	success(map[string]any{
		"action": "events",
		"pda":    info.PDA,
		"events": events,
	})
}

func runAccountDeposit(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	wallet, err := cfg.Wallet(accountWallet)
	if err != nil {
		fail(err)
	}
	info := requireAccount(cfg)

	amount, err := validate.Amount(args[0])
	if err != nil {
		fail(err)
	}
	amountRaw := validate.RawAmount(amount, info.MintDecimals)

	client := newClient(cfg)
	kp, err := signer.FromBase58(wallet.PrivateKey)
	if err != nil {
		fail(err)
	}

	p := pipeline.Pipeline{Submitter: client, Signer: kp}
	txid, err := p.Run(ctx, func(ctx context.Context) (string, error) {
		return client.BuildDepositTx(ctx, wallet.Address, info.PDA, amountRaw)
	})
	if err != nil {
		fail(err)
	}

	success(map[string]any{
		"action": "deposit",
		"txid":   txid,
		"amount": amount,
	})
}

func runAccountWithdraw(cmd *cobra.Command, args []string) {
	// Withdraw is an account transfer back to the acting wallet.
	runAccountTransfer(args[0], "", "withdraw")
}

func runAccountSend(cmd *cobra.Command, args []string) {
	runAccountTransfer(args[1], args[0], "send")
}

// runAccountTransfer is the shared policy-constrained spend path. An
// empty recipient targets the acting wallet itself. The operator's
// per-transaction limit is enforced on-chain at submission; the client
// surfaces the translated program error unchanged.
func runAccountTransfer(amountArg, recipientArg, action string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	wallet, err := cfg.Wallet(accountWallet)
	if err != nil {
		fail(err)
	}
	info := requireAccount(cfg)

	recipient := wallet.Address
	if recipientArg != "" {
		recipient = st.ResolveRecipient(recipientArg)
		if err := validate.Address(recipient, "recipient"); err != nil {
			fail(err)
		}
	}

	amount, err := validate.Amount(amountArg)
	if err != nil {
		fail(err)
	}
	amountRaw := validate.RawAmount(amount, info.MintDecimals)

	client := newClient(cfg)
	kp, err := signer.FromBase58(wallet.PrivateKey)
	if err != nil {
		fail(err)
	}

	p := pipeline.Pipeline{Submitter: client, Signer: kp}
	txid, err := p.Run(ctx, func(ctx context.Context) (string, error) {
		return client.BuildAccountTransferTx(ctx, wallet.Address, info.PDA, recipient, amountRaw)
	})
	if err != nil {
		fail(err)
	}

	out := map[string]any{
		"action": action,
		"txid":   txid,
		"amount": amount,
	}
	if action == "send" {
		out["recipient"] = recipient
	}
	success(out)
}

// requireAccount fails the command when no account snapshot is synced.
func requireAccount(cfg *store.Config) *domain.AccountInfo {
	if cfg.Account == nil {
		fail(sdkerr.New(sdkerr.CodeNoAccount, "No account synced. Run: silk account sync"))
	}
	return cfg.Account
}

func parseRaw(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
