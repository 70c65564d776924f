// Package accountsync discovers which shared account a wallet operates
// and derives the operator's spending policy from its slot. The
// resulting snapshot is a cache stamped with syncedAt; nothing here
// refreshes it implicitly.
package accountsync

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/core/sdkerr"
	"github.com/silkyway/silk/internal/core/validate"
)

// API is the backend surface the resolver needs.
type API interface {
	GetAccount(ctx context.Context, accountPDA string) (*domain.Account, error)
	ListAccountsByOperator(ctx context.Context, address string) ([]domain.OperatorAccount, error)
}

// Result is the outcome of a sync. Found is false only in discovery mode
// when the wallet operates no account, which is a zero-result, not an
// error.
type Result struct {
	Found      bool
	Info       *domain.AccountInfo
	Balance    uint64
	IsPaused   bool
	Warning    string
	Candidates []domain.OperatorAccount
}

// Resolver resolves accounts through the backend.
type Resolver struct {
	API API
}

// SyncDirect syncs an explicitly named account. The acting wallet must
// appear among the account's operator slots.
func (r *Resolver) SyncDirect(ctx context.Context, wallet *domain.Wallet, accountPDA string, now time.Time) (*Result, error) {
	if err := validate.Address(accountPDA, "account"); err != nil {
		return nil, err
	}
	acct, err := r.API.GetAccount(ctx, accountPDA)
	if err != nil {
		return nil, err
	}

	var slot *domain.Operator
	for i := range acct.Operators {
		if acct.Operators[i].Pubkey == wallet.Address {
			slot = &acct.Operators[i]
			break
		}
	}
	if slot == nil {
		return nil, sdkerr.New(sdkerr.CodeNotOperator,
			"Wallet %q (%s) is not an operator on account %s", wallet.Label, wallet.Address, accountPDA)
	}

	return &Result{
		Found:    true,
		Balance:  acct.Balance,
		IsPaused: acct.IsPaused,
		Info: &domain.AccountInfo{
			PDA:           acct.PDA,
			Owner:         acct.Owner,
			Mint:          acct.Mint,
			MintDecimals:  acct.MintDecimals,
			OperatorIndex: slot.Index,
			PerTxLimit:    parseLimit(slot.PerTxLimit),
			SyncedAt:      now.UTC().Format(time.RFC3339),
		},
	}, nil
}

// Discover finds every account the wallet operates and selects one. With
// multiple candidates the pick must be stable across invocations, so
// selection sorts on the account handle and takes the first; the warning
// enumerates everything not chosen.
func (r *Resolver) Discover(ctx context.Context, wallet *domain.Wallet, now time.Time) (*Result, error) {
	accounts, err := r.API.ListAccountsByOperator(ctx, wallet.Address)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return &Result{Found: false}, nil
	}

	selected := selectAccount(accounts)
	if selected.OperatorSlot == nil {
		return nil, sdkerr.New(sdkerr.CodeNotOperator,
			"Backend returned account %s without an operator slot for wallet %s", selected.PDA, wallet.Address)
	}

	res := &Result{
		Found:      true,
		Balance:    selected.Balance,
		IsPaused:   selected.IsPaused,
		Candidates: accounts,
		Info: &domain.AccountInfo{
			PDA:           selected.PDA,
			Owner:         selected.Owner,
			Mint:          selected.Mint,
			MintDecimals:  selected.MintDecimals,
			OperatorIndex: selected.OperatorSlot.Index,
			PerTxLimit:    parseLimit(selected.OperatorSlot.PerTxLimit),
			SyncedAt:      now.UTC().Format(time.RFC3339),
		},
	}
	if len(accounts) > 1 {
		res.Warning = fmt.Sprintf(
			"This wallet is operator on %d accounts. Using %s. One account is supported at a time; to target a specific account: silk account sync --account <pda>",
			len(accounts), selected.PDA)
	}
	return res, nil
}

// selectAccount is the deterministic tie-break: lexicographic ascending
// on PDA. The ordering itself is replaceable; the stability guarantee is
// not.
func selectAccount(accounts []domain.OperatorAccount) domain.OperatorAccount {
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].PDA < accounts[j].PDA
	})
	return accounts[0]
}

func parseLimit(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
