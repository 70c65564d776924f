// Package guard preflight-validates transfer-state-dependent operations
// before the transaction pipeline commits to them. A guard failure
// short-circuits the whole operation with no backend mutation attempted.
// These checks are advisory: the backend re-validates authoritatively at
// submission time.
package guard

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/core/sdkerr"
	"github.com/silkyway/silk/internal/core/validate"
)

// Claim checks claim eligibility. Check order is fixed: status,
// identity, window-open, window-closed.
func Claim(tr *domain.Transfer, claimerAddress string, now time.Time) error {
	if tr.Status != domain.TransferStatusActive {
		return sdkerr.New(sdkerr.CodeTransferNotActive, "Transfer is %s, not ACTIVE", tr.Status)
	}
	if tr.Recipient != claimerAddress {
		return sdkerr.New(sdkerr.CodeNotRecipient,
			"Wallet %s is not the recipient. Recipient is %s", claimerAddress, tr.Recipient)
	}
	if after, ok := parseBound(tr.ClaimableAfter); ok && now.Before(after) {
		return sdkerr.New(sdkerr.CodeClaimWindowNotOpen, "Claim window opens at %s", tr.ClaimableAfter)
	}
	if until, ok := parseBound(tr.ClaimableUntil); ok && now.After(until) {
		return sdkerr.New(sdkerr.CodeClaimWindowClosed, "Claim window closed at %s", tr.ClaimableUntil)
	}
	return nil
}

// Cancel checks cancel eligibility: the transfer must still be active
// and the caller must be its sender.
func Cancel(tr *domain.Transfer, cancellerAddress string) error {
	if tr.Status != domain.TransferStatusActive {
		return sdkerr.New(sdkerr.CodeTransferNotActive, "Transfer is %s, not ACTIVE", tr.Status)
	}
	if tr.Sender != cancellerAddress {
		return sdkerr.New(sdkerr.CodeNotSender,
			"Wallet %s is not the sender. Sender is %s", cancellerAddress, tr.Sender)
	}
	return nil
}

// BalanceFunc fetches the sender's balance for the affordability check.
type BalanceFunc func(ctx context.Context) (*domain.Balance, error)

// Pay validates a pay operation's inputs and, best-effort, its
// affordability. The balance check is the one deliberate exception to
// fail-fast guards: if the lookup itself fails, the check is skipped and
// the backend enforces the authoritative balance at submission. Only a
// successful lookup with an insufficient value blocks the payment.
func Pay(ctx context.Context, recipient, amount string, lookup BalanceFunc) (float64, error) {
	if err := validate.Address(recipient, "recipient"); err != nil {
		return 0, err
	}
	amountNum, err := validate.Amount(amount)
	if err != nil {
		return 0, err
	}

	bal, err := lookup(ctx)
	if err != nil {
		slog.Debug("balance check skipped", "error", err)
		return amountNum, nil
	}
	for _, t := range bal.Tokens {
		if t.Symbol != "USDC" {
			continue
		}
		have, parseErr := strconv.ParseFloat(t.Balance, 64)
		if parseErr != nil {
			break
		}
		if have < amountNum {
			return 0, sdkerr.New(sdkerr.CodeInsufficientBalance,
				"Insufficient USDC balance: %s < %g", t.Balance, amountNum)
		}
		break
	}
	return amountNum, nil
}

// parseBound parses an optional claim-window bound. Absent or unparsable
// bounds mean the window is unconstrained on that side.
func parseBound(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
