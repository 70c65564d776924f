package guard

import (
	"context"
	"testing"
	"time"

	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/core/sdkerr"
)

const (
	senderAddr    = "So11111111111111111111111111111111111111112"
	recipientAddr = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
)

func activeTransfer() *domain.Transfer {
	return &domain.Transfer{
		TransferPDA: "transfer-pda-1",
		Sender:      senderAddr,
		Recipient:   recipientAddr,
		Amount:      "10",
		Status:      domain.TransferStatusActive,
	}
}

func wantCode(t *testing.T, err error, code sdkerr.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", code)
	}
	e, ok := sdkerr.As(err)
	if !ok {
		t.Fatalf("expected *sdkerr.Error, got %T: %v", err, err)
	}
	if e.Code != code {
		t.Fatalf("expected %s, got %s (%s)", code, e.Code, e.Message)
	}
}

func TestClaim_Success(t *testing.T) {
	if err := Claim(activeTransfer(), recipientAddr, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClaim_NotActive(t *testing.T) {
	tr := activeTransfer()
	tr.Status = domain.TransferStatusClaimed
	wantCode(t, Claim(tr, recipientAddr, time.Now()), sdkerr.CodeTransferNotActive)

	tr.Status = domain.TransferStatusCancelled
	wantCode(t, Claim(tr, recipientAddr, time.Now()), sdkerr.CodeTransferNotActive)
}

func TestClaim_NotRecipient(t *testing.T) {
	wantCode(t, Claim(activeTransfer(), senderAddr, time.Now()), sdkerr.CodeNotRecipient)
}

func TestClaim_WindowNotOpen(t *testing.T) {
	now := time.Now().UTC()
	tr := activeTransfer()
	tr.ClaimableAfter = now.Add(time.Hour).Format(time.RFC3339)
	wantCode(t, Claim(tr, recipientAddr, now), sdkerr.CodeClaimWindowNotOpen)
}

func TestClaim_WindowClosed(t *testing.T) {
	now := time.Now().UTC()
	tr := activeTransfer()
	tr.ClaimableUntil = now.Add(-time.Hour).Format(time.RFC3339)
	wantCode(t, Claim(tr, recipientAddr, now), sdkerr.CodeClaimWindowClosed)
}

func TestClaim_WithinWindow(t *testing.T) {
	now := time.Now().UTC()
	tr := activeTransfer()
	tr.ClaimableAfter = now.Add(-time.Hour).Format(time.RFC3339)
	tr.ClaimableUntil = now.Add(time.Hour).Format(time.RFC3339)
	if err := Claim(tr, recipientAddr, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClaim_AbsentBoundsUnconstrained(t *testing.T) {
	tr := activeTransfer()
	if err := Claim(tr, recipientAddr, time.Now().Add(10*365*24*time.Hour)); err != nil {
		t.Fatalf("unexpected error with no bounds: %v", err)
	}
}

// Check order is fixed: status before identity before window. A
// terminal transfer with the wrong caller and a closed window must
// still report TRANSFER_NOT_ACTIVE.
func TestClaim_CheckOrder(t *testing.T) {
	now := time.Now().UTC()
	tr := activeTransfer()
	tr.Status = domain.TransferStatusCancelled
	tr.ClaimableUntil = now.Add(-time.Hour).Format(time.RFC3339)
	wantCode(t, Claim(tr, senderAddr, now), sdkerr.CodeTransferNotActive)

	tr.Status = domain.TransferStatusActive
	wantCode(t, Claim(tr, senderAddr, now), sdkerr.CodeNotRecipient)

	tr.ClaimableAfter = now.Add(time.Hour).Format(time.RFC3339)
	wantCode(t, Claim(tr, recipientAddr, now), sdkerr.CodeClaimWindowNotOpen)
}

func TestCancel_Success(t *testing.T) {
	if err := Cancel(activeTransfer(), senderAddr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCancel_NotActive(t *testing.T) {
	tr := activeTransfer()
	tr.Status = domain.TransferStatusClaimed
	wantCode(t, Cancel(tr, senderAddr), sdkerr.CodeTransferNotActive)
}

func TestCancel_NotSender(t *testing.T) {
	wantCode(t, Cancel(activeTransfer(), recipientAddr), sdkerr.CodeNotSender)
}

func balanceWith(usdc string) BalanceFunc {
	return func(ctx context.Context) (*domain.Balance, error) {
		return &domain.Balance{
			Sol: 1,
			Tokens: []domain.TokenBalance{
				{Mint: "usdc-mint", Symbol: "USDC", Balance: usdc},
			},
		}, nil
	}
}

func TestPay_Success(t *testing.T) {
	amount, err := Pay(context.Background(), recipientAddr, "10", balanceWith("50"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if amount != 10 {
		t.Errorf("expected amount 10, got %g", amount)
	}
}

func TestPay_InvalidRecipient(t *testing.T) {
	_, err := Pay(context.Background(), "not-an-address", "10", balanceWith("50"))
	wantCode(t, err, sdkerr.CodeInvalidAddress)
}

func TestPay_InvalidAmount(t *testing.T) {
	for _, amount := range []string{"abc", "-5", "0", ""} {
		_, err := Pay(context.Background(), recipientAddr, amount, balanceWith("50"))
		wantCode(t, err, sdkerr.CodeInvalidAmount)
	}
}

func TestPay_InsufficientBalance(t *testing.T) {
	_, err := Pay(context.Background(), recipientAddr, "10", balanceWith("5"))
	wantCode(t, err, sdkerr.CodeInsufficientBalance)
	e, _ := sdkerr.As(err)
	if e.Message != "Insufficient USDC balance: 5 < 10" {
		t.Errorf("unexpected message: %q", e.Message)
	}
}

// The balance check is advisory: a failed lookup skips the check
// instead of blocking the payment.
func TestPay_BalanceLookupFailureSkipsCheck(t *testing.T) {
	lookup := func(ctx context.Context) (*domain.Balance, error) {
		return nil, sdkerr.Network()
	}
	amount, err := Pay(context.Background(), recipientAddr, "10", lookup)
	if err != nil {
		t.Fatalf("expected lookup failure to be swallowed, got %v", err)
	}
	if amount != 10 {
		t.Errorf("expected amount 10, got %g", amount)
	}
}

func TestPay_NoUSDCTokenSkipsCheck(t *testing.T) {
	lookup := func(ctx context.Context) (*domain.Balance, error) {
		return &domain.Balance{Tokens: []domain.TokenBalance{{Symbol: "BONK", Balance: "0"}}}, nil
	}
	if _, err := Pay(context.Background(), recipientAddr, "10", lookup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
