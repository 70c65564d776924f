package api

import (
	"context"
)

// TransferBuild is the build-phase result for a pay operation: the
// unsigned transaction plus the transfer handle the backend assigned.
type TransferBuild struct {
	Transaction string `json:"transaction"`
	TransferPDA string `json:"transferPda"`
}

type txOnly struct {
	Transaction string `json:"transaction"`
}

// BuildTransferTx requests an unsigned escrow-transfer transaction.
// Amount is in display units; the backend owns the raw conversion for
// the chosen token.
func (c *Client) BuildTransferTx(ctx context.Context, sender, recipient string, amount float64, token, memo string) (*TransferBuild, error) {
	req := map[string]any{
		"sender":    sender,
		"recipient": recipient,
		"amount":    amount,
		"token":     token,
		"memo":      memo,
	}
	var out TransferBuild
	if err := c.post(ctx, "/api/tx/create-transfer", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BuildClaimTx requests an unsigned claim transaction for a transfer.
func (c *Client) BuildClaimTx(ctx context.Context, claimer, transferPDA string) (string, error) {
	req := map[string]any{
		"claimer":     claimer,
		"transferPda": transferPDA,
	}
	var out txOnly
	if err := c.post(ctx, "/api/tx/claim-transfer", req, &out); err != nil {
		return "", err
	}
	return out.Transaction, nil
}

// BuildCancelTx requests an unsigned cancel transaction for a transfer.
func (c *Client) BuildCancelTx(ctx context.Context, canceller, transferPDA string) (string, error) {
	req := map[string]any{
		"canceller":   canceller,
		"transferPda": transferPDA,
	}
	var out txOnly
	if err := c.post(ctx, "/api/tx/cancel-transfer", req, &out); err != nil {
		return "", err
	}
	return out.Transaction, nil
}

// BuildDepositTx requests an unsigned deposit into a shared account.
// Amount is in raw units of the account mint.
func (c *Client) BuildDepositTx(ctx context.Context, depositor, accountPDA string, amountRaw uint64) (string, error) {
	req := map[string]any{
		"depositor":  depositor,
		"accountPda": accountPDA,
		"amount":     amountRaw,
	}
	var out txOnly
	if err := c.post(ctx, "/api/account/deposit", req, &out); err != nil {
		return "", err
	}
	return out.Transaction, nil
}

// BuildAccountTransferTx requests an unsigned policy-gated spend from a
// shared account. Amount is in raw units; the operator limit is enforced
// by the on-chain program at submission, not here.
func (c *Client) BuildAccountTransferTx(ctx context.Context, signer, accountPDA, recipient string, amountRaw uint64) (string, error) {
	req := map[string]any{
		"signer":     signer,
		"accountPda": accountPDA,
		"recipient":  recipient,
		"amount":     amountRaw,
	}
	var out txOnly
	if err := c.post(ctx, "/api/account/transfer", req, &out); err != nil {
		return "", err
	}
	return out.Transaction, nil
}

// SubmitTx submits a signed transaction for consensus and returns the
// transaction id. A failure here means the mutation's fate is unknown:
// the caller must treat it as "not confirmed", never "rolled back".
func (c *Client) SubmitTx(ctx context.Context, signedTx string) (string, error) {
	req := map[string]any{
		"signedTx": signedTx,
	}
	var out struct {
		Txid string `json:"txid"`
	}
	if err := c.post(ctx, "/api/tx/submit", req, &out); err != nil {
		return "", err
	}
	return out.Txid, nil
}

// Chat sends a message to the support agent on behalf of an agent id.
func (c *Client) Chat(ctx context.Context, agentID, message string) (string, error) {
	req := map[string]any{
		"agentId": agentID,
		"message": message,
	}
	var out struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/chat", req, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Fund requests devnet faucet funding for a wallet.
func (c *Client) Fund(ctx context.Context, address string, sol, usdc bool) (map[string]any, error) {
	req := map[string]any{
		"address": address,
		"sol":     sol,
		"usdc":    usdc,
	}
	var out map[string]any
	if err := c.post(ctx, "/api/faucet", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}
