package api

import (
	"context"
	"net/url"

	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/core/sdkerr"
)

// GetBalance returns SOL and token balances for a wallet address.
func (c *Client) GetBalance(ctx context.Context, address string) (*domain.Balance, error) {
	var out domain.Balance
	if err := c.get(ctx, "/api/wallet/"+escape(address)+"/balance", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTransfer fetches a transfer by PDA. An envelope with no transfer
// record maps to TRANSFER_NOT_FOUND.
func (c *Client) GetTransfer(ctx context.Context, transferPDA string) (*domain.Transfer, error) {
	var out struct {
		Transfer *domain.Transfer `json:"transfer"`
	}
	if err := c.get(ctx, "/api/transfers/"+escape(transferPDA), &out); err != nil {
		return nil, err
	}
	if out.Transfer == nil {
		return nil, sdkerr.New(sdkerr.CodeTransferNotFound, "Transfer not found: %s", transferPDA)
	}
	return out.Transfer, nil
}

// ListTransfers returns all transfers a wallet participates in.
func (c *Client) ListTransfers(ctx context.Context, wallet string) ([]domain.Transfer, error) {
	var out struct {
		Transfers []domain.Transfer `json:"transfers"`
	}
	q := url.Values{"wallet": {wallet}}
	if err := c.get(ctx, "/api/transfers?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out.Transfers, nil
}

// GetAccount fetches the full view of a shared account.
func (c *Client) GetAccount(ctx context.Context, accountPDA string) (*domain.Account, error) {
	var out domain.Account
	if err := c.get(ctx, "/api/account/"+escape(accountPDA), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAccountsByOperator returns every account on which the given wallet
// holds an operator slot. An empty list is not an error.
func (c *Client) ListAccountsByOperator(ctx context.Context, address string) ([]domain.OperatorAccount, error) {
	var out struct {
		Accounts []domain.OperatorAccount `json:"accounts"`
	}
	if err := c.get(ctx, "/api/account/by-operator/"+escape(address), &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// GetAccountEvents returns an account's event log, optionally filtered
// by event type.
func (c *Client) GetAccountEvents(ctx context.Context, accountPDA, eventType string) ([]domain.AccountEvent, error) {
	path := "/api/account/" + escape(accountPDA) + "/events"
	if eventType != "" {
		q := url.Values{"eventType": {eventType}}
		path += "?" + q.Encode()
	}
	var out []domain.AccountEvent
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
