// Package pipeline runs the three-phase protocol shared by every
// mutating ledger operation: build an unsigned transaction, sign it
// locally, submit the signed bytes for consensus.
package pipeline

import (
	"context"
	"log/slog"
)

// Signer applies a single local signature to an unsigned transaction.
type Signer interface {
	Address() string
	SignTransaction(unsignedTx string) (string, error)
}

// Submitter sends signed transaction bytes to the backend.
type Submitter interface {
	SubmitTx(ctx context.Context, signedTx string) (string, error)
}

// BuildFunc is phase one: request an unsigned transaction from the
// backend. Operation-specific identifiers (like a new transfer handle)
// are the closure's to capture.
type BuildFunc func(ctx context.Context) (string, error)

// Pipeline executes build → sign → submit strictly in order. A failure
// in build or sign aborts before any network mutation. A failure in
// submit means the mutation's fate is unknown to this client: ledger
// consensus may or may not have accepted it, so the caller must treat
// it as "not confirmed", not "rolled back". No retries happen here.
type Pipeline struct {
	Submitter Submitter
	Signer    Signer
}

// Run executes one mutating operation and returns the transaction id.
func (p *Pipeline) Run(ctx context.Context, build BuildFunc) (string, error) {
	unsigned, err := build(ctx)
	if err != nil {
		return "", err
	}
	slog.Debug("transaction built", "signer", p.Signer.Address())

	signed, err := p.Signer.SignTransaction(unsigned)
	if err != nil {
		return "", err
	}
	slog.Debug("transaction signed")

	txid, err := p.Submitter.SubmitTx(ctx, signed)
	if err != nil {
		return "", err
	}
	slog.Debug("transaction submitted", "txid", txid)
	return txid, nil
}
