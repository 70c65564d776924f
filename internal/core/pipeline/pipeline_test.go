package pipeline

import (
	"context"
	"testing"

	"github.com/silkyway/silk/internal/core/sdkerr"
)

type fakeSigner struct {
	signErr error
	signed  []string
}

func (f *fakeSigner) Address() string { return "fake-address" }

func (f *fakeSigner) SignTransaction(unsignedTx string) (string, error) {
	if f.signErr != nil {
		return "", f.signErr
	}
	f.signed = append(f.signed, unsignedTx)
	return "signed:" + unsignedTx, nil
}

type fakeSubmitter struct {
	submitErr error
	submitted []string
}

func (f *fakeSubmitter) SubmitTx(ctx context.Context, signedTx string) (string, error) {
	if f.submitErr != nil {
		return "", f.submitErr
	}
	f.submitted = append(f.submitted, signedTx)
	return "txid-1", nil
}

func TestRun_PhasesInOrder(t *testing.T) {
	signer := &fakeSigner{}
	submitter := &fakeSubmitter{}
	p := &Pipeline{Submitter: submitter, Signer: signer}

	txid, err := p.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "unsigned-tx", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txid != "txid-1" {
		t.Errorf("expected txid-1, got %s", txid)
	}
	if len(signer.signed) != 1 || signer.signed[0] != "unsigned-tx" {
		t.Errorf("sign phase saw wrong payload: %v", signer.signed)
	}
	if len(submitter.submitted) != 1 || submitter.submitted[0] != "signed:unsigned-tx" {
		t.Errorf("submit phase saw wrong payload: %v", submitter.submitted)
	}
}

// A build failure aborts before any network mutation.
func TestRun_BuildFailureAborts(t *testing.T) {
	signer := &fakeSigner{}
	submitter := &fakeSubmitter{}
	p := &Pipeline{Submitter: submitter, Signer: signer}

	buildErr := sdkerr.New(sdkerr.CodeInvalidAmount, "bad build")
	_, err := p.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "", buildErr
	})
	if !sdkerr.Is(err, sdkerr.CodeInvalidAmount) {
		t.Fatalf("expected build error through, got %v", err)
	}
	if len(signer.signed) != 0 {
		t.Error("sign phase must not run after a build failure")
	}
	if len(submitter.submitted) != 0 {
		t.Error("submit phase must not run after a build failure")
	}
}

// A sign failure aborts before submission.
func TestRun_SignFailureAborts(t *testing.T) {
	signer := &fakeSigner{signErr: sdkerr.New(sdkerr.CodeAPIError, "bad key")}
	submitter := &fakeSubmitter{}
	p := &Pipeline{Submitter: submitter, Signer: signer}

	_, err := p.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "unsigned-tx", nil
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(submitter.submitted) != 0 {
		t.Error("submit phase must not run after a sign failure")
	}
}

// A submit failure propagates untouched; the caller treats it as
// "not confirmed", never as a rollback.
func TestRun_SubmitFailurePropagates(t *testing.T) {
	signer := &fakeSigner{}
	submitter := &fakeSubmitter{submitErr: sdkerr.New(sdkerr.CodeLimitExceeded, "limit")}
	p := &Pipeline{Submitter: submitter, Signer: signer}

	_, err := p.Run(context.Background(), func(ctx context.Context) (string, error) {
		return "unsigned-tx", nil
	})
	if !sdkerr.Is(err, sdkerr.CodeLimitExceeded) {
		t.Fatalf("expected OPERATOR_LIMIT_EXCEEDED through unchanged, got %v", err)
	}
}
