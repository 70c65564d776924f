package signer

import "testing"

func TestGenerateAndReload(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if kp.Address() == "" {
		t.Fatal("expected an address")
	}

	reloaded, err := FromBase58(kp.PrivateKeyBase58())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Address() != kp.Address() {
		t.Errorf("address changed across reload: %s != %s", reloaded.Address(), kp.Address())
	}
}

func TestFromBase58_Invalid(t *testing.T) {
	if _, err := FromBase58("not-a-key"); err == nil {
		t.Fatal("expected error for invalid key material")
	}
}

func TestSignTransaction_BadPayload(t *testing.T) {
	kp, err := Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := kp.SignTransaction("%%%not-base64%%%"); err == nil {
		t.Error("expected error for invalid base64")
	}
	if _, err := kp.SignTransaction("bm90LWEtdHJhbnNhY3Rpb24="); err == nil {
		t.Error("expected error for non-transaction bytes")
	}
}
