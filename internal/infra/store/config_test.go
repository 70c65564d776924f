package store

import (
	"testing"

	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/core/sdkerr"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	st := NewAt(t.TempDir())
	cfg := st.LoadConfig()
	if cfg.DefaultWallet != "main" {
		t.Errorf("expected default wallet main, got %s", cfg.DefaultWallet)
	}
	if cfg.ActiveCluster() != ClusterMainnet {
		t.Errorf("expected mainnet default, got %s", cfg.ActiveCluster())
	}
	if len(cfg.Wallets) != 0 {
		t.Errorf("expected no wallets, got %d", len(cfg.Wallets))
	}
}

func TestConfig_RoundTrip(t *testing.T) {
	st := NewAt(t.TempDir())
	cfg := st.LoadConfig()
	cfg.Wallets = append(cfg.Wallets, domain.Wallet{Label: "main", Address: "addr-1", PrivateKey: "pk-1"})
	cfg.Cluster = ClusterDevnet
	cfg.Account = &domain.AccountInfo{PDA: "acct-1", OperatorIndex: 2, PerTxLimit: 500, SyncedAt: "2026-08-30T00:00:00Z"}
	if err := st.SaveConfig(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := st.LoadConfig()
	if len(loaded.Wallets) != 1 || loaded.Wallets[0].Address != "addr-1" {
		t.Errorf("wallets did not round-trip: %+v", loaded.Wallets)
	}
	if loaded.Cluster != ClusterDevnet {
		t.Errorf("cluster did not round-trip: %s", loaded.Cluster)
	}
	if loaded.Account == nil || loaded.Account.PDA != "acct-1" || loaded.Account.PerTxLimit != 500 {
		t.Errorf("account snapshot did not round-trip: %+v", loaded.Account)
	}
}

func TestConfig_WalletLookup(t *testing.T) {
	cfg := &Config{
		Wallets:       []domain.Wallet{{Label: "main", Address: "a1"}, {Label: "ops", Address: "a2"}},
		DefaultWallet: "main",
	}

	w, err := cfg.Wallet("")
	if err != nil || w.Address != "a1" {
		t.Errorf("default lookup failed: %v %v", w, err)
	}
	w, err = cfg.Wallet("ops")
	if err != nil || w.Address != "a2" {
		t.Errorf("labeled lookup failed: %v %v", w, err)
	}
	_, err = cfg.Wallet("ghost")
	if !sdkerr.Is(err, sdkerr.CodeWalletNotFound) {
		t.Errorf("expected WALLET_NOT_FOUND, got %v", err)
	}
}

func TestConfig_APIBaseURLPrecedence(t *testing.T) {
	cfg := &Config{}
	if got := cfg.APIBaseURL(); got != "https://api.silkyway.ai" {
		t.Errorf("expected mainnet default, got %s", got)
	}

	cfg.Cluster = ClusterDevnet
	if got := cfg.APIBaseURL(); got != "https://devnet-api.silkyway.ai" {
		t.Errorf("expected devnet url, got %s", got)
	}

	t.Setenv("SILK_API_URL", "http://localhost:9999")
	if got := cfg.APIBaseURL(); got != "http://localhost:9999" {
		t.Errorf("expected env override, got %s", got)
	}

	cfg.APIURL = "http://explicit:1"
	if got := cfg.APIBaseURL(); got != "http://explicit:1" {
		t.Errorf("expected explicit config to win, got %s", got)
	}
}

func TestConfig_ClaimURL(t *testing.T) {
	cfg := &Config{}
	if got := cfg.ClaimURL("pda-1"); got != "https://app.silkyway.so/transfers/pda-1" {
		t.Errorf("unexpected mainnet claim url: %s", got)
	}
	cfg.Cluster = ClusterDevnet
	if got := cfg.ClaimURL("pda-1"); got != "https://app.silkyway.so/transfers/pda-1?cluster=devnet" {
		t.Errorf("unexpected devnet claim url: %s", got)
	}
}

func TestConfig_EnsureAgentID(t *testing.T) {
	cfg := &Config{}
	id1, created := cfg.EnsureAgentID()
	if !created || id1 == "" {
		t.Fatalf("expected creation, got %q created=%v", id1, created)
	}
	id2, created := cfg.EnsureAgentID()
	if created || id2 != id1 {
		t.Errorf("expected stable id, got %q created=%v", id2, created)
	}
}
