// Package store owns the locally persisted state: the config document
// (wallets, cluster, synced account snapshot) and the contact book. Each
// document is a JSON file read once at process start and rewritten
// wholesale on mutation. Two concurrent invocations are not coordinated
// here; the backend is the arbiter of conflicting submissions.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/core/sdkerr"
)

const (
	configFile   = "config.json"
	contactsFile = "contacts.json"

	appBaseURL = "https://app.silkyway.so"

	envAPIURL = "SILK_API_URL"
)

// Cluster selects which backend deployment the client talks to.
type Cluster string

const (
	ClusterMainnet Cluster = "mainnet-beta"
	ClusterDevnet  Cluster = "devnet"
)

var clusterAPIURLs = map[Cluster]string{
	ClusterMainnet: "https://api.silkyway.ai",
	ClusterDevnet:  "https://devnet-api.silkyway.ai",
}

// Config is the persisted client configuration document.
type Config struct {
	Wallets       []domain.Wallet     `json:"wallets"`
	DefaultWallet string              `json:"defaultWallet"`
	Preferences   map[string]any      `json:"preferences"`
	APIURL        string              `json:"apiUrl,omitempty"`
	Cluster       Cluster             `json:"cluster,omitempty"`
	Account       *domain.AccountInfo `json:"account,omitempty"`
	AgentID       string              `json:"agentId,omitempty"`
}

func defaultConfig() *Config {
	return &Config{
		Wallets:       []domain.Wallet{},
		DefaultWallet: "main",
		Preferences:   map[string]any{},
		Cluster:       ClusterMainnet,
	}
}

// Store reads and writes the local state directory.
type Store struct {
	dir string
}

// New opens the default store under ~/.config/silk.
func New() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, sdkerr.New(sdkerr.CodeAPIError, "resolve home directory: %v", err)
	}
	return &Store{dir: filepath.Join(home, ".config", "silk")}, nil
}

// NewAt opens a store rooted at an explicit directory.
func NewAt(dir string) *Store {
	return &Store{dir: dir}
}

// LoadConfig reads the config document. A missing or unreadable file
// yields the default config, matching first-run behavior.
func (s *Store) LoadConfig() *Config {
	raw, err := os.ReadFile(filepath.Join(s.dir, configFile))
	if err != nil {
		return defaultConfig()
	}
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return defaultConfig()
	}
	if cfg.DefaultWallet == "" {
		cfg.DefaultWallet = "main"
	}
	return &cfg
}

// SaveConfig rewrites the config document wholesale.
func (s *Store) SaveConfig(cfg *Config) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return sdkerr.New(sdkerr.CodeAPIError, "create config directory: %v", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return sdkerr.New(sdkerr.CodeAPIError, "encode config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, configFile), data, 0o600); err != nil {
		return sdkerr.New(sdkerr.CodeAPIError, "write config: %v", err)
	}
	return nil
}

// Wallet resolves a wallet by label, falling back to the default wallet
// when label is empty.
func (c *Config) Wallet(label string) (*domain.Wallet, error) {
	target := label
	if target == "" {
		target = c.DefaultWallet
	}
	for i := range c.Wallets {
		if c.Wallets[i].Label == target {
			return &c.Wallets[i], nil
		}
	}
	return nil, sdkerr.New(sdkerr.CodeWalletNotFound, "Wallet %q not found. Run: silk wallet create", target)
}

// ActiveCluster returns the configured cluster, defaulting to mainnet.
func (c *Config) ActiveCluster() Cluster {
	if c.Cluster == "" {
		return ClusterMainnet
	}
	return c.Cluster
}

// APIBaseURL resolves the backend URL: explicit config value, then the
// SILK_API_URL environment override, then the cluster default.
func (c *Config) APIBaseURL() string {
	if c.APIURL != "" {
		return c.APIURL
	}
	if v := os.Getenv(envAPIURL); v != "" {
		return v
	}
	return clusterAPIURLs[c.ActiveCluster()]
}

// ClaimURL is the shareable web URL for a transfer.
func (c *Config) ClaimURL(transferPDA string) string {
	base := appBaseURL + "/transfers/" + transferPDA
	if c.ActiveCluster() == ClusterDevnet {
		return base + "?cluster=devnet"
	}
	return base
}

// SetupURL is the web URL where a human sets up an account for an
// operator wallet.
func (c *Config) SetupURL(operatorAddress string) string {
	base := appBaseURL + "/setup?operator=" + operatorAddress
	if c.ActiveCluster() == ClusterDevnet {
		return base + "&cluster=devnet"
	}
	return base
}

// EnsureAgentID lazily assigns the agent id, reporting whether it was
// created on this call (the caller decides whether to persist).
func (c *Config) EnsureAgentID() (string, bool) {
	if c.AgentID != "" {
		return c.AgentID, false
	}
	c.AgentID = uuid.NewString()
	return c.AgentID, true
}
