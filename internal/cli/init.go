package cli

import (
	"github.com/spf13/cobra"

	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/infra/signer"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the silk CLI (create default wallet and agent id)",
	Args:  cobra.NoArgs,
	Run:   runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	st := openStore()
	cfg := st.LoadConfig()

	walletCreated := false
	var mainWallet *domain.Wallet
	for i := range cfg.Wallets {
		if cfg.Wallets[i].Label == "main" {
			mainWallet = &cfg.Wallets[i]
			break
		}
	}
	if mainWallet == nil {
		kp, err := signer.Generate()
		if err != nil {
			fail(err)
		}
		cfg.Wallets = append(cfg.Wallets, domain.Wallet{
			Label:      "main",
			Address:    kp.Address(),
			PrivateKey: kp.PrivateKeyBase58(),
		})
		mainWallet = &cfg.Wallets[len(cfg.Wallets)-1]
		if len(cfg.Wallets) == 1 {
			cfg.DefaultWallet = "main"
		}
		walletCreated = true
	}

	agentID, agentCreated := cfg.EnsureAgentID()

	contactsCreated, err := st.InitContacts()
	if err != nil {
		fail(err)
	}

	if walletCreated || agentCreated {
		if err := st.SaveConfig(cfg); err != nil {
			fail(err)
		}
	}

	message := "Already initialized"
	if walletCreated || agentCreated || contactsCreated {
		message = "Initialization complete"
	}
	success(map[string]any{
		"action":           "init",
		"wallet_created":   walletCreated,
		"wallet_label":     "main",
		"wallet_address":   mainWallet.Address,
		"agent_id_created": agentCreated,
		"agent_id":         agentID,
		"contacts_created": contactsCreated,
		"message":          message,
	})
}
