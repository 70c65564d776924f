package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Chat with the Silkyway support agent",
	Args:  cobra.ExactArgs(1),
	Run:   runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	st := openStore()
	cfg := st.LoadConfig()

	agentID, created := cfg.EnsureAgentID()
	if created {
		if err := st.SaveConfig(cfg); err != nil {
			fail(err)
		}
	}

	reply, err := newClient(cfg).Chat(ctx, agentID, args[0])
	if err != nil {
		fail(err)
	}

	success(map[string]any{
		"message": reply,
	})
}
