package cli

import (
	"github.com/spf13/cobra"

	"github.com/silkyway/silk/internal/core/sdkerr"
	"github.com/silkyway/silk/internal/infra/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Client configuration",
}

var configSetClusterCmd = &cobra.Command{
	Use:   "set-cluster <cluster>",
	Short: "Set the target cluster (mainnet-beta or devnet)",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigSetCluster,
}

var configGetClusterCmd = &cobra.Command{
	Use:   "get-cluster",
	Short: "Show the current cluster",
	Args:  cobra.NoArgs,
	Run:   runConfigGetCluster,
}

var configResetClusterCmd = &cobra.Command{
	Use:   "reset-cluster",
	Short: "Reset cluster to the default (mainnet-beta)",
	Args:  cobra.NoArgs,
	Run:   runConfigResetCluster,
}

func init() {
	configCmd.AddCommand(configSetClusterCmd, configGetClusterCmd, configResetClusterCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSetCluster(cmd *cobra.Command, args []string) {
	cluster := store.Cluster(args[0])
	if cluster != store.ClusterMainnet && cluster != store.ClusterDevnet {
		fail(sdkerr.New(sdkerr.CodeUnsupportedCluster,
			"Unknown cluster %q, expected mainnet-beta or devnet", args[0]))
	}

	st := openStore()
	cfg := st.LoadConfig()
	cfg.Cluster = cluster
	if err := st.SaveConfig(cfg); err != nil {
		fail(err)
	}
	success(map[string]any{
		"action":  "set_cluster",
		"cluster": string(cluster),
	})
}

func runConfigGetCluster(cmd *cobra.Command, args []string) {
	st := openStore()
	cfg := st.LoadConfig()
	success(map[string]any{
		"action":  "get_cluster",
		"cluster": string(cfg.ActiveCluster()),
		"apiUrl":  cfg.APIBaseURL(),
	})
}

func runConfigResetCluster(cmd *cobra.Command, args []string) {
	st := openStore()
	cfg := st.LoadConfig()
	cfg.Cluster = store.ClusterMainnet
	if err := st.SaveConfig(cfg); err != nil {
		fail(err)
	}
	success(map[string]any{
		"action":  "reset_cluster",
		"cluster": string(store.ClusterMainnet),
	})
}
