package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/silkyway/silk/internal/infra/api"
	"github.com/silkyway/silk/internal/infra/store"
)

var (
	humanOutput bool
	isDebug     bool
)

var rootCmd = &cobra.Command{
	Use:   "silk",
	Short: "Silkyway agent payments CLI",
	Long:  `silk initiates, claims and cancels escrowed token transfers and performs policy-constrained spends from a shared account on the Silkyway ledger backend.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()

		slogLevel := slog.LevelWarn
		if isDebug {
			slogLevel = slog.LevelDebug
		}
		stylelog.InitDefault(&tint.Options{
			Level:      slogLevel,
			TimeFormat: time.RFC3339,
		})
	},
}

// Execute runs the command tree. Errors are reported by the commands
// themselves through the output helpers.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
}

// openStore opens the local state store, failing the command when the
// home directory cannot be resolved.
func openStore() *store.Store {
	st, err := store.New()
	if err != nil {
		fail(err)
	}
	return st
}

// newClient builds a backend client for the configured cluster.
func newClient(cfg *store.Config) *api.Client {
	return api.New(api.Config{BaseURL: cfg.APIBaseURL()})
}
