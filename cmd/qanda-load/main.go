// Command qanda-load loads a JSON corpus of questions into postgres
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"qanda/internal/core/version"
	"qanda/internal/platform/config"
	"qanda/internal/platform/logger"
	"qanda/internal/platform/store"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qanda-load",
		Short:         "Load and migrate the qanda postgres database",
		Version:       version.Info("qanda-load").String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadDotEnv()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(newIngestCmd(), newMigrateCmd())
	return root
}

// openStore opens postgres from SERVICE_PGSQL_* or POSTGRES_*
func openStore(ctx context.Context) (*store.Store, error) {
	pgCfg, err := store.PGFromEnv(config.New())
	if err != nil {
		return nil, err
	}
	return store.Open(ctx, store.Config{AppName: "qanda-load", PG: pgCfg}, store.WithLogger(*logger.Get()))
}

func closeStore(st *store.Store) {
	if err := st.Close(context.Background()); err != nil {
		logger.Get().Error().Err(err).Msg("failed to close store")
	}
}
