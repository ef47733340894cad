package main

import (
	"fmt"

	"qanda/internal/platform/logger"
	"qanda/internal/platform/store/migrate"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema; already applied steps are skipped",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(st)

			n, err := migrate.Apply(ctx, st.PG)
			if err != nil {
				return err
			}
			logger.Named("migrate").Info().Int("applied", n).Msg("schema up to date")
			fmt.Fprintln(cmd.OutOrStdout(), "Done!")
			return nil
		},
	}
}
