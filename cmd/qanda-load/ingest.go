package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"qanda/internal/modkit"
	"qanda/internal/platform/config"
	"qanda/internal/platform/logger"
	"qanda/internal/platform/metrics"
	"qanda/internal/platform/store/migrate"
	"qanda/internal/services/ingest/domain"
	ingestmod "qanda/internal/services/ingest/module"
	"qanda/internal/services/ingest/reader"

	"github.com/spf13/cobra"
)

var errNoDataFile = errors.New("no data file: pass --file or set DB_DATA_FILE")

func newIngestCmd() *cobra.Command {
	var (
		file        string
		withMigrate bool
	)
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a JSON array of questions with their comments, answers and authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := config.New()
			opts := ingestmod.FromConfig(root)
			if file != "" {
				opts.DataFile = file
			}
			if opts.DataFile == "" {
				return errNoDataFile
			}

			// the whole file is decoded and validated before any connection is made
			doc, err := reader.Load(opts.DataFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(st)

			log := logger.Named("ingest")
			if withMigrate {
				n, err := migrate.Apply(ctx, st.PG)
				if err != nil {
					return err
				}
				log.Info().Int("applied", n).Msg("schema up to date")
			}

			var reg *metrics.Registry
			if opts.Pushgateway != "" {
				reg = metrics.New()
			}
			m := ingestmod.New(modkit.Deps{Cfg: root, PG: st.PG, Metrics: reg}, opts)
			stats, err := m.Ports().(ingestmod.Ports).Runner.Ingest(ctx, doc)
			if err != nil {
				return err
			}
			report(ctx, cmd.OutOrStdout(), stats, reg, opts.Pushgateway)
			fmt.Fprintln(cmd.OutOrStdout(), "Done!")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the JSON data file (default $DB_DATA_FILE)")
	cmd.Flags().BoolVar(&withMigrate, "migrate", false, "apply the schema before ingesting")
	return cmd
}

// report prints the run summary and pushes the loader metrics when a gateway is set.
// A failed push is logged; the data is already committed
func report(ctx context.Context, out io.Writer, st domain.Stats, reg *metrics.Registry, gateway string) {
	fmt.Fprintf(out, "questions=%d question_comments=%d answers=%d answer_comments=%d users_inserted=%d users_skipped=%d elapsed=%s\n",
		st.Questions, st.QuestionComments, st.Answers, st.AnswerComments, st.UsersInserted, st.UsersSkipped,
		st.Elapsed.Round(time.Millisecond))
	if reg == nil || gateway == "" {
		return
	}
	if err := reg.Push(ctx, gateway, "qanda-load"); err != nil {
		logger.Named("ingest").Warn().Err(err).Str("gateway", gateway).Msg("metrics push failed")
	}
}
