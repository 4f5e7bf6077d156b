package cmd

import (
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"aledit.dev/pkg/aledit/internal/controller"
	m "aledit.dev/pkg/aledit/internal/model"
	"aledit.dev/pkg/aledit/pkg/cigar"
)

var batchParallelFlag int

const batchLongDescription = `Align every query record of a FASTA file against every target record of
another. Results are summarized in a table, one row per pair, reporting the
first start/end location and edit path of each alignment.`

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <queries.fasta> <targets.fasta>",
		Short: "Align FASTA query records against FASTA target records",
		Long:  batchLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			queries, err := sequenceReader.ReadRecords(args[0])
			if err != nil {
				return err
			}
			targets, err := sequenceReader.ReadRecords(args[1])
			if err != nil {
				return err
			}

			cfg, err := alignConfigFromFlags()
			if err != nil {
				return err
			}

			format, err := cigar.ParseFormat(viper.GetString(formatConfigKey))
			if err != nil {
				return err
			}

			workers := viper.GetInt(batchParallelConfigKey)
			if workers <= 0 {
				workers = runtime.NumCPU()
			}

			slog.Debug("batch aligning",
				"queries", len(queries),
				"targets", len(targets),
				"workers", workers,
			)

			alignments, err := alignAll(cmd, queries, targets, cfg, workers)
			if err != nil {
				return err
			}

			presenter := controller.NewPresenter(cmd, controller.Options{Format: format})

			return presenter.ShowBatch(cmd.Context(), alignments)
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func configureBatchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&batchParallelFlag, batchParallelFlagName, "p", viper.GetInt(batchParallelConfigKey), "number of parallel alignment workers (0 = one per CPU)")
	bindFlagToConfig(cmd.Flags().Lookup(batchParallelFlagName), batchParallelConfigKey)
}

func alignAll(cmd *cobra.Command, queries, targets []m.SequenceRecord, cfg m.AlignConfig, workers int) ([]m.Alignment, error) {
	alignments := make([]m.Alignment, len(queries)*len(targets))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	for qi, query := range queries {
		for ti, target := range targets {
			idx := qi*len(targets) + ti

			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				res, err := aligner.Align(ctx, query.Seq, target.Seq, cfg)
				if err != nil {
					return err
				}

				alignments[idx] = m.Alignment{
					QueryID:  query.ID,
					TargetID: target.ID,
					Query:    query.Seq,
					Target:   target.Seq,
					Result:   res,
				}

				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return alignments, nil
}
