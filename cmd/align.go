package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"aledit.dev/pkg/aledit/internal/controller"
	"aledit.dev/pkg/aledit/pkg/cigar"
)

var queryFileFlag string
var targetFileFlag string

const alignLongDescription = `Align a query sequence against a target sequence.

Sequences are given as literal arguments, or loaded from raw or FASTA files
with --query-file and --target-file. File flags take precedence over
arguments.`

// alignCmd represents the align command.
var alignCmd = newAlignCmd()

func newAlignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align [query] [target]",
		Short: "Align a query against a target",
		Long:  alignLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, target, err := resolveSequences(args)
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

			slog.Debug("aligning",
				"mode", cfg.Mode.String(),
				"task", cfg.Task.String(),
				"bound", cfg.K,
				"query_len", len(query),
				"target_len", len(target),
			)

			res, err := aligner.Align(cmd.Context(), query, target, cfg)
			if err != nil {
				return err
			}

			presenter := controller.NewPresenter(cmd, controller.Options{
				Format: format,
				Pretty: prettyFlag,
			})

			return presenter.ShowResult(cmd.Context(), query, target, res)
		},
	}

	configureAlignFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(alignCmd)
}

func configureAlignFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&queryFileFlag, "query-file", "q", "", "read the query from a raw or FASTA file")
	cmd.Flags().StringVar(&targetFileFlag, "target-file", "", "read the target from a raw or FASTA file")
}

func resolveSequences(args []string) ([]byte, []byte, error) {
	var query, target []byte

	switch {
	case queryFileFlag != "":
		var err error
		if query, err = sequenceReader.ReadSequence(queryFileFlag); err != nil {
			return nil, nil, err
		}
	case len(args) > 0:
		query = []byte(args[0])
	default:
		return nil, nil, fmt.Errorf("no query given: pass it as an argument or with --query-file")
	}

	switch {
	case targetFileFlag != "":
		var err error
		if target, err = sequenceReader.ReadSequence(targetFileFlag); err != nil {
			return nil, nil, err
		}
	case queryFileFlag == "" && len(args) > 1:
		target = []byte(args[1])
	case queryFileFlag != "" && len(args) > 0:
		target = []byte(args[0])
	default:
		return nil, nil, fmt.Errorf("no target given: pass it as an argument or with --target-file")
	}

	return query, target, nil
}
