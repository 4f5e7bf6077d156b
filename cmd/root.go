// Package cmd provides the root command and CLI setup for aledit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"aledit.dev/pkg/aledit/internal/adapter"
	"aledit.dev/pkg/aledit/internal/domain"
	m "aledit.dev/pkg/aledit/internal/model"
)

var sequenceReader adapter.SequenceReader
var aligner domain.Aligner

var modeFlag string
var taskFlag string
var boundFlag int
var formatFlag string
var equalFlags []string
var equalitiesFileFlag string
var prettyFlag bool
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	sequenceReader = adapter.NewLocalSequenceReader()
	aligner = domain.NewAligner()
}

const rootLongDescription = `Aledit computes edit-distance alignments of a query sequence against a
target sequence using a bit-parallel banded algorithm.

Three alignment modes are supported:
  - global    both sequences align end to end
  - prefix    trailing target characters are free
  - infix     the query may land anywhere inside the target

Tasks build on each other: distance reports the edit distance and end
locations, locations adds start locations, path adds a CIGAR edit path.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "aledit",
		Short: "Pairwise edit-distance alignment tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&modeFlag, modeFlagName, "m", viper.GetString(modeConfigKey), "alignment mode: global, prefix or infix")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(modeFlagName), modeConfigKey)

	cmd.PersistentFlags().StringVarP(&taskFlag, taskFlagName, "t", viper.GetString(taskConfigKey), "alignment task: distance, locations or path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(taskFlagName), taskConfigKey)

	cmd.PersistentFlags().IntVarP(&boundFlag, boundFlagName, "k", viper.GetInt(boundConfigKey), "maximum edit distance, negative for unbounded")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(boundFlagName), boundConfigKey)

	cmd.PersistentFlags().StringVarP(&formatFlag, formatFlagName, "f", viper.GetString(formatConfigKey), "cigar format: standard or extended")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(formatFlagName), formatConfigKey)

	cmd.PersistentFlags().StringArrayVarP(&equalFlags, equalFlagName, "e", viper.GetStringSlice(equalitiesConfigKey), "extra character equality X=Y (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(equalFlagName), equalitiesConfigKey)

	cmd.PersistentFlags().StringVar(&equalitiesFileFlag, equalitiesFileFlagName, "", "YAML file with extra character equalities")
	cmd.PersistentFlags().BoolVar(&prettyFlag, prettyFlagName, false, "render the aligned sequences")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// alignConfigFromFlags assembles the engine configuration from flags, config
// file and environment.
func alignConfigFromFlags() (m.AlignConfig, error) {
	cfg := m.DefaultConfig()
	cfg.K = viper.GetInt(boundConfigKey)

	var err error
	if cfg.Mode, err = m.ParseMode(viper.GetString(modeConfigKey)); err != nil {
		return cfg, err
	}
	if cfg.Task, err = m.ParseTask(viper.GetString(taskConfigKey)); err != nil {
		return cfg, err
	}

	for _, s := range viper.GetStringSlice(equalitiesConfigKey) {
		pair, err := m.ParseEqualityPair(s)
		if err != nil {
			return cfg, err
		}

		cfg.Equalities = append(cfg.Equalities, pair)
	}

	if equalitiesFileFlag != "" {
		pairs, err := adapter.LoadEqualities(equalitiesFileFlag)
		if err != nil {
			return cfg, err
		}

		cfg.Equalities = append(cfg.Equalities, pairs...)
	}

	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
