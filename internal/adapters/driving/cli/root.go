// Package cli implements the emoscope command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/halcyon-labs/emoscope-cli/internal/adapters/driven/config"
	"github.com/halcyon-labs/emoscope-cli/internal/adapters/driven/config/env"
	"github.com/halcyon-labs/emoscope-cli/internal/adapters/driven/config/file"
	"github.com/halcyon-labs/emoscope-cli/internal/adapters/driven/nlu/watson"
	"github.com/halcyon-labs/emoscope-cli/internal/core/domain"
	"github.com/halcyon-labs/emoscope-cli/internal/core/ports/driving"
	"github.com/halcyon-labs/emoscope-cli/internal/core/services"
	"github.com/halcyon-labs/emoscope-cli/internal/logger"
)

// version is set via ldflags at build time.
var version = "dev"

// Services used by the commands, wired in initServices.
// Tests replace these with mocks.
var (
	analysisService    driving.AnalysisService
	credentialsService driving.CredentialsService
)

// configPath is the config file consulted for credentials, for error hints.
var configPath string

// Flag values for the root command.
var (
	inputText     string
	inputFile     string
	targetList    []string
	targetsFile   string
	jsonOut       bool
	withSentiment bool
	verbose       bool
	quiet         bool
)

var rootCmd = &cobra.Command{
	Use:   "emoscope",
	Short: "Targeted emotion analysis from the command line",
	Long: `Emoscope scores sentences against target phrases using the IBM Watson
Natural Language Understanding API.

Each sentence is scored for joy, sadness, anger, fear, and disgust, both
for the sentence as a whole and for every target phrase in it. Sentences
come from -i/--input or an input file; targets come from -t/--targets or
a targets file aligned line-wise with the input file.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		logger.SetQuiet(quiet)
	},
	RunE: runAnalyse,
}

func init() {
	rootCmd.Flags().StringVarP(&inputText, "input", "i", "", "the text to analyse")
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "input file with one sentence per line")
	rootCmd.Flags().StringSliceVarP(&targetList, "targets", "t", nil, "targets to analyse specifically")
	rootCmd.Flags().StringVarP(&targetsFile, "targets-file", "s", "", "targets file aligned line-wise with the input file")
	rootCmd.Flags().BoolVar(&jsonOut, "json", false, "output the batch as JSON")
	rootCmd.Flags().BoolVar(&withSentiment, "sentiment", false, "also score sentiment for each target")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print additional output text")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "no command line output")

	rootCmd.MarkFlagsOneRequired("input", "file")
	rootCmd.MarkFlagsMutuallyExclusive("input", "file")
	rootCmd.MarkFlagsOneRequired("targets", "targets-file")
	rootCmd.MarkFlagsMutuallyExclusive("targets", "targets-file")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// Execute runs the root command.
func Execute() {
	// Credentials may live in a .env file alongside the invocation
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAnalyse(cmd *cobra.Command, _ []string) error {
	// Mixed-axis pairings cannot be aligned, reject them up front
	if inputText != "" && targetsFile != "" {
		return fmt.Errorf(
			"cannot use -s/--targets-file with -i/--input (use -t/--targets instead): %w",
			domain.ErrConflictingInput,
		)
	}
	if inputFile != "" && len(targetList) > 0 {
		return fmt.Errorf(
			"cannot use -t/--targets with -f/--file (use -s/--targets-file instead): %w",
			domain.ErrConflictingInput,
		)
	}

	text, err := domain.NewTextSource(inputText, inputFile)
	if err != nil {
		return err
	}
	targets, err := domain.NewTargetSource(targetList, targetsFile)
	if err != nil {
		return err
	}

	if err := initServices(); err != nil {
		if errors.Is(err, domain.ErrMissingCredentials) {
			cmd.PrintErrf("Set %s and %s, or add watson.api_url and watson.api_key to %s.\n",
				env.VarAPIURL, env.VarAPIKey, configPath)
		}
		return err
	}

	ctx := context.Background()
	opts := domain.AnalysisOptions{Sentiment: withSentiment}

	batch, err := analysisService.Analyse(ctx, text, targets, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if jsonOut {
		return outputBatchJSON(cmd, batch)
	}
	return outputBatchTables(cmd, batch)
}

// initServices wires adapters into services. Tests pre-set the service
// variables, which skips the wiring entirely.
func initServices() error {
	if analysisService != nil {
		return nil
	}

	if credentialsService == nil {
		envStore := env.NewConfigStore()
		fileStore, err := file.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		chain := config.NewChain(envStore, fileStore)
		configPath = chain.Path()
		credentialsService = services.NewCredentialsService(chain)
	}

	creds, err := credentialsService.Resolve()
	if err != nil {
		return err
	}

	analyser, err := watson.NewAnalyser(context.Background(), watson.Config{
		APIURL: creds.APIURL,
		APIKey: creds.APIKey,
	})
	if err != nil {
		return fmt.Errorf("init analyser: %w", err)
	}

	analysisService = services.NewAnalysisService(analyser)
	return nil
}
