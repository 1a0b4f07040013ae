package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/emoscope-cli/internal/core/domain"
	"github.com/halcyon-labs/emoscope-cli/internal/logger"
)

// mockAnalysisService returns a canned batch and records what it was
// called with.
type mockAnalysisService struct {
	batch      *domain.Batch
	err        error
	gotText    domain.TextSource
	gotTargets domain.TargetSource
	gotOpts    domain.AnalysisOptions
}

func (m *mockAnalysisService) Analyse(
	_ context.Context, text domain.TextSource, targets domain.TargetSource, opts domain.AnalysisOptions,
) (*domain.Batch, error) {
	m.gotText = text
	m.gotTargets = targets
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.batch, nil
}

// mockCredentialsService resolves fixed credentials.
type mockCredentialsService struct {
	creds domain.Credentials
	err   error
}

func (m *mockCredentialsService) Resolve() (domain.Credentials, error) {
	return m.creds, m.err
}

func testBatch() *domain.Batch {
	return &domain.Batch{
		ID:   "2f1a7c1e-6b86-4c1a-9f6e-3d2b8a0c5e11",
		Date: time.Date(2024, 5, 14, 10, 30, 0, 0, time.UTC),
		Results: []domain.AnalysisResult{
			{
				Text:     "The rooms were nice, but the service was terrible.",
				Language: "en",
				Usage:    domain.Usage{TextUnits: 1, TextCharacters: 50, Features: 1},
				Document: domain.DocumentResult{
					Emotion: domain.EmotionScores{Joy: 0.512, Sadness: 0.231, Anger: 0.214, Fear: 0.082, Disgust: 0.193},
				},
				Targets: []domain.TargetResult{
					{Text: "rooms", Emotion: domain.EmotionScores{Joy: 0.673, Sadness: 0.091, Anger: 0.042, Fear: 0.031, Disgust: 0.054}},
					{Text: "service", Emotion: domain.EmotionScores{Joy: 0.052, Sadness: 0.412, Anger: 0.621, Fear: 0.123, Disgust: 0.334}},
				},
			},
		},
	}
}

// resetFlags returns the root command to its pre-parse state. Flag values
// and their Changed markers persist across Execute calls, so every test
// that parses flags restores them here.
func resetFlags() {
	inputText = ""
	inputFile = ""
	targetList = nil
	targetsFile = ""
	jsonOut = false
	withSentiment = false
	verbose = false
	quiet = false
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	rootCmd.SetArgs(nil)
	logger.SetVerbose(false)
	logger.SetQuiet(false)
}

// setupTestServices installs mock services and returns a cleanup function
// restoring the previous wiring.
func setupTestServices() func() {
	oldAnalysis := analysisService
	oldCredentials := credentialsService
	oldStyled := styledOutput

	analysisService = &mockAnalysisService{batch: testBatch()}
	credentialsService = &mockCredentialsService{
		creds: domain.Credentials{APIURL: "https://api.test.watson.cloud.ibm.com/instances/abc", APIKey: "test-key"},
	}
	styledOutput = func() bool { return false }

	return func() {
		analysisService = oldAnalysis
		credentialsService = oldCredentials
		styledOutput = oldStyled
		resetFlags()
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "emoscope", rootCmd.Use)
}

func TestRootCmd_Short(t *testing.T) {
	assert.Equal(t, "Targeted emotion analysis from the command line", rootCmd.Short)
}

func TestRootCmd_Long(t *testing.T) {
	assert.Contains(t, rootCmd.Long, "Watson")
	assert.Contains(t, rootCmd.Long, "joy, sadness, anger, fear, and disgust")
	assert.Contains(t, rootCmd.Long, "target phrases")
}

func TestRootCmd_HasInputFlags(t *testing.T) {
	input := rootCmd.Flags().Lookup("input")
	require.NotNil(t, input, "input flag should exist")
	assert.Equal(t, "i", input.Shorthand)
	assert.Equal(t, "", input.DefValue)

	file := rootCmd.Flags().Lookup("file")
	require.NotNil(t, file, "file flag should exist")
	assert.Equal(t, "f", file.Shorthand)
	assert.Equal(t, "", file.DefValue)
}

func TestRootCmd_HasTargetFlags(t *testing.T) {
	targets := rootCmd.Flags().Lookup("targets")
	require.NotNil(t, targets, "targets flag should exist")
	assert.Equal(t, "t", targets.Shorthand)

	targetsFile := rootCmd.Flags().Lookup("targets-file")
	require.NotNil(t, targetsFile, "targets-file flag should exist")
	assert.Equal(t, "s", targetsFile.Shorthand)
}

func TestRootCmd_HasOutputFlags(t *testing.T) {
	jsonFlag := rootCmd.Flags().Lookup("json")
	require.NotNil(t, jsonFlag, "json flag should exist")
	assert.Equal(t, "false", jsonFlag.DefValue)

	sentiment := rootCmd.Flags().Lookup("sentiment")
	require.NotNil(t, sentiment, "sentiment flag should exist")
	assert.Equal(t, "false", sentiment.DefValue)

	verboseFlag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag, "verbose flag should exist")
	assert.Equal(t, "v", verboseFlag.Shorthand)

	quietFlag := rootCmd.PersistentFlags().Lookup("quiet")
	require.NotNil(t, quietFlag, "quiet flag should exist")
	assert.Equal(t, "q", quietFlag.Shorthand)
}

func TestRootCmd_RequiresTextSource(t *testing.T) {
	defer resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-t", "service"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of the flags in the group [input file]")
}

func TestRootCmd_RequiresTargetSource(t *testing.T) {
	defer resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-i", "The staff were lovely."})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of the flags in the group [targets targets-file]")
}

func TestRootCmd_RejectsInputAndFile(t *testing.T) {
	defer resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-i", "text", "-f", "input.txt", "-t", "service"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestRootCmd_RejectsTargetsAndTargetsFile(t *testing.T) {
	defer resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-i", "text", "-t", "service", "-s", "targets.txt"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestRootCmd_RejectsVerboseAndQuiet(t *testing.T) {
	defer resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-i", "text", "-t", "service", "-v", "-q"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestRootCmd_RejectsInputWithTargetsFile(t *testing.T) {
	defer resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-i", "The staff were lovely.", "-s", "targets.txt"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflictingInput)
	assert.Contains(t, err.Error(), "cannot use -s/--targets-file with -i/--input")
	assert.Contains(t, err.Error(), "use -t/--targets instead")
}

func TestRootCmd_RejectsFileWithTargets(t *testing.T) {
	defer resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-f", "input.txt", "-t", "staff"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflictingInput)
	assert.Contains(t, err.Error(), "cannot use -t/--targets with -f/--file")
	assert.Contains(t, err.Error(), "use -s/--targets-file instead")
}

func TestRootCmd_RejectsPositionalArgs(t *testing.T) {
	defer resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"banana", "-i", "text", "-t", "service"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "banana")
}

func TestRootCmd_AnalysesInlineText(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockAnalysisService{batch: testBatch()}
	analysisService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-i", "The rooms were nice, but the service was terrible.", "-t", "rooms,service"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, domain.SourceInline, mock.gotText.Kind)
	assert.Equal(t, "The rooms were nice, but the service was terrible.", mock.gotText.Inline)
	assert.Equal(t, domain.SourceInline, mock.gotTargets.Kind)
	assert.Equal(t, []string{"rooms", "service"}, mock.gotTargets.Inline)
	assert.False(t, mock.gotOpts.Sentiment)

	out := buf.String()
	assert.Contains(t, out, "Analysing: The rooms were nice, but the service was terrible.")
	assert.Contains(t, out, "Results")
	assert.Contains(t, out, "document")
	assert.Contains(t, out, "rooms")
	assert.Contains(t, out, "service")
}

func TestRootCmd_AnalysesFiles(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockAnalysisService{batch: testBatch()}
	analysisService = mock

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "input.txt")
	targetsPath := filepath.Join(dir, "targets.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("The rooms were nice.\n"), 0644))
	require.NoError(t, os.WriteFile(targetsPath, []byte("rooms\n"), 0644))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-f", inputPath, "-s", targetsPath})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, domain.SourceFile, mock.gotText.Kind)
	assert.Equal(t, inputPath, mock.gotText.Path)
	assert.Equal(t, domain.SourceFile, mock.gotTargets.Kind)
	assert.Equal(t, targetsPath, mock.gotTargets.Path)
}

func TestRootCmd_RepeatedTargetFlags(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockAnalysisService{batch: testBatch()}
	analysisService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-i", "text", "-t", "rooms", "-t", "service"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"rooms", "service"}, mock.gotTargets.Inline)
}

func TestRootCmd_ForwardsSentimentOption(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	mock := &mockAnalysisService{batch: testBatch()}
	analysisService = mock

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-i", "text", "-t", "service", "--sentiment"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, mock.gotOpts.Sentiment)
}

func TestRootCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-i", "text", "-t", "service", "--json"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "\"id\"")
	assert.Contains(t, out, "\"date\"")
	assert.Contains(t, out, "\"batch\"")
	assert.Contains(t, out, "The rooms were nice, but the service was terrible.")
	assert.NotContains(t, out, "Analysing:")
}

func TestRootCmd_QuietSuppressesOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-i", "text", "-t", "service", "-q"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestRootCmd_QuietKeepsJSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-i", "text", "-t", "service", "-q", "--json"})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"batch\"")
}

func TestRootCmd_AnalysisError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	analysisService = &mockAnalysisService{err: fmt.Errorf("watson: analyze returned status 401: %w", domain.ErrAnalysisFailed)}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-i", "text", "-t", "service"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAnalysisFailed)
	assert.Contains(t, err.Error(), "analysis failed")
}

func TestRootCmd_MissingCredentialsHint(t *testing.T) {
	oldAnalysis := analysisService
	oldCredentials := credentialsService
	oldPath := configPath
	analysisService = nil
	credentialsService = &mockCredentialsService{
		err: fmt.Errorf("service URL not configured: %w", domain.ErrMissingCredentials),
	}
	configPath = "/home/user/.emoscope/config.toml"
	defer func() {
		analysisService = oldAnalysis
		credentialsService = oldCredentials
		configPath = oldPath
		resetFlags()
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"-i", "text", "-t", "service"})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
	assert.Contains(t, buf.String(), "Set IBM_NLU_API_URL and IBM_NLU_API_KEY")
	assert.Contains(t, buf.String(), "/home/user/.emoscope/config.toml")
}
