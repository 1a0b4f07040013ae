package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/halcyon-labs/emoscope-cli/internal/core/domain"
	"github.com/halcyon-labs/emoscope-cli/internal/core/ports/driven"
	"github.com/halcyon-labs/emoscope-cli/internal/core/ports/driving"
	"github.com/halcyon-labs/emoscope-cli/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService pairs sentences with target groups and scores each pair
// through the analyser backend.
type AnalysisService struct {
	analyser driven.Analyser
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(analyser driven.Analyser) *AnalysisService {
	return &AnalysisService{analyser: analyser}
}

// Analyse resolves the text and target sources, pairs each sentence with
// its target group, and scores every pair. One request is made per
// sentence; the first failure aborts the batch.
func (s *AnalysisService) Analyse(
	ctx context.Context, text domain.TextSource, targets domain.TargetSource, opts domain.AnalysisOptions,
) (*domain.Batch, error) {
	logger.Section("Input Normalisation")

	if err := pairable(text, targets); err != nil {
		return nil, err
	}

	sentences, err := s.resolveSentences(text)
	if err != nil {
		return nil, err
	}
	logger.Debug("Sentences: %d", len(sentences))

	groups, err := s.resolveTargetGroups(targets)
	if err != nil {
		return nil, err
	}
	logger.Debug("Target groups: %d", len(groups))

	if len(sentences) != len(groups) {
		return nil, fmt.Errorf(
			"%d sentences but %d target groups: %w",
			len(sentences), len(groups), domain.ErrCountMismatch,
		)
	}

	logger.Section("Analysis")
	logger.Info("Analysing %d sentence(s)", len(sentences))

	batch := &domain.Batch{
		ID:      uuid.NewString(),
		Date:    time.Now().UTC(),
		Results: make([]domain.AnalysisResult, 0, len(sentences)),
	}

	for i, sentence := range sentences {
		req := domain.AnalysisRequest{Text: sentence, Targets: groups[i]}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i+1, err)
		}

		logger.Debug("Analysing sentence %d/%d: %q", i+1, len(sentences), sentence)

		res, err := s.analyser.Analyse(ctx, req, opts)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", i+1, err)
		}

		logger.Info("Usage: %d units; %d characters.", res.Usage.TextUnits, res.Usage.TextCharacters)
		logger.Info("Language: %s", res.Language)

		batch.Results = append(batch.Results, *res)
	}

	logger.Debug("Batch %s complete: %d result(s)", batch.ID, len(batch.Results))

	return batch, nil
}

// pairable rejects source combinations that cannot be aligned. Inline text
// pairs with inline targets only, and an input file pairs with a targets
// file only.
func pairable(text domain.TextSource, targets domain.TargetSource) error {
	if text.Kind == domain.SourceInline && targets.Kind == domain.SourceFile {
		return fmt.Errorf("inline text cannot pair with a targets file: %w", domain.ErrConflictingInput)
	}
	if text.Kind == domain.SourceFile && targets.Kind == domain.SourceInline {
		return fmt.Errorf("an input file cannot pair with inline targets: %w", domain.ErrConflictingInput)
	}
	return nil
}

// resolveSentences produces the sentences to analyse from a text source.
// Inline text becomes a single sentence, kept verbatim. File content is
// normalised line-wise.
func (s *AnalysisService) resolveSentences(text domain.TextSource) ([]string, error) {
	switch text.Kind {
	case domain.SourceInline:
		if strings.TrimSpace(text.Inline) == "" {
			return nil, fmt.Errorf("inline text is blank: %w", domain.ErrMissingInput)
		}
		return []string{text.Inline}, nil

	case domain.SourceFile:
		content, err := os.ReadFile(text.Path)
		if err != nil {
			return nil, fmt.Errorf("read input file: %w", err)
		}

		sentences := NormaliseLines(string(content))
		if len(sentences) == 0 {
			return nil, fmt.Errorf("input file %s has no analysable lines: %w", text.Path, domain.ErrMissingInput)
		}
		return sentences, nil

	default:
		return nil, fmt.Errorf("no text source: %w", domain.ErrMissingInput)
	}
}

// resolveTargetGroups produces one target group per sentence from a target
// source. Inline targets form a single group for the single inline sentence.
func (s *AnalysisService) resolveTargetGroups(targets domain.TargetSource) ([][]string, error) {
	switch targets.Kind {
	case domain.SourceInline:
		group, err := NormaliseInlineTargets(targets.Inline)
		if err != nil {
			return nil, err
		}
		return [][]string{group}, nil

	case domain.SourceFile:
		content, err := os.ReadFile(targets.Path)
		if err != nil {
			return nil, fmt.Errorf("read targets file: %w", err)
		}
		return NormaliseTargetGroups(string(content))

	default:
		return nil, fmt.Errorf("no target source: %w", domain.ErrMissingInput)
	}
}
