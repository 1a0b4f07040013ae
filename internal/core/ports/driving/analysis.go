package driving

import (
	"context"

	"github.com/halcyon-labs/emoscope-cli/internal/core/domain"
)

// AnalysisService provides targeted emotion analysis to external actors.
type AnalysisService interface {
	// Analyse resolves the text and target sources, pairs each sentence with
	// its target group, and scores every pair.
	Analyse(ctx context.Context, text domain.TextSource, targets domain.TargetSource, opts domain.AnalysisOptions) (*domain.Batch, error)
}
