package driven

import (
	"context"

	"github.com/halcyon-labs/emoscope-cli/internal/core/domain"
)

// Analyser scores text against target phrases using a natural language
// understanding backend.
//
// Implementations may include:
//   - IBM Watson Natural Language Understanding
type Analyser interface {
	// Analyse scores a single sentence. Every target phrase in the request
	// receives its own emotion breakdown alongside the document-level one.
	Analyse(ctx context.Context, req domain.AnalysisRequest, opts domain.AnalysisOptions) (*domain.AnalysisResult, error)
}
