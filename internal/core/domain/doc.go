// Package domain defines the core business entities for emoscope.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TextSource / TargetSource: tagged input sources (inline or file)
//   - AnalysisRequest: one sentence paired with its target phrases
//   - AnalysisResult: the scored response for one sentence
//   - Batch: the ordered result envelope for a whole run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
