package domain

import "errors"

// Domain errors represent input validation and request failures.
// These are distinct from infrastructure errors.
var (
	// ErrMissingInput indicates an input axis was given neither an inline
	// value nor a file path.
	ErrMissingInput = errors.New("missing input source")

	// ErrConflictingInput indicates an input axis was given both an inline
	// value and a file path, or that the two axes mix inline and file
	// sourcing in a combination that cannot be aligned.
	ErrConflictingInput = errors.New("conflicting input sources")

	// ErrCountMismatch indicates the sentence file and the targets file
	// retain a different number of lines, so no line-wise pairing exists.
	ErrCountMismatch = errors.New("sentence and target counts differ")

	// ErrEmptyTargetGroup indicates a target entry yielded no usable phrases
	// after comma-splitting and trimming.
	ErrEmptyTargetGroup = errors.New("empty target group")

	// ErrMissingCredentials indicates the NLU service URL or API key could
	// not be resolved from the environment or the config file.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrAnalysisFailed indicates the NLU service rejected a request or the
	// request could not be completed. The wrapped detail carries whatever
	// diagnostics the service provided.
	ErrAnalysisFailed = errors.New("analysis request failed")
)
