package driving

import "github.com/halcyon-labs/emoscope-cli/internal/core/domain"

// CredentialsService resolves analyser backend credentials from
// configuration.
type CredentialsService interface {
	// Resolve returns the service URL and API key.
	Resolve() (domain.Credentials, error)
}
