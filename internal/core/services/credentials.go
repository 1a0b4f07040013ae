package services

import (
	"fmt"
	"strings"

	"github.com/halcyon-labs/emoscope-cli/internal/core/domain"
	"github.com/halcyon-labs/emoscope-cli/internal/core/ports/driven"
	"github.com/halcyon-labs/emoscope-cli/internal/core/ports/driving"
	"github.com/halcyon-labs/emoscope-cli/internal/logger"
)

// Ensure CredentialsService implements the interface.
var _ driving.CredentialsService = (*CredentialsService)(nil)

// Config keys for credential storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyAPIURL = "watson.api_url"
	keyAPIKey = "watson.api_key"
)

// CredentialsService resolves analyser backend credentials from the
// configured stores.
type CredentialsService struct {
	config driven.ConfigStore
}

// NewCredentialsService creates a new credentials service.
func NewCredentialsService(config driven.ConfigStore) *CredentialsService {
	return &CredentialsService{config: config}
}

// Resolve returns the service URL and API key. Values are trimmed;
// a value that is empty after trimming counts as absent.
func (s *CredentialsService) Resolve() (domain.Credentials, error) {
	url := strings.TrimSpace(s.config.GetString(keyAPIURL))
	key := strings.TrimSpace(s.config.GetString(keyAPIKey))

	if url == "" {
		return domain.Credentials{}, fmt.Errorf("service URL not configured: %w", domain.ErrMissingCredentials)
	}
	if key == "" {
		return domain.Credentials{}, fmt.Errorf("API key not configured: %w", domain.ErrMissingCredentials)
	}

	logger.Debug("Credentials resolved: url=%s, key=%d chars", url, len(key))

	return domain.Credentials{APIURL: url, APIKey: key}, nil
}
