package domain

// Credentials hold what the analyser backend needs to accept requests:
// the service instance URL and its IAM API key.
type Credentials struct {
	// APIURL is the service instance endpoint.
	APIURL string

	// APIKey is the IAM API key for the instance.
	APIKey string
}
