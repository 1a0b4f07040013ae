package watson

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// IAMTokenURL is IBM Cloud's token exchange endpoint.
const IAMTokenURL = "https://iam.cloud.ibm.com/identity/token"

// iamGrantType is the IAM grant for exchanging an API key.
const iamGrantType = "urn:ibm:params:oauth:grant-type:apikey"

// iamTokenSource exchanges an IAM API key for short-lived bearer tokens.
// It implements oauth2.TokenSource.
type iamTokenSource struct {
	ctx      context.Context
	client   *http.Client
	tokenURL string
	apiKey   string
}

// NewIAMTokenSource creates a token source over IBM Cloud IAM. Tokens are
// cached and re-exchanged only when they near expiry. If tokenURL is empty,
// the public IAM endpoint is used.
func NewIAMTokenSource(ctx context.Context, apiKey, tokenURL string) oauth2.TokenSource {
	if tokenURL == "" {
		tokenURL = IAMTokenURL
	}

	src := &iamTokenSource{
		ctx:      ctx,
		client:   &http.Client{Timeout: 30 * time.Second},
		tokenURL: tokenURL,
		apiKey:   apiKey,
	}

	return oauth2.ReuseTokenSource(nil, src)
}

// Token implements oauth2.TokenSource.
// Called by the HTTP transport when it needs a fresh access token.
func (s *iamTokenSource) Token() (*oauth2.Token, error) {
	data := url.Values{}
	data.Set("grant_type", iamGrantType)
	data.Set("apikey", s.apiKey)

	req, err := http.NewRequestWithContext(s.ctx, http.MethodPost, s.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Code    string `json:"errorCode"`
			Message string `json:"errorMessage"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Message != "" {
			return nil, fmt.Errorf("iam token: %s (%s)", errResp.Message, errResp.Code)
		}
		return nil, fmt.Errorf("iam token request failed with status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}

	token := &oauth2.Token{
		AccessToken: tokenResp.AccessToken,
		TokenType:   tokenResp.TokenType,
	}
	if tokenResp.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	}

	return token, nil
}
