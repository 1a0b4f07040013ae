// Package watson provides an Analyser adapter using the IBM Watson
// Natural Language Understanding API.
package watson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/halcyon-labs/emoscope-cli/internal/core/domain"
	"github.com/halcyon-labs/emoscope-cli/internal/core/ports/driven"
)

// Ensure Analyser implements the interface.
var _ driven.Analyser = (*Analyser)(nil)

// Default configuration values.
const (
	DefaultVersion = "2022-04-07"
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the Watson NLU analyser.
type Config struct {
	// APIURL is the service instance URL (required).
	APIURL string

	// APIKey is the IAM API key for the instance.
	// Required unless TokenSource is set.
	APIKey string

	// Version is the API version date (default: 2022-04-07).
	Version string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// TokenSource overrides IAM key exchange when set.
	// Tests use a static source.
	TokenSource oauth2.TokenSource
}

// Analyser provides targeted emotion analysis using Watson NLU.
type Analyser struct {
	client  *http.Client
	baseURL string
	version string
}

// analyzeRequest is the NLU /v1/analyze request format.
type analyzeRequest struct {
	Text     string   `json:"text"`
	Features features `json:"features"`
}

// features selects which analyses the service runs.
type features struct {
	Emotion   *emotionOptions   `json:"emotion,omitempty"`
	Sentiment *sentimentOptions `json:"sentiment,omitempty"`
}

type emotionOptions struct {
	Targets []string `json:"targets,omitempty"`
}

type sentimentOptions struct {
	Targets []string `json:"targets,omitempty"`
}

// analyzeResponse is the NLU /v1/analyze response format.
type analyzeResponse struct {
	Usage struct {
		TextUnits      int `json:"text_units"`
		TextCharacters int `json:"text_characters"`
		Features       int `json:"features"`
	} `json:"usage"`
	Language string `json:"language"`
	Emotion  *struct {
		Document struct {
			Emotion emotionScores `json:"emotion"`
		} `json:"document"`
		Targets []struct {
			Text    string        `json:"text"`
			Emotion emotionScores `json:"emotion"`
		} `json:"targets"`
	} `json:"emotion,omitempty"`
	Sentiment *struct {
		Document struct {
			Label string  `json:"label"`
			Score float64 `json:"score"`
		} `json:"document"`
		Targets []struct {
			Text  string  `json:"text"`
			Label string  `json:"label"`
			Score float64 `json:"score"`
		} `json:"targets"`
	} `json:"sentiment,omitempty"`
}

// emotionScores is the NLU five-axis emotion format.
type emotionScores struct {
	Joy     float64 `json:"joy"`
	Sadness float64 `json:"sadness"`
	Anger   float64 `json:"anger"`
	Fear    float64 `json:"fear"`
	Disgust float64 `json:"disgust"`
}

// NewAnalyser creates a new Watson NLU analyser. The context is held by the
// token source for its exchange requests.
func NewAnalyser(ctx context.Context, cfg Config) (*Analyser, error) {
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("watson: API URL is required")
	}
	if cfg.APIKey == "" && cfg.TokenSource == nil {
		return nil, fmt.Errorf("watson: API key is required")
	}
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	source := cfg.TokenSource
	if source == nil {
		source = NewIAMTokenSource(ctx, cfg.APIKey, "")
	}

	return &Analyser{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &oauth2.Transport{Source: source},
		},
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		version: cfg.Version,
	}, nil
}

// Analyse scores a single sentence against its target phrases.
func (a *Analyser) Analyse(
	ctx context.Context, req domain.AnalysisRequest, opts domain.AnalysisOptions,
) (*domain.AnalysisResult, error) {
	reqBody := analyzeRequest{
		Text: req.Text,
		Features: features{
			Emotion: &emotionOptions{Targets: req.Targets},
		},
	}
	if opts.Sentiment {
		reqBody.Features.Sentiment = &sentimentOptions{Targets: req.Targets}
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		a.baseURL+"/v1/analyze?version="+a.version,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var decoded analyzeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if decoded.Emotion == nil {
		return nil, fmt.Errorf("watson: response missing emotion analysis: %w", domain.ErrAnalysisFailed)
	}

	return toResult(req.Text, &decoded), nil
}

// apiError shapes a non-200 response into an error carrying the service's
// own message when the body is parseable.
func apiError(status int, body []byte) error {
	var errResp struct {
		Code  int    `json:"code"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("watson error (status %d): %s: %w", status, errResp.Error, domain.ErrAnalysisFailed)
	}
	return fmt.Errorf("watson error (status %d): %w", status, domain.ErrAnalysisFailed)
}

// toResult converts the wire response into the domain result.
func toResult(text string, resp *analyzeResponse) *domain.AnalysisResult {
	result := &domain.AnalysisResult{
		Text:     text,
		Language: resp.Language,
		Usage: domain.Usage{
			TextUnits:      resp.Usage.TextUnits,
			TextCharacters: resp.Usage.TextCharacters,
			Features:       resp.Usage.Features,
		},
		Document: domain.DocumentResult{
			Emotion: toScores(resp.Emotion.Document.Emotion),
		},
		Targets: make([]domain.TargetResult, 0, len(resp.Emotion.Targets)),
	}

	for _, target := range resp.Emotion.Targets {
		result.Targets = append(result.Targets, domain.TargetResult{
			Text:    target.Text,
			Emotion: toScores(target.Emotion),
		})
	}

	if resp.Sentiment != nil {
		result.Document.Sentiment = &domain.SentimentScore{
			Label: resp.Sentiment.Document.Label,
			Score: resp.Sentiment.Document.Score,
		}
		for _, st := range resp.Sentiment.Targets {
			for i := range result.Targets {
				if result.Targets[i].Text == st.Text {
					result.Targets[i].Sentiment = &domain.SentimentScore{Label: st.Label, Score: st.Score}
					break
				}
			}
		}
	}

	return result
}

// toScores converts wire emotion scores into the domain form.
func toScores(e emotionScores) domain.EmotionScores {
	return domain.EmotionScores{
		Joy:     e.Joy,
		Sadness: e.Sadness,
		Anger:   e.Anger,
		Fear:    e.Fear,
		Disgust: e.Disgust,
	}
}
