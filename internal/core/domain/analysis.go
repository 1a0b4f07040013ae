package domain

import (
	"fmt"
	"time"
)

// EmotionAxes lists the five emotion dimensions scored by the NLU service,
// in the order results are rendered.
var EmotionAxes = []string{"joy", "sadness", "anger", "fear", "disgust"}

// AnalysisRequest pairs one sentence with the target phrases to score in it.
type AnalysisRequest struct {
	// Text is the sentence submitted for analysis, kept verbatim from input.
	Text string `json:"text"`

	// Targets are the phrases whose emotion is scored within Text. A valid
	// request carries at least one non-empty phrase.
	Targets []string `json:"targets"`
}

// Validate reports whether the request satisfies the input invariants.
func (r AnalysisRequest) Validate() error {
	if r.Text == "" {
		return fmt.Errorf("%w: empty sentence", ErrMissingInput)
	}
	if len(r.Targets) == 0 {
		return fmt.Errorf("%w: sentence %q has no targets", ErrEmptyTargetGroup, r.Text)
	}
	for _, t := range r.Targets {
		if t == "" {
			return fmt.Errorf("%w: sentence %q has a blank target", ErrEmptyTargetGroup, r.Text)
		}
	}
	return nil
}

// AnalysisOptions selects the features requested from the NLU service.
type AnalysisOptions struct {
	// Sentiment additionally requests targeted sentiment scores alongside
	// the always-on emotion scores.
	Sentiment bool
}

// EmotionScores holds the five emotion axes for one item. Scores are in [0, 1].
type EmotionScores struct {
	Joy     float64 `json:"joy"`
	Sadness float64 `json:"sadness"`
	Anger   float64 `json:"anger"`
	Fear    float64 `json:"fear"`
	Disgust float64 `json:"disgust"`
}

// Values returns the scores in EmotionAxes order.
func (e EmotionScores) Values() []float64 {
	return []float64{e.Joy, e.Sadness, e.Anger, e.Fear, e.Disgust}
}

// SentimentScore is a sentiment judgement for one item.
type SentimentScore struct {
	// Label is "positive", "negative", or "neutral".
	Label string `json:"label"`

	// Score is in [-1, 1], negative values indicating negative sentiment.
	Score float64 `json:"score"`
}

// TargetResult carries the scores for a single target phrase.
type TargetResult struct {
	// Text is the target phrase as echoed by the service.
	Text string `json:"text"`

	// Emotion holds the five-axis emotion scores for this target.
	Emotion EmotionScores `json:"emotion"`

	// Sentiment is populated only when sentiment was requested.
	Sentiment *SentimentScore `json:"sentiment,omitempty"`
}

// DocumentResult carries the whole-sentence scores.
type DocumentResult struct {
	// Emotion holds the five-axis emotion scores for the full sentence.
	Emotion EmotionScores `json:"emotion"`

	// Sentiment is populated only when sentiment was requested.
	Sentiment *SentimentScore `json:"sentiment,omitempty"`
}

// Usage reports the service units one request consumed.
type Usage struct {
	TextUnits      int `json:"text_units"`
	TextCharacters int `json:"text_characters"`
	Features       int `json:"features"`
}

// AnalysisResult is the structured response for one sentence.
type AnalysisResult struct {
	// Text is the analysed sentence.
	Text string `json:"text"`

	// Language is the language the service detected (e.g. "en").
	Language string `json:"language"`

	// Usage reports the units this request consumed.
	Usage Usage `json:"usage"`

	// Document holds the whole-sentence scores.
	Document DocumentResult `json:"document"`

	// Targets holds per-target scores, in request target order.
	Targets []TargetResult `json:"targets"`
}

// Batch is the envelope for one run's results, in request order.
type Batch struct {
	// ID identifies the run.
	ID string `json:"id"`

	// Date is when the run started.
	Date time.Time `json:"date"`

	// Results holds one entry per analysed sentence.
	Results []AnalysisResult `json:"batch"`
}
