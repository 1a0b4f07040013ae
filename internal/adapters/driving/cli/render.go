package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/halcyon-labs/emoscope-cli/internal/core/domain"
	"github.com/halcyon-labs/emoscope-cli/internal/logger"
)

// Column widths for rendered tables. Score cells hold "0.000"; sentiment
// cells hold a label plus a signed score.
const (
	scoreColWidth     = 7
	sentimentColWidth = 15
)

// Styles for terminal output.
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	peakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

// styledOutput reports whether stdout is a terminal worth styling.
// Overridden in tests.
var styledOutput = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func outputBatchJSON(cmd *cobra.Command, batch *domain.Batch) error {
	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputBatchTables(cmd *cobra.Command, batch *domain.Batch) error {
	if logger.IsQuiet() {
		return nil
	}

	styled := styledOutput()

	cmd.Println()
	for i := range batch.Results {
		res := &batch.Results[i]

		cmd.Printf("Analysing: %s\n", res.Text)
		cmd.Println()
		cmd.Println("Results")
		cmd.Println()
		cmd.Print(renderTable(res, withSentiment, styled))
		cmd.Println()
	}

	return nil
}

// renderTable renders one sentence's scores as a grid: a header row, the
// document row, then one row per target. The first column fits the widest
// label.
func renderTable(res *domain.AnalysisResult, sentiment, styled bool) string {
	width := len("document")
	for _, t := range res.Targets {
		if len(t.Text) > width {
			width = len(t.Text)
		}
	}

	var b strings.Builder

	// Header
	cells := []string{pad("item", width)}
	for _, axis := range domain.EmotionAxes {
		cells = append(cells, pad(axis, scoreColWidth))
	}
	if sentiment {
		cells = append(cells, pad("sentiment", sentimentColWidth))
	}
	header := strings.Join(cells, " | ")
	if styled {
		header = headerStyle.Render(header)
	}
	b.WriteString(header + "\n")

	// Separator
	seps := []string{strings.Repeat("-", width)}
	for range domain.EmotionAxes {
		seps = append(seps, strings.Repeat("-", scoreColWidth))
	}
	if sentiment {
		seps = append(seps, strings.Repeat("-", sentimentColWidth))
	}
	b.WriteString(strings.Join(seps, "-|-") + "\n")

	// Document first, then each target
	b.WriteString(renderRow("document", res.Document.Emotion, res.Document.Sentiment, width, sentiment, styled))
	for _, t := range res.Targets {
		b.WriteString(renderRow(t.Text, t.Emotion, t.Sentiment, width, sentiment, styled))
	}

	return b.String()
}

// renderRow renders a single label row. When styled, the dominant emotion
// is highlighted and near-zero scores are dimmed.
func renderRow(
	label string, scores domain.EmotionScores, sentiment *domain.SentimentScore,
	width int, withSentimentCol, styled bool,
) string {
	values := scores.Values()

	peak := 0
	for i, v := range values {
		if v > values[peak] {
			peak = i
		}
	}

	cells := make([]string, 0, len(values)+2)

	labelCell := pad(label, width)
	if styled {
		labelCell = labelStyle.Render(labelCell)
	}
	cells = append(cells, labelCell)

	for i, v := range values {
		cell := pad(fmt.Sprintf("%.3f", v), scoreColWidth)
		if styled {
			switch {
			case i == peak && v > 0:
				cell = peakStyle.Render(cell)
			case v < 0.1:
				cell = mutedStyle.Render(cell)
			}
		}
		cells = append(cells, cell)
	}

	if withSentimentCol {
		cell := pad("-", sentimentColWidth)
		if sentiment != nil {
			cell = pad(fmt.Sprintf("%-8s %+.3f", sentiment.Label, sentiment.Score), sentimentColWidth)
		}
		cells = append(cells, cell)
	}

	return strings.Join(cells, " | ") + "\n"
}

// pad left-justifies s in a cell of the given width, never truncating.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
