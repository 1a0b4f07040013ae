package services

import (
	"fmt"
	"strings"

	"github.com/halcyon-labs/emoscope-cli/internal/core/domain"
)

// NormaliseLines splits raw file content into the lines worth analysing.
// A line survives when its trimmed form is non-empty and does not start
// with '#'. Surviving lines are returned verbatim so that sentence text
// reaches the analyser exactly as the user wrote it.
func NormaliseLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))

	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines
}

// SplitTargets splits a comma-separated target line into trimmed phrases.
// Phrases that are empty after trimming are dropped.
func SplitTargets(line string) []string {
	parts := strings.Split(line, ",")
	targets := make([]string, 0, len(parts))

	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			targets = append(targets, t)
		}
	}

	return targets
}

// NormaliseTargetGroups converts targets file content into one target group
// per surviving line. Group numbering in errors is 1-based and counts only
// surviving lines, matching the sentence the group pairs with.
func NormaliseTargetGroups(content string) ([][]string, error) {
	lines := NormaliseLines(content)
	groups := make([][]string, 0, len(lines))

	for i, line := range lines {
		group := SplitTargets(line)
		if len(group) == 0 {
			return nil, fmt.Errorf("target group %d: %w", i+1, domain.ErrEmptyTargetGroup)
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// NormaliseInlineTargets trims inline target values and drops empties.
// At least one target must survive.
func NormaliseInlineTargets(values []string) ([]string, error) {
	group := make([]string, 0, len(values))

	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			group = append(group, t)
		}
	}

	if len(group) == 0 {
		return nil, fmt.Errorf("inline targets: %w", domain.ErrEmptyTargetGroup)
	}

	return group, nil
}
