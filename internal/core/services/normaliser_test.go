package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-labs/emoscope-cli/internal/core/domain"
)

func TestNormaliseLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "plain lines survive verbatim",
			content: "I love apples!\nI hate oranges.",
			want:    []string{"I love apples!", "I hate oranges."},
		},
		{
			name:    "blank and whitespace-only lines dropped",
			content: "first\n\n   \n\t\nsecond",
			want:    []string{"first", "second"},
		},
		{
			name:    "comment lines dropped",
			content: "# a comment\nkeep me\n#another",
			want:    []string{"keep me"},
		},
		{
			name:    "indented comments also dropped",
			content: "  # indented comment\n\t# tabbed comment\nkeep me",
			want:    []string{"keep me"},
		},
		{
			name:    "hash inside a line is not a comment",
			content: "issue #42 made me furious",
			want:    []string{"issue #42 made me furious"},
		},
		{
			name:    "leading whitespace preserved on kept lines",
			content: "  padded sentence  ",
			want:    []string{"  padded sentence  "},
		},
		{
			name:    "empty content",
			content: "",
			want:    []string{},
		},
		{
			name:    "trailing newline produces no phantom line",
			content: "only line\n",
			want:    []string{"only line"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormaliseLines(tt.content))
		})
	}
}

func TestSplitTargets(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "single target",
			line: "apples",
			want: []string{"apples"},
		},
		{
			name: "multiple targets trimmed",
			line: "apples, oranges ,  pears",
			want: []string{"apples", "oranges", "pears"},
		},
		{
			name: "empty segments dropped",
			line: "apples,,oranges,",
			want: []string{"apples", "oranges"},
		},
		{
			name: "multi-word target survives intact",
			line: "granny smith apples, blood oranges",
			want: []string{"granny smith apples", "blood oranges"},
		},
		{
			name: "only separators yields nothing",
			line: " , , ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTargets(tt.line))
		})
	}
}

func TestNormaliseTargetGroups(t *testing.T) {
	t.Run("one group per surviving line", func(t *testing.T) {
		content := "# header\napples, oranges\n\npears\n"

		groups, err := NormaliseTargetGroups(content)

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"apples", "oranges"}, {"pears"}}, groups)
	})

	t.Run("line of bare separators is an empty group", func(t *testing.T) {
		groups, err := NormaliseTargetGroups("apples\n , ,\npears")

		assert.Nil(t, groups)
		require.ErrorIs(t, err, domain.ErrEmptyTargetGroup)
		assert.Contains(t, err.Error(), "target group 2")
	})

	t.Run("empty content yields no groups", func(t *testing.T) {
		groups, err := NormaliseTargetGroups("")

		require.NoError(t, err)
		assert.Empty(t, groups)
	})
}

func TestNormaliseInlineTargets(t *testing.T) {
	t.Run("trims and keeps order", func(t *testing.T) {
		group, err := NormaliseInlineTargets([]string{" apples ", "blood oranges"})

		require.NoError(t, err)
		assert.Equal(t, []string{"apples", "blood oranges"}, group)
	})

	t.Run("drops empties", func(t *testing.T) {
		group, err := NormaliseInlineTargets([]string{"apples", "", "  "})

		require.NoError(t, err)
		assert.Equal(t, []string{"apples"}, group)
	})

	t.Run("nothing survives", func(t *testing.T) {
		_, err := NormaliseInlineTargets([]string{"", "   "})

		assert.ErrorIs(t, err, domain.ErrEmptyTargetGroup)
	})
}
