package card

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnordt/wordfeel/internal/word"
)

// fixedMeasure gives every rune a width of 10 regardless of style.
type fixedMeasure struct{}

func (fixedMeasure) Width(_ TextStyle, text string) float64 {
	return float64(len([]rune(text))) * 10
}

func measureRunes(text string) float64 {
	return float64(len([]rune(text))) * 10
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{
			name:     "empty text yields no lines",
			text:     "",
			maxWidth: 100,
			want:     nil,
		},
		{
			name:     "whitespace only yields no lines",
			text:     "   \n\t ",
			maxWidth: 100,
			want:     nil,
		},
		{
			name:     "single short token",
			text:     "calm",
			maxWidth: 100,
			want:     []string{"calm"},
		},
		{
			name:     "fits on one line",
			text:     "a quiet joy",
			maxWidth: 200,
			want:     []string{"a quiet joy"},
		},
		{
			name:     "breaks between tokens",
			text:     "a deep emotional state of longing",
			maxWidth: 150,
			want:     []string{"a deep", "emotional state", "of longing"},
		},
		{
			name:     "oversized token stands alone",
			text:     "an unpronounceablefeeling here",
			maxWidth: 80,
			want:     []string{"an", "unpronounceablefeeling", "here"},
		},
		{
			name:     "collapses runs of whitespace",
			text:     "slow   burning\n\nwarmth",
			maxWidth: 400,
			want:     []string{"slow burning warmth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapText(tt.text, tt.maxWidth, measureRunes)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrapText_NeverExceedsWidthExceptLoneTokens(t *testing.T) {
	text := "the bittersweet awareness of impermanence and the gentle sadness it brings"
	maxWidth := 120.0

	lines := WrapText(text, maxWidth, measureRunes)
	require.NotEmpty(t, lines)

	for _, line := range lines {
		if measureRunes(line) > maxWidth {
			assert.NotContains(t, line, " ", "only a lone oversized token may exceed maxWidth")
		}
	}

	// Reassembled lines preserve token order.
	assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
}

func testResult() word.Result {
	return word.Result{
		Word:          "saudade",
		Pronunciation: "sah-oo-DAH-jee",
		Origin:        "Portuguese",
		Definition:    "A deep emotional state of nostalgic longing.",
		Timestamp:     time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func textOps(ops []Op, style TextStyle) []Op {
	var out []Op
	for _, op := range ops {
		if op.Kind == OpText && op.Style == style {
			out = append(out, op)
		}
	}
	return out
}

func TestPlanner_Archive(t *testing.T) {
	p := NewPlanner(DefaultGeometry())
	p.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }

	ops := p.Archive(testResult(), fixedMeasure{})
	require.NotEmpty(t, ops)

	assert.Equal(t, OpBackground, ops[0].Kind)

	titles := textOps(ops, StyleTitle)
	require.Len(t, titles, 1)
	assert.Equal(t, cardTitle, titles[0].Text)

	var rules int
	for _, op := range ops {
		if op.Kind == OpRule {
			rules++
			assert.Equal(t, 60.0, op.X)
			assert.Equal(t, 740.0, op.X2)
		}
	}
	assert.Equal(t, 1, rules)

	words := textOps(ops, StyleWord)
	require.Len(t, words, 1)
	assert.Equal(t, "saudade", words[0].Text)
	assert.Equal(t, (800.0-70.0)/2, words[0].X) // 7 runes at width 10

	prons := textOps(ops, StylePronunciation)
	require.Len(t, prons, 1)
	assert.Equal(t, "/sah-oo-DAH-jee/", prons[0].Text)

	footers := textOps(ops, StyleFooter)
	require.Len(t, footers, 1)
	assert.Equal(t, "March 14, 2026", footers[0].Text)
	assert.Equal(t, 540.0, footers[0].Y)
}

func TestPlanner_Share(t *testing.T) {
	p := NewPlanner(DefaultGeometry())
	ops := p.Share(testResult(), fixedMeasure{})

	footers := textOps(ops, StyleFooter)
	require.Len(t, footers, 1)
	assert.Equal(t, attribution, footers[0].Text)
}

func TestPlanner_VariantsShareBodyLayout(t *testing.T) {
	p := NewPlanner(DefaultGeometry())
	p.now = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	res := testResult()

	archive := p.Archive(res, fixedMeasure{})
	share := p.Share(res, fixedMeasure{})
	require.Equal(t, len(archive), len(share))

	for i := range archive {
		if archive[i].Kind == OpText && archive[i].Style == StyleFooter {
			continue
		}
		assert.Equal(t, archive[i], share[i])
	}
}

func TestPlanner_OmitsEmptyPronunciation(t *testing.T) {
	res := testResult()
	res.Pronunciation = ""

	p := NewPlanner(DefaultGeometry())
	ops := p.Share(res, fixedMeasure{})

	assert.Empty(t, textOps(ops, StylePronunciation))
	assert.Len(t, textOps(ops, StyleOrigin), 1)
}

func TestPlanner_DefinitionLineSpacing(t *testing.T) {
	res := testResult()
	res.Definition = "one two three four five six seven eight nine ten eleven twelve thirteen fourteen"

	p := NewPlanner(DefaultGeometry())
	ops := p.Share(res, fixedMeasure{})

	defs := textOps(ops, StyleDefinition)
	require.Greater(t, len(defs), 1)

	for i := 1; i < len(defs); i++ {
		assert.Equal(t, defLineHeight, int(defs[i].Y-defs[i-1].Y))
	}
}

func TestPlanner_EmptyDefinitionYieldsNoLines(t *testing.T) {
	res := testResult()
	res.Definition = ""

	p := NewPlanner(DefaultGeometry())
	ops := p.Share(res, fixedMeasure{})

	assert.Empty(t, textOps(ops, StyleDefinition))
}
