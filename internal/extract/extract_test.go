package extract

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnordt/wordfeel/internal/word"
)

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		want       word.Result
		wantReason string
	}{
		{
			name: "well-formed payload",
			raw:  `{"word":"saudade","pronunciation":"sah-oo-DAH-jee","origin":"Portuguese","definition":"A deep emotional state of nostalgic longing."}`,
			want: word.Result{
				Word:          "saudade",
				Pronunciation: "sah-oo-DAH-jee",
				Origin:        "Portuguese",
				Definition:    "A deep emotional state of nostalgic longing.",
				Source:        word.SourceParsed,
			},
		},
		{
			name: "payload wrapped in prose",
			raw:  `Here is your word: {"word":"hygge","pronunciation":"HOO-gah","origin":"Danish","definition":"A quality of cozy contentment."} Hope that helps!`,
			want: word.Result{
				Word:          "hygge",
				Pronunciation: "HOO-gah",
				Origin:        "Danish",
				Definition:    "A quality of cozy contentment.",
				Source:        word.SourceParsed,
			},
		},
		{
			name: "truncated completion recovers via fallback",
			raw:  `Sure! Here is the word: "word": "mono no aware", "definition": "the bittersweet awareness of impermanence`,
			want: word.Result{
				Word:       "mono no aware",
				Origin:     "Unknown",
				Definition: "the bittersweet awareness of impermanence",
				Source:     word.SourceRecovered,
			},
		},
		{
			name: "malformed span recovers via fallback",
			raw:  `{"word": "fernweh", "pronunciation": "FERN-vey", "origin": "German", "definition": "an ache for distant places",,,}`,
			want: word.Result{
				Word:          "fernweh",
				Pronunciation: "FERN-vey",
				Origin:        "German",
				Definition:    "an ache for distant places",
				Source:        word.SourceRecovered,
			},
		},
		{
			name: "missing optional fields default",
			raw:  `{"word":"limerence","definition":"An involuntary state of intense romantic infatuation."}`,
			want: word.Result{
				Word:       "limerence",
				Origin:     UnknownOrigin,
				Definition: "An involuntary state of intense romantic infatuation.",
				Source:     word.SourceParsed,
			},
		},
		{
			name: "missing definition defaults to generic sentence",
			raw:  `{"word":"dor","origin":"Romanian"}`,
			want: word.Result{
				Word:       "dor",
				Origin:     "Romanian",
				Definition: FallbackDefinition,
				Source:     word.SourceParsed,
			},
		},
		{
			name:       "refusal with no span and no fields",
			raw:        "I cannot help with that.",
			wantReason: ReasonNoSpan,
		},
		{
			name:       "span present but nothing recoverable",
			raw:        `{not json at all}`,
			wantReason: ReasonNoWord,
		},
		{
			name:       "parsed but empty word is rejected",
			raw:        `{"word":"","definition":"orphaned definition"}`,
			wantReason: ReasonEmpty,
		},
		{
			name:       "empty input",
			raw:        "",
			wantReason: ReasonNoSpan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(nil)
			got, err := e.Extract(tt.raw)

			if tt.wantReason != "" {
				require.Error(t, err)
				var extErr *ExtractionError
				require.ErrorAs(t, err, &extErr)
				assert.Equal(t, tt.wantReason, extErr.Reason)
				return
			}

			require.NoError(t, err)
			assert.WithinDuration(t, time.Now(), got.Timestamp, 5*time.Second)

			got.Timestamp = time.Time{}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractor_Extract_Idempotent(t *testing.T) {
	raw := `{"word":"saudade","pronunciation":"sah-oo-DAH-jee","origin":"Portuguese","definition":"A deep emotional state of nostalgic longing."}`

	e := New(nil)
	e.now = func() time.Time { return time.Unix(100, 0) }
	first, err := e.Extract(raw)
	require.NoError(t, err)

	e.now = func() time.Time { return time.Unix(200, 0) }
	second, err := e.Extract(raw)
	require.NoError(t, err)

	assert.NotEqual(t, first.Timestamp, second.Timestamp)
	first.Timestamp = time.Time{}
	second.Timestamp = time.Time{}
	assert.Equal(t, first, second)
}

func TestExtractor_Extract_HollowDefinitionDoesNotTriggerFallback(t *testing.T) {
	// The fallback tier fires only when the structured parse fails, not
	// when it succeeds with hollow values. The extra quoted definition in
	// the surrounding prose must be ignored.
	raw := `"definition": "decoy from the prose" {"word":"toska","definition":""}`

	e := New(nil)
	got, err := e.Extract(raw)
	require.NoError(t, err)

	assert.Equal(t, word.SourceParsed, got.Source)
	assert.Equal(t, FallbackDefinition, got.Definition)
}

func TestExtractor_Extract_HanPronunciation(t *testing.T) {
	raw := `{"word":"牵挂","origin":"Chinese","definition":"The constant pull of worry for someone far away."}`

	e := New(nil)
	got, err := e.Extract(raw)
	require.NoError(t, err)

	assert.NotEmpty(t, got.Pronunciation)
	assert.NotContains(t, got.Pronunciation, "牵")
}

func TestExtractionError_Error(t *testing.T) {
	err := error(&ExtractionError{Reason: ReasonNoSpan})
	assert.Equal(t, "extracting word: no structured span found", err.Error())

	var target *ExtractionError
	assert.True(t, errors.As(err, &target))
}
