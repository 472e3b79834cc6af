// Package extract recovers structured word data from free-form model completions.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	gopinyin "github.com/mozillazg/go-pinyin"

	"github.com/hnordt/wordfeel/internal/word"
)

// Normalization defaults applied after either extraction tier.
const (
	UnknownOrigin      = "Unknown origin"
	RecoveredOrigin    = "Unknown" // Fallback tier stamps this before normalization
	FallbackDefinition = "A feeling that resists definition."
)

// Extraction failure reasons.
const (
	ReasonNoSpan = "no structured span found"
	ReasonNoWord = "no word field recoverable"
	ReasonEmpty  = "empty word after normalization"
)

// ExtractionError is returned when no usable word can be recovered
// from a completion.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "extracting word: " + e.Reason
}

// payload mirrors the JSON object the model is instructed to return.
type payload struct {
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation"`
	Origin        string `json:"origin"`
	Definition    string `json:"definition"`
}

// Field recovery patterns for the fallback tier. The definition pattern
// matches lazily up to the next quote or end of input, so a truncated
// completion with an unterminated value still yields its text.
var (
	wordPattern   = regexp.MustCompile(`"word"\s*:\s*"([^"]+)"`)
	pronPattern   = regexp.MustCompile(`"pronunciation"\s*:\s*"([^"]+)"`)
	originPattern = regexp.MustCompile(`"origin"\s*:\s*"([^"]+)"`)
	defPattern    = regexp.MustCompile(`"definition"\s*:\s*"([^"]*?)(?:"|$)`)
)

// Extractor turns raw completion text into a word.Result.
type Extractor struct {
	logger *log.Logger
	now    func() time.Time
}

// New creates an extractor. The logger may be nil.
func New(logger *log.Logger) *Extractor {
	return &Extractor{
		logger: logger,
		now:    time.Now,
	}
}

// Extract locates a structured span in raw completion text and parses it,
// falling back to per-field pattern recovery when the span is malformed
// or missing. It fails with an ExtractionError when no word can be found.
//
// The span locator takes the first "{" through the last "}" in the text.
// This is deliberately not a balanced-brace parse; the fallback tier
// compensates for its imprecision.
func (e *Extractor) Extract(raw string) (word.Result, error) {
	first := strings.Index(raw, "{")
	last := strings.LastIndex(raw, "}")
	hasSpan := first >= 0 && last > first

	var p payload
	var src word.Source

	if hasSpan {
		span := raw[first : last+1]
		if err := json.Unmarshal([]byte(span), &p); err == nil {
			src = word.SourceParsed
		} else {
			e.debugf("structured parse failed, recovering fields: %v", err)
		}
	}

	if src != word.SourceParsed {
		recovered, ok := recoverFields(raw)
		if !ok {
			if !hasSpan {
				return word.Result{}, &ExtractionError{Reason: ReasonNoSpan}
			}
			return word.Result{}, &ExtractionError{Reason: ReasonNoWord}
		}
		p = recovered
		src = word.SourceRecovered
	}

	res := word.Result{
		Word:          p.Word,
		Pronunciation: p.Pronunciation,
		Origin:        p.Origin,
		Definition:    p.Definition,
		Source:        src,
	}

	if res.Origin == "" {
		res.Origin = UnknownOrigin
	}
	if res.Definition == "" {
		res.Definition = FallbackDefinition
	}
	if res.Pronunciation == "" {
		res.Pronunciation = hanPronunciation(res.Word)
	}

	if !res.Valid() {
		return word.Result{}, &ExtractionError{Reason: ReasonEmpty}
	}

	res.Timestamp = e.now()

	e.debugf("extracted %q via %s tier", res.Word, src)
	return res, nil
}

// recoverFields runs the per-field patterns against the entire raw text.
// First match wins for every field; only the word is required.
func recoverFields(raw string) (payload, bool) {
	var p payload

	m := wordPattern.FindStringSubmatch(raw)
	if m == nil {
		return payload{}, false
	}
	p.Word = m[1]

	if m := pronPattern.FindStringSubmatch(raw); m != nil {
		p.Pronunciation = m[1]
	}

	p.Origin = RecoveredOrigin
	if m := originPattern.FindStringSubmatch(raw); m != nil {
		p.Origin = m[1]
	}

	if m := defPattern.FindStringSubmatch(raw); m != nil {
		p.Definition = m[1]
	}

	return p, true
}

// hanPronunciation derives a tone-marked reading for words written in
// Han characters when the model supplied none.
func hanPronunciation(w string) string {
	if !containsHan(w) {
		return ""
	}

	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone

	syllables := gopinyin.LazyPinyin(w, args)
	if len(syllables) == 0 {
		return ""
	}
	return strings.Join(syllables, " ")
}

func containsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

func (e *Extractor) debugf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Debugf(format, args...)
	}
}
