// Package word provides the core types for found words.
package word

import "time"

// Source indicates which extraction tier produced a result.
type Source string

const (
	SourceParsed    Source = "parsed"    // Strict JSON parse of the structured span
	SourceRecovered Source = "recovered" // Per-field pattern recovery from raw text
)

// Result is a single word found for a described feeling.
// A result is immutable once created; validity requires a non-empty
// word and a non-empty definition.
type Result struct {
	Word          string    `yaml:"word" json:"word"`
	Pronunciation string    `yaml:"pronunciation,omitempty" json:"pronunciation,omitempty"` // Phonetic transcription, free-form
	Origin        string    `yaml:"origin" json:"origin"`                                   // Language or culture of origin
	Definition    string    `yaml:"definition" json:"definition"`
	Query         string    `yaml:"query,omitempty" json:"query,omitempty"` // The feeling description that produced this word, set by the caller
	Source        Source    `yaml:"source,omitempty" json:"source,omitempty"`
	Timestamp     time.Time `yaml:"timestamp" json:"timestamp"` // Display ordering only
}

// Valid reports whether the result carries both a word and a definition.
func (r Result) Valid() bool {
	return r.Word != "" && r.Definition != ""
}
