// Package card plans and draws shareable word cards.
//
// Planning is pure: a plan is an ordered sequence of draw operations
// computed from a result, a geometry, and a measurement capability.
// Executing a plan against an image is a separate step.
package card

import (
	"image/color"
	"strings"
	"time"

	"github.com/hnordt/wordfeel/internal/word"
)

// MeasureFunc reports the rendered width of a string in pixels.
type MeasureFunc func(text string) float64

// TextStyle selects the face and color a text op is drawn with.
type TextStyle int

const (
	StyleTitle TextStyle = iota
	StyleWord
	StylePronunciation
	StyleOrigin
	StyleDefinition
	StyleFooter
)

// Measurer measures text per style. The planner trusts its measurer;
// non-finite or negative widths are not defended against.
type Measurer interface {
	Width(style TextStyle, text string) float64
}

// OpKind is the type of a draw operation.
type OpKind int

const (
	OpBackground OpKind = iota
	OpRule
	OpText
)

// Op is a single positioned draw operation. Text ops use X, Y as the
// baseline origin; rule ops run horizontally from X to X2 at Y.
type Op struct {
	Kind  OpKind
	X     float64
	Y     float64
	X2    float64
	Text  string
	Style TextStyle
}

// Geometry is the fixed card configuration.
type Geometry struct {
	Width      int
	Height     int
	Padding    int
	Background color.Color
	Text       color.Color
	Accent     color.Color
	Muted      color.Color
}

// DefaultGeometry returns the standard 800x600 card.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:      800,
		Height:     600,
		Padding:    60,
		Background: color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff},
		Text:       color.RGBA{R: 0xf1, G: 0xfa, B: 0xee, A: 0xff},
		Accent:     color.RGBA{R: 0xff, G: 0xe6, B: 0x6d, A: 0xff},
		Muted:      color.RGBA{R: 0x8a, G: 0x8a, B: 0x9e, A: 0xff},
	}
}

// Fixed vertical layout. These offsets are part of the card's visual
// identity and are identical for both variants.
const (
	titleOffset   = 24  // baseline below top padding
	ruleOffset    = 40  // rule below top padding
	wordDrop      = 40  // word baseline above vertical center
	pronDrop      = 0   // pronunciation baseline at vertical center
	originDrop    = 30  // origin baseline below vertical center
	defStartDrop  = 80  // first definition line below vertical center
	defLineHeight = 24
)

const (
	cardTitle   = "a word for the feeling"
	attribution = "found with wordfeel"
)

// Planner builds draw plans for a fixed geometry.
type Planner struct {
	geom Geometry
	now  func() time.Time
}

// NewPlanner creates a planner for the given geometry.
func NewPlanner(geom Geometry) *Planner {
	return &Planner{geom: geom, now: time.Now}
}

// Archive plans the personal-archive variant: the footer carries the date.
func (p *Planner) Archive(res word.Result, m Measurer) []Op {
	return p.plan(res, m, p.now().Format("January 2, 2006"))
}

// Share plans the social-share variant: the footer carries the
// attribution line instead of a date.
func (p *Planner) Share(res word.Result, m Measurer) []Op {
	return p.plan(res, m, attribution)
}

func (p *Planner) plan(res word.Result, m Measurer, footer string) []Op {
	w := float64(p.geom.Width)
	h := float64(p.geom.Height)
	pad := float64(p.geom.Padding)
	mid := h / 2

	ops := []Op{{Kind: OpBackground}}

	centered := func(style TextStyle, text string, y float64) Op {
		return Op{
			Kind:  OpText,
			X:     (w - m.Width(style, text)) / 2,
			Y:     y,
			Text:  text,
			Style: style,
		}
	}

	ops = append(ops, centered(StyleTitle, cardTitle, pad+titleOffset))
	ops = append(ops, Op{Kind: OpRule, X: pad, Y: pad + ruleOffset, X2: w - pad})

	ops = append(ops, centered(StyleWord, res.Word, mid-wordDrop))

	if res.Pronunciation != "" {
		ops = append(ops, centered(StylePronunciation, "/"+res.Pronunciation+"/", mid-pronDrop))
	}
	ops = append(ops, centered(StyleOrigin, res.Origin, mid+originDrop))

	maxWidth := w - 2*pad
	lines := WrapText(res.Definition, maxWidth, func(s string) float64 {
		return m.Width(StyleDefinition, s)
	})
	for i, line := range lines {
		ops = append(ops, centered(StyleDefinition, line, mid+defStartDrop+float64(i)*defLineHeight))
	}

	ops = append(ops, centered(StyleFooter, footer, h-pad))

	return ops
}

// WrapText packs whitespace-separated tokens into lines no wider than
// maxWidth, breaking only between tokens. A single token wider than
// maxWidth becomes its own line and is never split. Empty text yields
// no lines.
func WrapText(text string, maxWidth float64, measure MeasureFunc) []string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	var lines []string
	var buf string

	for _, tok := range tokens {
		candidate := tok
		if buf != "" {
			candidate = buf + " " + tok
		}
		if measure(candidate) > maxWidth && buf != "" {
			lines = append(lines, buf)
			buf = tok
			continue
		}
		buf = candidate
	}
	if buf != "" {
		lines = append(lines, buf)
	}

	return lines
}
