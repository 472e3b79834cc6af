package card

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Face sizes per style.
const (
	sizeTitle         = 20
	sizeWord          = 44
	sizePronunciation = 22
	sizeOrigin        = 18
	sizeDefinition    = 20
	sizeFooter        = 16
)

// FaceSet holds the font faces used for drawing and measuring card text.
// It implements Measurer.
type FaceSet struct {
	faces map[TextStyle]font.Face
}

// NewFaceSet builds faces from the embedded Go fonts. The word face is
// bold; everything else is regular.
func NewFaceSet() (*FaceSet, error) {
	regular, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}

	face := func(f *truetype.Font, size float64) font.Face {
		return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72})
	}

	return &FaceSet{
		faces: map[TextStyle]font.Face{
			StyleTitle:         face(regular, sizeTitle),
			StyleWord:          face(bold, sizeWord),
			StylePronunciation: face(regular, sizePronunciation),
			StyleOrigin:        face(regular, sizeOrigin),
			StyleDefinition:    face(regular, sizeDefinition),
			StyleFooter:        face(regular, sizeFooter),
		},
	}, nil
}

// Face returns the font face for a style.
func (fs *FaceSet) Face(style TextStyle) font.Face {
	return fs.faces[style]
}

// Width reports the rendered width of text in pixels for a style.
func (fs *FaceSet) Width(style TextStyle, text string) float64 {
	return float64(font.MeasureString(fs.Face(style), text)) / 64
}
