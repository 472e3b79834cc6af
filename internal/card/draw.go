package card

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw executes a plan onto a fresh RGBA image.
func Draw(ops []Op, geom Geometry, faces *FaceSet) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, geom.Width, geom.Height))

	for _, op := range ops {
		switch op.Kind {
		case OpBackground:
			draw.Draw(img, img.Bounds(), &image.Uniform{geom.Background}, image.Point{}, draw.Src)

		case OpRule:
			rule := image.Rect(int(op.X), int(op.Y), int(op.X2), int(op.Y)+2)
			draw.Draw(img, rule, &image.Uniform{geom.Muted}, image.Point{}, draw.Src)

		case OpText:
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(styleColor(op.Style, geom)),
				Face: faces.Face(op.Style),
				Dot:  fixed.P(int(op.X), int(op.Y)),
			}
			d.DrawString(op.Text)
		}
	}

	return img
}

// styleColor maps a text style onto the geometry's palette.
func styleColor(style TextStyle, geom Geometry) color.Color {
	switch style {
	case StyleWord:
		return geom.Accent
	case StyleTitle, StylePronunciation, StyleFooter:
		return geom.Muted
	default:
		return geom.Text
	}
}

// EncodePNG writes the image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SaveFile writes the image as a PNG file.
func SaveFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating card file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding card: %w", err)
	}
	return nil
}
