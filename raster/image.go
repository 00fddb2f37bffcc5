package raster

import (
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/gopad/ink"
)

// Image returns a copy of the surface as an image.NRGBA. The pixel data is
// stored unpremultiplied, matching the surface's color model.
func (s *Surface) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// EncodePNG writes the surface as PNG to the given writer. This is useful
// for streaming, network output, or custom storage.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.Image())
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	ink.Logger().Debug("raster: saving surface", "path", path)
	return png.Encode(f, s.Image())
}

// LoadPNG reads a PNG file into a new surface.
func LoadPNG(path string) (*Surface, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// LoadImage composites an existing image onto the whole surface, scaling
// it to the surface dimensions with Catmull-Rom resampling. It is the
// import counterpart to EncodePNG: a previously exported signature can be
// restored onto a surface of any size and drawn over.
func (s *Surface) LoadImage(img image.Image) {
	draw.CatmullRom.Scale(s, s.Bounds(), img, img.Bounds(), draw.Over, nil)
}

// FromImage creates a surface with the dimensions and content of img.
func FromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	s := NewSurface(bounds.Dx(), bounds.Dy())
	draw.Draw(s, s.Bounds(), img, bounds.Min, draw.Src)
	return s
}
