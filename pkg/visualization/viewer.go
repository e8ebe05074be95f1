// Package visualization renders horizontal slices and surface maps of a
// 3-D column field to grayscale images for quick inspection of model
// state. File output only; there is no interactive viewer.
package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"

	"icesheet3d/pkg/field"
)

// Viewer renders 2-D views of one column field.
type Viewer struct {
	field *field.Column3D
}

// NewViewer creates a viewer for f.
func NewViewer(f *field.Column3D) *Viewer {
	return &Viewer{field: f}
}

// Render converts a 2-D field to a grayscale image, mapping the field's
// value range linearly onto [0, 65535]. A constant field renders black.
func Render(s *field.Scalar2D) image.Image {
	raw := s.Dense().RawMatrix()
	lo := floats.Min(raw.Data)
	hi := floats.Max(raw.Data)
	scale := 0.0
	if hi > lo {
		scale = 65535 / (hi - lo)
	}

	img := image.NewGray16(image.Rect(0, 0, raw.Rows, raw.Cols))
	for r := 0; r < raw.Rows; r++ {
		for c := 0; c < raw.Cols; c++ {
			v := raw.Data[r*raw.Stride+c]
			img.SetGray16(r, c, color.Gray16{Y: uint16((v - lo) * scale)})
		}
	}
	return img
}

// SliceImage renders the horizontal slice at level z.
func (v *Viewer) SliceImage(z float64) (image.Image, error) {
	s, err := v.field.HorizontalSlice(z)
	if err != nil {
		return nil, err
	}
	return Render(s), nil
}

// SurfaceImage renders the field's values at the upper surface given by
// the per-cell thickness field.
func (v *Viewer) SurfaceImage(thickness *field.Scalar2D) (image.Image, error) {
	s, err := v.field.Surface(thickness)
	if err != nil {
		return nil, err
	}
	return Render(s), nil
}

// SaveSlice writes the horizontal slice at level z to a PNG file.
func (v *Viewer) SaveSlice(z float64, path string) error {
	img, err := v.SliceImage(z)
	if err != nil {
		return err
	}
	return writePNG(img, path)
}

// SaveSliceSequence writes one PNG per level into dir, named by level
// index.
func (v *Viewer) SaveSliceSequence(levels []float64, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating slice directory: %w", err)
	}
	for n, z := range levels {
		path := filepath.Join(dir, fmt.Sprintf("slice_%03d.png", n))
		if err := v.SaveSlice(z, path); err != nil {
			return fmt.Errorf("error saving slice at z=%g: %w", z, err)
		}
	}
	return nil
}

func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating image file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("error encoding image: %w", err)
	}
	return nil
}
