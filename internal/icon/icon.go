// Package icon draws the client's window icon. The generated image is
// used when the configured icon file cannot be loaded and is what
// cmd/genicon writes to assets/textures/icon.png.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// Palette is the icon's colour scheme.
var Palette = struct {
	Ground  color.NRGBA
	Border  color.NRGBA
	Colony  color.NRGBA
	Outline color.NRGBA
}{
	Ground:  color.NRGBA{77, 128, 77, 255},  // Scene ground green
	Border:  color.NRGBA{40, 40, 40, 255},   // Dark frame
	Colony:  color.NRGBA{220, 180, 60, 255}, // Gold disc
	Outline: color.NRGBA{120, 90, 20, 255},
}

// Generate draws a size×size icon: a framed ground tile with a disc in the
// middle. Sizes below 8 are raised to 8.
func Generate(size int) *image.NRGBA {
	if size < 8 {
		size = 8
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{Palette.Ground}, image.Point{}, draw.Src)

	border := size / 16
	if border < 1 {
		border = 1
	}
	for i := 0; i < border; i++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, i, Palette.Border)
			img.SetNRGBA(x, size-1-i, Palette.Border)
		}
		for y := 0; y < size; y++ {
			img.SetNRGBA(i, y, Palette.Border)
			img.SetNRGBA(size-1-i, y, Palette.Border)
		}
	}

	// Disc, measured from pixel centres.
	c := float64(size-1) / 2
	radius := float64(size) / 4
	for y := border; y < size-border; y++ {
		for x := border; x < size-border; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			distSq := dx*dx + dy*dy
			switch {
			case distSq <= radius*radius:
				img.SetNRGBA(x, y, Palette.Colony)
			case distSq <= (radius+1)*(radius+1):
				img.SetNRGBA(x, y, Palette.Outline)
			}
		}
	}
	return img
}

// Set returns icons at the sizes window managers commonly ask for.
func Set() []image.Image {
	return []image.Image{Generate(16), Generate(32), Generate(48)}
}

// SavePNG writes img to path, creating the parent directory.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create icon directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create icon file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode icon: %w", err)
	}
	return file.Close()
}
