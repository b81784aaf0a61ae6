// Package texture generates the procedural images the renderer uploads as textures.
package texture

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/noise"
	"github.com/pkg/errors"
)

// Noise settings for the ground. Grain is how much of the noise shows through the tint:
// 0 is a flat tint, 1 is the tint fully multiplied by the noise.
const (
	GroundFrequency = 0.8
	GroundGrain     = 0.35
)

// Ground returns a size x size texture of the tint mottled with Perlin noise. Every pixel
// is opaque and no brighter than the tint.
func Ground(size int, tint color.Color) (*image.RGBA, error) {
	if size <= 0 {
		return nil, errors.Errorf("ground texture size %d must be positive", size)
	}
	solid := Solid(size, size, tint)
	perlin := noise.GeneratePerlin(size, size, GroundFrequency)
	return blend.Opacity(solid, blend.Multiply(solid, perlin), GroundGrain), nil
}

// Solid returns an opaque w x h image filled with c.
func Solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	rgba.A = 0xff
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = rgba.R
		img.Pix[i+1] = rgba.G
		img.Pix[i+2] = rgba.B
		img.Pix[i+3] = rgba.A
	}
	return img
}
