package render

import (
	"image"
	"image/color"
	"math"
)

// vignetteMask is a white square whose alpha rises from the clear center to
// opaque corners. It is stretched over the screen and tinted at draw time.
func vignetteMask(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size-1) / 2
	maxDist := math.Hypot(c, c)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c) / maxDist
			a := smoothstep(0.35, 1, d)
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(math.Round(a * 255))})
		}
	}
	return img
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := math.Max(0, math.Min(1, (x-edge0)/(edge1-edge0)))
	return t * t * (3 - 2*t)
}
