package confetti

import (
	"image"
	"image/draw"
	"math"
)

// Paint draws particles onto img. One surface unit spans scale pixels.
// Pixels are sampled at their centers; the image is not cleared first.
func Paint(img draw.Image, particles []Particle, scale float64) {
	if scale <= 0 {
		return
	}
	bounds := img.Bounds()

	for _, p := range particles {
		reach := p.Reach()
		minX := max(bounds.Min.X, int(math.Floor((p.X-reach)*scale)))
		maxX := min(bounds.Max.X-1, int(math.Ceil((p.X+reach)*scale)))
		minY := max(bounds.Min.Y, int(math.Floor((p.Y-reach)*scale)))
		maxY := min(bounds.Max.Y-1, int(math.Ceil((p.Y+reach)*scale)))

		for py := minY; py <= maxY; py++ {
			for px := minX; px <= maxX; px++ {
				if p.Covers((float64(px)+0.5)/scale, (float64(py)+0.5)/scale) {
					img.Set(px, py, p.Color)
				}
			}
		}
	}
}

// Frame paints particles onto a fresh transparent image of w by h pixels.
func Frame(particles []Particle, w, h int, scale float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	Paint(img, particles, scale)
	return img
}
