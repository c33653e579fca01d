package confetti

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tartampluch/go-dob/internal/config"
)

// Particle is one confetti strip. Positions are in surface units with the origin at the
// top-left corner and Y growing downwards. Velocities are per frame.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Rotation float64 // Degrees.
	Spin     float64 // Degrees per frame.
	Color    colorful.Color
}

// Physics holds the constants of the step function.
type Physics struct {
	Gravity float64
}

// DefaultPhysics is the physics used by Advance.
var DefaultPhysics = Physics{Gravity: config.DefaultBurstGravity}

// Advance steps particles by dt frames with DefaultPhysics.
func Advance(particles []Particle, dt, bottom float64) []Particle {
	return DefaultPhysics.Advance(particles, dt, bottom)
}

// Advance returns the particles moved by dt frames. Particles reaching bottom are dropped.
// The input slice is left untouched.
func (ph Physics) Advance(particles []Particle, dt, bottom float64) []Particle {
	out := make([]Particle, 0, len(particles))
	for _, p := range particles {
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VY += ph.Gravity * dt
		p.Rotation += p.Spin * dt

		if p.Y >= bottom {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Covers reports whether the point (x, y) lies on the strip.
// The strip is Size wide and Size*ParticleAspect tall, anchored so that its rotation
// center sits half a Size below its top edge.
func (p Particle) Covers(x, y float64) bool {
	dx, dy := x-p.X, y-p.Y
	sin, cos := math.Sincos(p.Rotation * math.Pi / 180)

	// Rotate the point back into the strip's frame.
	lx := dx*cos + dy*sin
	ly := -dx*sin + dy*cos

	half := p.Size / 2
	return lx >= -half && lx <= half && ly >= -half && ly <= -half+p.Size*config.ParticleAspect
}

// Reach is the radius around (X, Y) that contains the whole strip at any rotation.
func (p Particle) Reach() float64 {
	return p.Size * math.Sqrt2 / 2
}

// ParsePalette converts hex colors into colorful.Color values.
func ParsePalette(hexes []string) ([]colorful.Color, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("%s: empty palette", config.ErrSettingsInvalid)
	}

	palette := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("%s: palette color %q: %w", config.ErrSettingsInvalid, h, err)
		}
		palette = append(palette, c)
	}
	return palette, nil
}
