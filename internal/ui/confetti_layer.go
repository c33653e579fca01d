package ui

import (
	"image"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/tartampluch/go-dob/internal/config"
	"github.com/tartampluch/go-dob/internal/confetti"
)

// confettiLayer is a transparent raster stacked above the window content.
// It implements confetti.Surface in Fyne units.
type confettiLayer struct {
	raster *canvas.Raster

	mu      sync.Mutex
	pending []confetti.Particle
	shown   []confetti.Particle
}

func newConfettiLayer() *confettiLayer {
	l := &confettiLayer{}
	l.raster = canvas.NewRaster(l.render)
	return l
}

// Size returns the raster size in Fyne units.
func (l *confettiLayer) Size() (float64, float64) {
	s := l.raster.Size()
	return float64(s.Width), float64(s.Height)
}

func (l *confettiLayer) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = l.pending[:0]
}

func (l *confettiLayer) Draw(p confetti.Particle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = append(l.pending, p)
}

// Present publishes the pending frame and schedules a repaint on the UI thread.
func (l *confettiLayer) Present() {
	l.mu.Lock()
	l.shown = append(l.shown[:0], l.pending...)
	l.mu.Unlock()

	fyne.Do(l.raster.Refresh)
}

// render is the raster generator. w and h are in pixels.
func (l *confettiLayer) render(w, h int) image.Image {
	l.mu.Lock()
	particles := make([]confetti.Particle, len(l.shown))
	copy(particles, l.shown)
	l.mu.Unlock()

	scale := 1.0
	if width := l.raster.Size().Width; width > 0 {
		scale = float64(w) / float64(width)
	}
	return confetti.Frame(particles, w, h, scale)
}

// animationTicker drives a confetti.Burst from a Fyne animation repeating forever.
type animationTicker struct {
	mu    sync.Mutex
	anim  *fyne.Animation
	armed atomic.Bool
	last  time.Time
}

// Start begins delivering frames to fn. Ticks issued while starting are dropped.
func (t *animationTicker) Start(fn func(dt float64)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.anim != nil {
		t.anim.Stop()
	}
	t.armed.Store(false)
	t.last = time.Now()

	t.anim = &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
		Tick: func(float32) {
			if !t.armed.Load() {
				return
			}
			now := time.Now()
			dt := float64(now.Sub(t.last)) / float64(config.FrameInterval)
			t.last = now
			fn(dt)
		},
	}
	t.anim.Start()
	t.armed.Store(true)
}

// Stop halts the animation.
func (t *animationTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.armed.Store(false)
	if t.anim != nil {
		t.anim.Stop()
		t.anim = nil
	}
}
