package tui

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-dob/internal/config"
	"github.com/tartampluch/go-dob/internal/confetti"
)

// Strip glyphs by orientation, one per 45 degrees.
var glyphs = []rune{'─', '╲', '│', '╱'}

// cellSurface maps confetti surface units onto a grid of terminal cells.
type cellSurface struct {
	mu      sync.Mutex
	cols    int
	rows    int
	pending []confetti.Particle
	shown   []confetti.Particle
}

func newCellSurface(cols, rows int) *cellSurface {
	return &cellSurface{cols: cols, rows: rows}
}

// Resize changes the grid width. It takes effect for the next burst.
func (s *cellSurface) Resize(cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cols > 0 {
		s.cols = cols
	}
}

func (s *cellSurface) Size() (float64, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return float64(s.cols) * config.TUICellWidth, float64(s.rows) * config.TUICellHeight
}

func (s *cellSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = s.pending[:0]
}

func (s *cellSurface) Draw(p confetti.Particle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, p)
}

func (s *cellSurface) Present() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = append(s.shown[:0], s.pending...)
}

// Empty reports whether the last presented frame had no particles.
func (s *cellSurface) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shown) == 0
}

// Render draws the last presented frame. Later particles cover earlier ones.
func (s *cellSurface) Render() string {
	s.mu.Lock()
	cols, rows := s.cols, s.rows
	particles := make([]confetti.Particle, len(s.shown))
	copy(particles, s.shown)
	s.mu.Unlock()

	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	for _, p := range particles {
		if p.X < 0 || p.Y < 0 {
			continue
		}
		c := int(p.X / config.TUICellWidth)
		r := int(p.Y / config.TUICellHeight)
		if c >= cols || r >= rows {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color.Hex()))
		grid[r][c] = style.Render(string(glyph(p.Rotation)))
	}

	lines := make([]string, rows)
	for r, row := range grid {
		lines[r] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

func glyph(rotation float64) rune {
	deg := math.Mod(rotation, 180)
	if deg < 0 {
		deg += 180
	}
	return glyphs[int((deg+22.5)/45)%len(glyphs)]
}

// frameMsg carries the instant of a terminal frame.
type frameMsg time.Time

// msgTicker is a confetti.TickSource fed by frameMsg. The model forwards every frame
// through Frame while the ticker is started.
type msgTicker struct {
	mu     sync.Mutex
	fn     func(dt float64)
	last   time.Time
	active bool
}

func (t *msgTicker) Start(fn func(dt float64)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fn = fn
	t.last = time.Time{}
	t.active = true
}

func (t *msgTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fn = nil
	t.active = false
}

// Active reports whether frames are wanted.
func (t *msgTicker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Frame delivers one frame at now and reports whether more are wanted.
// The first frame after Start advances by one reference frame.
func (t *msgTicker) Frame(now time.Time) bool {
	t.mu.Lock()
	if !t.active {
		t.mu.Unlock()
		return false
	}
	dt := 1.0
	if !t.last.IsZero() {
		dt = float64(now.Sub(t.last)) / float64(config.FrameInterval)
	}
	t.last = now
	fn := t.fn
	t.mu.Unlock()

	if dt > 0 {
		fn(dt)
	}
	return t.Active()
}
