package confetti

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tartampluch/go-dob/internal/config"
)

// Surface is the drawing target of a Burst. Each frame is Clear, one Draw per particle,
// then Present. Surfaces must not call back into the Burst.
type Surface interface {
	// Size returns the drawable area in surface units.
	Size() (width, height float64)
	Clear()
	Draw(p Particle)
	Present()
}

// TickSource calls fn once per display frame while started.
// dt is the elapsed time since the previous call, in frames of config.FrameInterval.
// Start and Stop must not call fn synchronously.
type TickSource interface {
	Start(fn func(dt float64))
	Stop()
}

// Timer is the handle of a scheduled callback.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d. It must not run f synchronously.
type AfterFunc func(d time.Duration, f func()) Timer

func wallClock(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Options injects the non-deterministic collaborators of a Burst.
type Options struct {
	// Rand drives spawning. Nil seeds a PCG from BurstSettings.Seed, or randomly when 0.
	Rand *rand.Rand

	// AfterFunc schedules the hard timeout. Nil means time.AfterFunc.
	AfterFunc AfterFunc
}

// Burst is a time-bounded confetti simulation: Idle until Spawn, Running until its
// timeout fires, then Idle again. At most one burst runs at a time.
//
// Ticks and the timeout may arrive on different goroutines.
type Burst struct {
	surface   Surface
	ticker    TickSource
	afterFunc AfterFunc
	rng       *rand.Rand
	physics   Physics
	duration  time.Duration
	margin    float64
	palette   []colorful.Color

	mu        sync.Mutex
	running   bool
	id        string
	particles []Particle
	timer     Timer
	gen       uint64
}

// NewBurst wires a Burst to its surface and tick source.
// A nil surface or ticker yields a Burst whose operations are all no-ops.
func NewBurst(surface Surface, ticker TickSource, s config.BurstSettings, opts Options) (*Burst, error) {
	palette, err := ParsePalette(s.Palette)
	if err != nil {
		return nil, err
	}

	rng := opts.Rand
	if rng == nil {
		seed := s.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	after := opts.AfterFunc
	if after == nil {
		after = wallClock
	}

	if surface == nil || ticker == nil {
		slog.Debug(config.MsgBurstNoSurface,
			config.LogKeyComponent, config.CompConfetti,
		)
		surface, ticker = nil, nil
	}

	return &Burst{
		surface:   surface,
		ticker:    ticker,
		afterFunc: after,
		rng:       rng,
		physics:   Physics{Gravity: s.Gravity},
		duration:  s.Duration,
		margin:    s.CullMargin,
		palette:   palette,
	}, nil
}

// Spawn starts a burst of count particles and reports whether it did.
// It does nothing while a burst is running, without a surface, or for count <= 0.
func (b *Burst) Spawn(count int) bool {
	if b == nil || b.surface == nil || count <= 0 {
		return false
	}
	count = min(count, config.MaxBurstParticles)

	b.mu.Lock()
	if b.running {
		id := b.id
		b.mu.Unlock()
		slog.Debug(config.MsgBurstBusy,
			config.LogKeyComponent, config.CompConfetti,
			config.LogKeyBurstID, id,
		)
		return false
	}

	width, _ := b.surface.Size()
	b.particles = make([]Particle, count)
	for i := range b.particles {
		b.particles[i] = b.newParticle(width)
	}

	b.running = true
	b.id = uuid.NewString()
	b.gen++
	gen := b.gen
	b.timer = b.afterFunc(b.duration, func() { b.expire(gen) })
	b.ticker.Start(b.tick)
	id := b.id
	b.mu.Unlock()

	slog.Info(config.MsgBurstStart,
		config.LogKeyComponent, config.CompConfetti,
		config.LogKeyBurstID, id,
		config.LogKeyParticles, count,
		config.LogKeyDuration, b.duration.Milliseconds(),
	)
	return true
}

// Stop ends a running burst early, as the timeout would.
func (b *Burst) Stop() {
	if b == nil || b.surface == nil {
		return
	}

	b.mu.Lock()
	gen := b.gen
	if b.timer != nil {
		b.timer.Stop()
	}
	b.mu.Unlock()

	b.expire(gen)
}

// Running reports whether a burst is in progress.
func (b *Burst) Running() bool {
	if b == nil {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// Particles returns a copy of the live particle set.
func (b *Burst) Particles() []Particle {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Particle, len(b.particles))
	copy(out, b.particles)
	return out
}

// tick advances the simulation by dt frames and redraws the whole surface.
func (b *Burst) tick(dt float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return
	}

	_, height := b.surface.Size()
	b.particles = b.physics.Advance(b.particles, dt, height+b.margin)

	b.surface.Clear()
	for _, p := range b.particles {
		b.surface.Draw(p)
	}
	b.surface.Present()
}

// expire moves the burst of generation gen back to Idle. Stale timers are ignored.
func (b *Burst) expire(gen uint64) {
	b.mu.Lock()
	if !b.running || gen != b.gen {
		b.mu.Unlock()
		return
	}

	remaining := len(b.particles)
	id := b.id
	b.running = false
	b.particles = nil
	b.timer = nil
	b.ticker.Stop()
	b.surface.Clear()
	b.surface.Present()
	b.mu.Unlock()

	slog.Info(config.MsgBurstStop,
		config.LogKeyComponent, config.CompConfetti,
		config.LogKeyBurstID, id,
		config.LogKeyParticles, remaining,
	)
}

func (b *Burst) newParticle(width float64) Particle {
	r := b.rng
	return Particle{
		X:        r.Float64() * width,
		Y:        -config.SpawnOffsetY - r.Float64()*config.SpawnBandY,
		VX:       (r.Float64() - 0.5) * config.SpawnSpeedX,
		VY:       r.Float64()*config.SpawnSpeedY + config.SpawnSpeedMin,
		Size:     r.Float64()*config.SpawnSizeSpan + config.SpawnSizeMin,
		Rotation: r.Float64() * config.FullTurnDeg,
		Spin:     (r.Float64() - 0.5) * config.SpawnSpin,
		Color:    b.palette[r.IntN(len(b.palette))],
	}
}
