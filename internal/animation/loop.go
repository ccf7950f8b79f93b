package animation

import (
	"context"
	"log"
	"time"

	"github.com/ytget/prime-calculator/internal/model"
)

// Frame rate settings
const (
	DefaultFPS = 60
	MinFPS     = 1
	MaxFPS     = 120
)

// FrameInterval converts a frame rate to a tick interval, clamping fps to [MinFPS, MaxFPS]
func FrameInterval(fps int) time.Duration {
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	return time.Second / time.Duration(fps)
}

// Loop drives an Engine from a ticker until its context is cancelled
type Loop struct {
	engine   *Engine
	surface  Surface
	interval time.Duration
	dispatch func(func())          // runs frame work on the thread owning the surface
	onFrame  func([]model.Droplet) // optional per-frame observer
	now      func() time.Time      // clock, replaced in tests
}

// NewLoop creates a loop. A nil dispatch runs frames on the loop goroutine.
func NewLoop(engine *Engine, surface Surface, interval time.Duration, dispatch func(func())) *Loop {
	if interval <= 0 {
		interval = FrameInterval(DefaultFPS)
	}
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}
	return &Loop{
		engine:   engine,
		surface:  surface,
		interval: interval,
		dispatch: dispatch,
		now:      time.Now,
	}
}

// SetFrameCallback sets a callback receiving the live droplets after each frame
func (l *Loop) SetFrameCallback(callback func([]model.Droplet)) {
	l.onFrame = callback
}

// Run ticks until ctx is done and returns the context error.
// Each tick passes the time elapsed since Run started to Engine.Advance.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	start := l.now()
	log.Printf("Droplet animation started: interval=%s", l.interval)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Droplet animation stopped: %v", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			elapsed := l.now().Sub(start)
			l.dispatch(func() {
				if ctx.Err() != nil {
					return
				}
				droplets := l.engine.Advance(l.surface, elapsed)
				if l.onFrame != nil {
					l.onFrame(droplets)
				}
			})
		}
	}
}
