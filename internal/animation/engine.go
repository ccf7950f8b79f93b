package animation

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ytget/prime-calculator/internal/model"
)

// PrimeNumbers is the payload table for numeric droplets
var PrimeNumbers = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139, 149, 151,
	157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223, 227, 229, 233,
	239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293,
}

// CheekyEmojis is the payload table for emoji droplets
var CheekyEmojis = []string{"😏", "🤓", "🧮", "✨", "🎯", "💫", "🚀", "⚡", "🔢", "🎨"}

// Random is the randomness the engine draws from. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Config holds the spawn and motion tuning of the engine
type Config struct {
	SpawnChance   float64       // per-tick chance of a numeric droplet
	EmojiChance   float64       // per-tick chance of an emoji droplet once the interval passed
	EmojiInterval time.Duration // minimum time between emoji droplets
	SpawnY        float64       // vertical start position, above the top edge
	MinSpeed      float64       // pixels per frame
	SpeedRange    float64       // speed is uniform in [MinSpeed, MinSpeed+SpeedRange)
	Overscan      float64       // droplets are kept until Y reaches height+Overscan
}

// DefaultConfig returns the standard background tuning
func DefaultConfig() Config {
	return Config{
		SpawnChance:   0.1,
		EmojiChance:   0.01,
		EmojiInterval: 10 * time.Second,
		SpawnY:        -20,
		MinSpeed:      1,
		SpeedRange:    2,
		Overscan:      20,
	}
}

// Engine owns the live droplets and advances them one frame at a time
type Engine struct {
	mu        sync.Mutex
	rng       Random
	cfg       Config
	mode      model.ThemeMode
	width     float64
	height    float64
	droplets  []model.Droplet
	nextID    int
	lastEmoji time.Duration
}

// NewEngine creates an engine drawing from rng; a nil rng is seeded from the clock
func NewEngine(rng Random, mode model.ThemeMode) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		rng:  rng,
		cfg:  DefaultConfig(),
		mode: mode,
	}
}

// SetConfig replaces the tuning; live droplets are kept
func (e *Engine) SetConfig(cfg Config) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
}

// SetThemeMode selects the palette for subsequent frames
func (e *Engine) SetThemeMode(mode model.ThemeMode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = mode
}

// Resize updates the spawn and retirement bounds without touching live droplets
func (e *Engine) Resize(width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.width = width
	e.height = height
}

// Bounds returns the current viewport size
func (e *Engine) Bounds() (width, height float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.width, e.height
}

// Droplets returns a copy of the live droplets
func (e *Engine) Droplets() []model.Droplet {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]model.Droplet(nil), e.droplets...)
}

// Advance renders one frame at timestamp now and returns the live droplets.
// The surface size is read first so a resized view takes effect immediately.
func (e *Engine) Advance(surface Surface, now time.Duration) []model.Droplet {
	e.mu.Lock()
	defer e.mu.Unlock()

	if surface != nil {
		if w, h := surface.Size(); w > 0 && h > 0 {
			e.width, e.height = w, h
		}
		surface.Clear()
	}

	if e.width > 0 {
		if e.rng.Float64() < e.cfg.SpawnChance {
			e.droplets = append(e.droplets, e.spawnLocked(false))
		}
		if now-e.lastEmoji > e.cfg.EmojiInterval && e.rng.Float64() < e.cfg.EmojiChance {
			e.droplets = append(e.droplets, e.spawnLocked(true))
			e.lastEmoji = now
		}
	}

	limit := e.height + e.cfg.Overscan
	kept := e.droplets[:0]
	for _, d := range e.droplets {
		d.Y += d.Speed
		if surface != nil {
			e.drawLocked(surface, d)
		}
		if d.Y < limit {
			kept = append(kept, d)
		}
	}
	e.droplets = kept

	return append([]model.Droplet(nil), e.droplets...)
}

// spawnLocked creates a droplet above the top edge at a random column
func (e *Engine) spawnLocked(emoji bool) model.Droplet {
	d := model.Droplet{
		ID:    e.nextID,
		X:     e.rng.Float64() * e.width,
		Y:     e.cfg.SpawnY,
		Speed: e.rng.Float64()*e.cfg.SpeedRange + e.cfg.MinSpeed,
		Value: PrimeNumbers[e.rng.Intn(len(PrimeNumbers))],
	}
	if emoji {
		d.IsEmoji = true
		d.Emoji = CheekyEmojis[e.rng.Intn(len(CheekyEmojis))]
	}
	e.nextID++
	return d
}

// drawLocked paints one droplet; numeric droplets flicker per frame
func (e *Engine) drawLocked(surface Surface, d model.Droplet) {
	if d.IsEmoji {
		surface.DrawText(d.Emoji, d.X, d.Y, EmojiFont, emojiColor(e.mode))
		return
	}
	opacity := e.rng.Float64()*PrimeOpacityFlicker + PrimeOpacityBase
	surface.DrawText(d.Text(), d.X, d.Y, PrimeFont, primeColor(e.mode, opacity))
}
