package animation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ytget/prime-calculator/internal/model"
)

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		fps      int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{0, time.Second},
		{1000, time.Second / MaxFPS},
		{30, time.Second / 30},
	}

	for _, test := range tests {
		if result := FrameInterval(test.fps); result != test.expected {
			t.Errorf("FrameInterval(%d) = %s, expected %s", test.fps, result, test.expected)
		}
	}
}

func TestLoop_StopsOnCancel(t *testing.T) {
	e := NewEngine(fixedRandom{f: 0.99}, model.ThemeLight)
	surface := &recordingSurface{width: 800, height: 600}
	loop := NewLoop(e, surface, time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	var mu sync.Mutex
	frames := 0
	loop.SetFrameCallback(func([]model.Droplet) {
		mu.Lock()
		defer mu.Unlock()
		frames++
		if frames == 3 {
			cancel()
		}
	})

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Loop did not stop after cancellation")
	}

	mu.Lock()
	stopped := frames
	mu.Unlock()

	time.Sleep(20 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if frames != stopped {
		t.Errorf("Frames continued after Run returned: %d -> %d", stopped, frames)
	}
	if stopped < 3 {
		t.Errorf("Expected at least 3 frames, got %d", stopped)
	}
}

func TestLoop_PassesElapsedTime(t *testing.T) {
	e := NewEngine(fixedRandom{f: 0.001}, model.ThemeLight)
	surface := &recordingSurface{width: 800, height: 100000}
	loop := NewLoop(e, surface, time.Millisecond, nil)

	base := time.Unix(0, 0)
	calls := 0
	loop.now = func() time.Time {
		// start time first, then 11s later on every tick
		calls++
		return base.Add(time.Duration(calls-1) * 11 * time.Second)
	}

	ctx, cancel := context.WithCancel(context.Background())
	var first []model.Droplet
	loop.SetFrameCallback(func(droplets []model.Droplet) {
		if first == nil {
			first = droplets
		}
		cancel()
	})

	loop.Run(ctx)

	emoji := false
	for _, d := range first {
		if d.IsEmoji {
			emoji = true
		}
	}
	if !emoji {
		t.Errorf("Expected an emoji droplet once 11s elapsed, got %+v", first)
	}
}

func TestLoop_SkipsFramesAfterCancel(t *testing.T) {
	e := NewEngine(fixedRandom{f: 0.001}, model.ThemeLight)
	surface := &recordingSurface{width: 800, height: 100000}

	var mu sync.Mutex
	var queued []func()
	loop := NewLoop(e, surface, time.Millisecond, func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		queued = append(queued, fn)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(queued) == 0 {
		t.Fatal("Expected dispatched frames")
	}

	// frame work queued before teardown no longer draws
	for _, fn := range queued {
		fn()
	}
	if len(e.Droplets()) != 0 {
		t.Error("Expected frames run after cancellation to be skipped")
	}
	if surface.clears != 0 {
		t.Errorf("Expected no frames drawn, got %d clears", surface.clears)
	}
}

func TestNewLoop_Defaults(t *testing.T) {
	loop := NewLoop(NewEngine(nil, model.ThemeLight), nil, 0, nil)

	if loop.interval != FrameInterval(DefaultFPS) {
		t.Errorf("Expected default interval %s, got %s", FrameInterval(DefaultFPS), loop.interval)
	}

	ran := false
	loop.dispatch(func() { ran = true })
	if !ran {
		t.Error("Expected default dispatch to run synchronously")
	}
}
