package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/prime-calculator/internal/animation"
	"github.com/ytget/prime-calculator/internal/model"
)

func TestCanvasSurface_PoolsText(t *testing.T) {
	test.NewApp()
	surface := NewCanvasSurface()
	font := model.FontSpec{Size: 16, Monospace: true}
	blue := color.NRGBA{R: 25, G: 118, B: 210, A: 255}

	surface.Clear()
	surface.DrawText("2", 10, 20, font, blue)
	surface.DrawText("3", 30, 40, font, blue)
	surface.DrawText("5", 50, 60, font, blue)
	surface.Flush()

	if surface.Visible() != 3 {
		t.Fatalf("Expected 3 visible texts, got %d", surface.Visible())
	}

	surface.Clear()
	surface.DrawText("7", 5, 6, model.FontSpec{Size: 20}, blue)
	surface.Flush()

	objects := surface.Object().(*fyne.Container).Objects
	if len(objects) != 3 {
		t.Fatalf("Expected pooled objects to be reused, got %d", len(objects))
	}

	first := objects[0].(*canvas.Text)
	if first.Text != "7" || first.TextSize != 20 || first.TextStyle.Monospace {
		t.Errorf("Expected reused text '7' at size 20, got '%s' at %v", first.Text, first.TextSize)
	}
	if first.Position() != fyne.NewPos(5, 6) {
		t.Errorf("Expected position (5,6), got %v", first.Position())
	}
	for _, obj := range objects[1:] {
		if obj.Visible() {
			t.Error("Expected leftover texts to be hidden")
		}
	}
}

func TestCanvasSurface_DrivenByEngine(t *testing.T) {
	test.NewApp()
	surface := NewCanvasSurface()
	surface.Object().Resize(fyne.NewSize(200, 100))

	width, height := surface.Size()
	if width != 200 || height != 100 {
		t.Fatalf("Expected size 200x100, got %vx%v", width, height)
	}

	engine := animation.NewEngine(nil, model.ThemeDark)
	cfg := animation.DefaultConfig()
	cfg.SpawnChance = 1
	engine.SetConfig(cfg)

	droplets := engine.Advance(surface, 0)
	surface.Flush()

	if len(droplets) == 0 {
		t.Fatal("Expected a droplet to spawn")
	}
	if surface.Visible() != len(droplets) {
		t.Errorf("Expected %d drawn texts, got %d", len(droplets), surface.Visible())
	}
}
