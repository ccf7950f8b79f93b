package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/prime-calculator/internal/animation"
	"github.com/ytget/prime-calculator/internal/model"
)

// CanvasSurface draws droplet text onto a Fyne container.
// Text objects are pooled across frames; call Flush after each frame.
type CanvasSurface struct {
	mu    sync.Mutex
	root  *fyne.Container
	texts []*canvas.Text
	used  int
}

var _ animation.Surface = (*CanvasSurface)(nil)

// NewCanvasSurface creates an empty surface
func NewCanvasSurface() *CanvasSurface {
	return &CanvasSurface{root: container.NewWithoutLayout()}
}

// Object returns the canvas object to place behind the calculator
func (s *CanvasSurface) Object() fyne.CanvasObject {
	return s.root
}

// Clear starts a new frame
func (s *CanvasSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.used = 0
}

// DrawText places text at x, y with the given font and color
func (s *CanvasSurface) DrawText(text string, x, y float64, font model.FontSpec, c color.NRGBA) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t *canvas.Text
	if s.used < len(s.texts) {
		t = s.texts[s.used]
	} else {
		t = canvas.NewText("", c)
		s.texts = append(s.texts, t)
		s.root.Add(t)
	}
	s.used++

	t.Text = text
	t.Color = c
	t.TextSize = font.Size
	t.TextStyle = fyne.TextStyle{Monospace: font.Monospace}
	t.Move(fyne.NewPos(float32(x), float32(y)))
	t.Resize(t.MinSize())
	t.Show()
}

// Size returns the drawable area
func (s *CanvasSurface) Size() (float64, float64) {
	size := s.root.Size()
	return float64(size.Width), float64(size.Height)
}

// Flush hides pooled text left over from earlier frames and refreshes the surface
func (s *CanvasSurface) Flush() {
	s.mu.Lock()
	for _, t := range s.texts[s.used:] {
		t.Hide()
	}
	s.mu.Unlock()

	s.root.Refresh()
}

// Visible returns the number of text objects drawn in the last frame
func (s *CanvasSurface) Visible() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used
}
