package animation

import (
	"image/color"

	"github.com/ytget/prime-calculator/internal/model"
)

// Surface is the drawing target the engine paints each frame onto.
type Surface interface {
	Clear()
	DrawText(text string, x, y float64, font model.FontSpec, c color.NRGBA)
	Size() (width, height float64)
}
