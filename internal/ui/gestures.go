package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// IsSwipe reports whether g is a swipe in any direction
func (g GestureType) IsSwipe() bool {
	return g == GestureSwipeLeft || g == GestureSwipeRight || g == GestureSwipeUp || g == GestureSwipeDown
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// ClassifyGesture maps a press duration and movement to a gesture.
// Movement past swipeThreshold wins over a long hold.
func ClassifyGesture(duration time.Duration, dx, dy, swipeThreshold float32, longPress time.Duration) GestureType {
	if dx*dx+dy*dy >= swipeThreshold*swipeThreshold {
		return swipeDirection(dx, dy)
	}
	if duration >= longPress {
		return GestureLongPress
	}
	return GestureTap
}

// swipeDirection determines the direction of a swipe gesture
func swipeDirection(dx, dy float32) GestureType {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// GestureHandler turns press and release events into gestures
type GestureHandler struct {
	onGesture func(GestureType)
	now       func() time.Time

	// Touch tracking
	pressed        bool
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		now:               time.Now,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// Press records the start of a gesture
func (gh *GestureHandler) Press(pos fyne.Position) {
	gh.pressed = true
	gh.touchStartTime = gh.now()
	gh.touchStartPos = pos
}

// Release completes the gesture started by Press
func (gh *GestureHandler) Release(pos fyne.Position) {
	if !gh.pressed {
		return
	}
	gh.pressed = false

	gesture := ClassifyGesture(
		gh.now().Sub(gh.touchStartTime),
		pos.X-gh.touchStartPos.X,
		pos.Y-gh.touchStartPos.Y,
		gh.swipeThreshold,
		gh.longPressDuration,
	)
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// Cancel drops the gesture in progress
func (gh *GestureHandler) Cancel() {
	gh.pressed = false
}

// GestureArea wraps an object and reports swipes and long presses on it,
// from touch input on mobile and from the mouse on desktop
type GestureArea struct {
	widget.BaseWidget
	content fyne.CanvasObject
	handler *GestureHandler
}

var (
	_ mobile.Touchable  = (*GestureArea)(nil)
	_ desktop.Mouseable = (*GestureArea)(nil)
)

// NewGestureArea creates a gesture area around content
func NewGestureArea(content fyne.CanvasObject, onGesture func(GestureType)) *GestureArea {
	area := &GestureArea{
		content: content,
		handler: NewGestureHandler(onGesture),
	}
	area.ExtendBaseWidget(area)
	return area
}

// CreateRenderer renders the wrapped content
func (ga *GestureArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ga.content)
}

// TouchDown handles touch down events
func (ga *GestureArea) TouchDown(event *mobile.TouchEvent) {
	ga.handler.Press(event.Position)
}

// TouchUp handles touch up events
func (ga *GestureArea) TouchUp(event *mobile.TouchEvent) {
	ga.handler.Release(event.Position)
}

// TouchCancel handles touch cancel events
func (ga *GestureArea) TouchCancel(*mobile.TouchEvent) {
	ga.handler.Cancel()
}

// MouseDown handles primary button presses
func (ga *GestureArea) MouseDown(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	ga.handler.Press(event.Position)
}

// MouseUp handles primary button releases
func (ga *GestureArea) MouseUp(event *desktop.MouseEvent) {
	if event.Button != desktop.MouseButtonPrimary {
		return
	}
	ga.handler.Release(event.Position)
}
