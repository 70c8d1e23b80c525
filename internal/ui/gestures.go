package ui

import (
	"time"

	"fyne.io/fyne/v2"
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

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// ClassifyGesture decides what a touch from start to end lasting duration was
func ClassifyGesture(start, end fyne.Position, duration time.Duration) GestureType {
	dx := end.X - start.X
	dy := end.Y - start.Y
	moved := dx*dx+dy*dy >= DefaultSwipeThreshold*DefaultSwipeThreshold

	switch {
	case !moved && duration >= DefaultLongPressDuration:
		return GestureLongPress
	case !moved:
		return GestureTap
	}

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

// SwipeArea wraps content and reports gestures made on it. On phones the
// window uses it to move between tabs.
type SwipeArea struct {
	widget.BaseWidget

	content   fyne.CanvasObject
	onGesture func(GestureType)

	touchStartTime time.Time
	touchStartPos  fyne.Position
}

var _ mobile.Touchable = (*SwipeArea)(nil)

// NewSwipeArea creates a new swipe area
func NewSwipeArea(content fyne.CanvasObject, onGesture func(GestureType)) *SwipeArea {
	sa := &SwipeArea{content: content, onGesture: onGesture}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer implements fyne.Widget
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// TouchDown handles touch down events for gesture detection
func (sa *SwipeArea) TouchDown(event *mobile.TouchEvent) {
	sa.touchStartTime = time.Now()
	sa.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (sa *SwipeArea) TouchUp(event *mobile.TouchEvent) {
	if sa.touchStartTime.IsZero() {
		return
	}
	gesture := ClassifyGesture(sa.touchStartPos, event.Position, time.Since(sa.touchStartTime))
	sa.touchStartTime = time.Time{}

	if sa.onGesture != nil {
		sa.onGesture(gesture)
	}
}

// TouchCancel handles touch cancel events
func (sa *SwipeArea) TouchCancel(*mobile.TouchEvent) {
	sa.touchStartTime = time.Time{}
}
