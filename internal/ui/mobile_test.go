package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func TestMinSizeLayout(t *testing.T) {
	l := &minSizeLayout{width: MinTouchTargetSize, height: MinTouchTargetSize}

	if got := l.MinSize(nil); got != fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize) {
		t.Errorf("Expected empty layout to keep the touch minimum, got %v", got)
	}

	wide := widget.NewLabel("a label much wider than a fingertip")
	got := l.MinSize([]fyne.CanvasObject{wide})
	if got.Width != wide.MinSize().Width {
		t.Errorf("Expected wide child width %v, got %v", wide.MinSize().Width, got.Width)
	}
	if got.Height < MinTouchTargetSize {
		t.Errorf("Expected height at least %v, got %v", MinTouchTargetSize, got.Height)
	}
}

func TestTabStripOnMobileKeepsTouchTargets(t *testing.T) {
	test.NewApp()
	m := &MobileUI{isMobile: true}

	strip := m.TabStrip(widget.NewButton("m", nil), widget.NewButton("kg", nil))
	scroll, ok := strip.(*container.Scroll)
	if !ok {
		t.Fatalf("Expected a scrolling strip on mobile, got %T", strip)
	}
	row := scroll.Content.(*fyne.Container)
	if len(row.Objects) != 2 {
		t.Fatalf("Expected 2 tabs, got %d", len(row.Objects))
	}
	for i, tab := range row.Objects {
		size := tab.MinSize()
		if size.Width < MinTouchTargetSize || size.Height < MinTouchTargetSize {
			t.Errorf("Tab %d is smaller than a touch target: %v", i, size)
		}
	}
}

func TestActionButtonOnDesktopIsUnwrapped(t *testing.T) {
	test.NewApp()
	btn := widget.NewButton("Convert", nil)

	if got := (&MobileUI{}).ActionButton(btn); got != fyne.CanvasObject(btn) {
		t.Errorf("Expected the button itself on desktop, got %T", got)
	}
	wrapped := (&MobileUI{isMobile: true}).ActionButton(btn)
	if wrapped.MinSize().Height < MobileButtonHeight {
		t.Errorf("Expected mobile height at least %v, got %v", MobileButtonHeight, wrapped.MinSize().Height)
	}
}
