package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI picks layouts that fit the current device
type MobileUI struct {
	isMobile bool
}

// NewMobileUI creates a layout helper for the current device
func NewMobileUI() *MobileUI {
	return &MobileUI{isMobile: fyne.CurrentDevice().IsMobile()}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.isMobile
}

// FieldRow lays out the from/to/result fields: one column on phones, side by side otherwise
func (m *MobileUI) FieldRow(objects ...fyne.CanvasObject) *fyne.Container {
	if m.isMobile {
		return container.NewVBox(objects...)
	}
	return container.NewGridWithColumns(FieldColumns, objects...)
}

// TabStrip lays out the tab buttons: scrollable on phones, an even grid otherwise
func (m *MobileUI) TabStrip(buttons ...fyne.CanvasObject) fyne.CanvasObject {
	if m.isMobile {
		touchable := make([]fyne.CanvasObject, 0, len(buttons))
		for _, b := range buttons {
			touchable = append(touchable, container.New(&minSizeLayout{width: MinTouchTargetSize, height: MinTouchTargetSize}, b))
		}
		return container.NewHScroll(container.NewHBox(touchable...))
	}
	return container.NewGridWithColumns(len(buttons), buttons...)
}

// ActionButton wraps a button so it keeps a touch-friendly height on phones
func (m *MobileUI) ActionButton(btn *widget.Button) fyne.CanvasObject {
	if !m.isMobile {
		return btn
	}
	return container.New(&minSizeLayout{height: MobileButtonHeight}, btn)
}

// minSizeLayout stretches its first child to at least width by height
type minSizeLayout struct {
	width, height float32
}

func (l *minSizeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) == 0 {
		return
	}
	objects[0].Resize(size)
	objects[0].Move(fyne.NewPos(0, 0))
}

func (l *minSizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(l.width, l.height)
	}
	size := objects[0].MinSize()
	return size.Max(fyne.NewSize(l.width, l.height))
}
