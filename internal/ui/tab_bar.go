package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/multi-converter/internal/controller"
)

// TabBar renders a controller.TabSet as a row of buttons above a stack of panels
type TabBar struct {
	tabs    *controller.TabSet
	buttons []*widget.Button
	panels  map[string]fyne.CanvasObject
	strip   fyne.CanvasObject
	stack   *fyne.Container
}

// NewTabBar wires one button per tab. panels maps panel ids to their content.
func NewTabBar(tabs *controller.TabSet, panels map[string]fyne.CanvasObject, layout *MobileUI) *TabBar {
	tb := &TabBar{
		tabs:   tabs,
		panels: panels,
	}

	objects := make([]fyne.CanvasObject, 0, len(tabs.Buttons()))
	for i, b := range tabs.Buttons() {
		index := i // Capture for closure
		btn := widget.NewButton(b.Label, func() {
			tabs.Click(index)
		})
		tb.buttons = append(tb.buttons, btn)
		objects = append(objects, btn)
	}
	tb.strip = layout.TabStrip(objects...)

	stacked := make([]fyne.CanvasObject, 0, len(panels))
	for _, id := range tabs.Panels() {
		if obj, ok := panels[id]; ok {
			stacked = append(stacked, obj)
		}
	}
	tb.stack = container.NewStack(stacked...)

	tabs.OnChange(tb.Refresh)
	tb.Refresh()
	return tb
}

// Strip returns the row of tab buttons
func (tb *TabBar) Strip() fyne.CanvasObject {
	return tb.strip
}

// Content returns the stack holding every panel
func (tb *TabBar) Content() *fyne.Container {
	return tb.stack
}

// Button returns the tab button at index
func (tb *TabBar) Button(index int) *widget.Button {
	if index < 0 || index >= len(tb.buttons) {
		return nil
	}
	return tb.buttons[index]
}

// SetLabels updates button captions, in tab order
func (tb *TabBar) SetLabels(labels []string) {
	for i, label := range labels {
		if i < len(tb.buttons) {
			tb.buttons[i].SetText(label)
		}
	}
}

// Refresh shows the active panel and highlights the active button
func (tb *TabBar) Refresh() {
	for i, btn := range tb.buttons {
		if tb.tabs.IsButtonActive(i) {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.MediumImportance
		}
		btn.Refresh()
	}

	for id, obj := range tb.panels {
		if tb.tabs.IsPanelActive(id) {
			obj.Show()
		} else {
			obj.Hide()
		}
	}
}
