package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/multi-converter/internal/controller"
	"github.com/ytget/multi-converter/internal/model"
)

// WidgetPort implements controller.Port over Fyne widgets registered by id.
// Reads and writes are marshalled onto the UI goroutine, so the controller may
// call it from background goroutines.
type WidgetPort struct {
	mu       sync.RWMutex
	entries  map[string]*widget.Entry
	selects  map[string]*widget.Select
	messages map[string]*widget.Label
}

var _ controller.Port = (*WidgetPort)(nil)

// NewWidgetPort creates an empty port
func NewWidgetPort() *WidgetPort {
	return &WidgetPort{
		entries:  make(map[string]*widget.Entry),
		selects:  make(map[string]*widget.Select),
		messages: make(map[string]*widget.Label),
	}
}

// RegisterEntry binds a text field to id
func (p *WidgetPort) RegisterEntry(id string, entry *widget.Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries[id] = entry
}

// RegisterSelect binds a selector to id
func (p *WidgetPort) RegisterSelect(id string, sel *widget.Select) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selects[id] = sel
}

// RegisterMessage binds a message label to id
func (p *WidgetPort) RegisterMessage(id string, label *widget.Label) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages[id] = label
}

// Value returns an entry's text or a selector's choice; unknown ids read as empty
func (p *WidgetPort) Value(id string) string {
	p.mu.RLock()
	entry := p.entries[id]
	sel := p.selects[id]
	p.mu.RUnlock()

	var value string
	fyne.DoAndWait(func() {
		switch {
		case entry != nil:
			value = entry.Text
		case sel != nil:
			value = sel.Selected
		}
	})
	return value
}

// SetValue writes an entry's text or a selector's choice; unknown ids are ignored
func (p *WidgetPort) SetValue(id, value string) {
	p.mu.RLock()
	entry := p.entries[id]
	sel := p.selects[id]
	p.mu.RUnlock()

	fyne.Do(func() {
		switch {
		case entry != nil:
			entry.SetText(value)
		case sel != nil:
			sel.SetSelected(value)
		}
	})
}

// ShowMessage sets a message label's text and style
func (p *WidgetPort) ShowMessage(id, text string, kind model.MessageKind) {
	label := p.message(id)
	if label == nil {
		return
	}
	fyne.Do(func() {
		label.Importance = importanceFor(kind)
		label.SetText(text)
	})
}

// SetMessageKind restyles a message label and leaves its text
func (p *WidgetPort) SetMessageKind(id string, kind model.MessageKind) {
	label := p.message(id)
	if label == nil {
		return
	}
	fyne.Do(func() {
		label.Importance = importanceFor(kind)
		label.Refresh()
	})
}

func (p *WidgetPort) message(id string) *widget.Label {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.messages[id]
}

// importanceFor maps a message kind to a label style
func importanceFor(kind model.MessageKind) widget.Importance {
	switch kind {
	case model.MessageSuccess:
		return widget.SuccessImportance
	case model.MessageError:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}

// kindFor maps a label style back to a message kind
func kindFor(importance widget.Importance) model.MessageKind {
	switch importance {
	case widget.SuccessImportance:
		return model.MessageSuccess
	case widget.DangerImportance:
		return model.MessageError
	default:
		return model.MessageNeutral
	}
}
