package controller

import (
	"time"

	"github.com/ytget/multi-converter/internal/model"
)

// Port is the UI surface a conversion handler reads from and writes to.
// Identifiers are the field ids of a Handler.
type Port interface {
	// Value returns the current text of an input or the selected option of a selector
	Value(id string) string

	// SetValue replaces the content of a field
	SetValue(id, value string)

	// ShowMessage sets a message area's text and classification
	ShowMessage(id, text string, kind model.MessageKind)

	// SetMessageKind changes a message area's classification and leaves its text alone
	SetMessageKind(id string, kind model.MessageKind)
}

// Clock schedules the delayed message reset
type Clock interface {
	AfterFunc(d time.Duration, f func())
}

// SystemClock schedules on real time
type SystemClock struct{}

// AfterFunc runs f in its own goroutine after d. The timer is never cancelled.
func (SystemClock) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// DiscardClock never runs the scheduled function. Used by one-shot callers that
// exit before a reset could be seen.
type DiscardClock struct{}

// AfterFunc drops f
func (DiscardClock) AfterFunc(time.Duration, func()) {}
