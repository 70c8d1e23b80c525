package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/multi-converter/internal/model"
)

func TestWidgetPortEntryAndSelect(t *testing.T) {
	test.NewApp()
	port := NewWidgetPort()

	entry := widget.NewEntry()
	sel := widget.NewSelect([]string{"binary", "decimal"}, nil)
	port.RegisterEntry("number-value", entry)
	port.RegisterSelect("number-from", sel)

	port.SetValue("number-value", "ff")
	port.SetValue("number-from", "decimal")

	if entry.Text != "ff" {
		t.Errorf("Expected entry text ff, got %q", entry.Text)
	}
	if got := port.Value("number-value"); got != "ff" {
		t.Errorf("Value(entry) = %q", got)
	}
	if got := port.Value("number-from"); got != "decimal" {
		t.Errorf("Value(select) = %q", got)
	}
}

func TestWidgetPortUnknownIDs(t *testing.T) {
	test.NewApp()
	port := NewWidgetPort()

	if got := port.Value("missing"); got != "" {
		t.Errorf("Unknown id should read as empty, got %q", got)
	}

	// Writes to unknown ids are dropped without panicking
	port.SetValue("missing", "x")
	port.ShowMessage("missing", "x", model.MessageError)
	port.SetMessageKind("missing", model.MessageNeutral)
}

func TestWidgetPortMessages(t *testing.T) {
	test.NewApp()
	port := NewWidgetPort()

	label := widget.NewLabel("")
	port.RegisterMessage("length-message", label)

	port.ShowMessage("length-message", "1 meter = 100 centimeter", model.MessageSuccess)
	if label.Text != "1 meter = 100 centimeter" || label.Importance != widget.SuccessImportance {
		t.Errorf("Unexpected label state %q / %v", label.Text, label.Importance)
	}

	port.ShowMessage("length-message", "Invalid unit", model.MessageError)
	if label.Importance != widget.DangerImportance {
		t.Errorf("Expected danger importance, got %v", label.Importance)
	}

	port.SetMessageKind("length-message", model.MessageNeutral)
	if label.Text != "Invalid unit" {
		t.Error("Resetting the style must keep the text")
	}
	if label.Importance != widget.MediumImportance {
		t.Errorf("Expected neutral importance, got %v", label.Importance)
	}
}

func TestImportanceRoundTrip(t *testing.T) {
	for _, kind := range []model.MessageKind{model.MessageNeutral, model.MessageSuccess, model.MessageError} {
		if got := kindFor(importanceFor(kind)); got != kind {
			t.Errorf("kindFor(importanceFor(%v)) = %v", kind, got)
		}
	}
}
