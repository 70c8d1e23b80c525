package ui

import (
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/multi-converter/internal/controller"
	"github.com/ytget/multi-converter/internal/model"
)

// ConversionPanel is the form of one category: value, from/to selectors,
// a read-only result, a message line, and the Convert button
type ConversionPanel struct {
	handler      controller.Handler
	localization *Localization

	valueEntry   *widget.Entry
	fromSelect   *widget.Select
	toSelect     *widget.Select
	resultEntry  *widget.Entry
	messageLabel *widget.Label
	convertBtn   *widget.Button
	fromLabel    *widget.Label
	toLabel      *widget.Label
	resultLabel  *widget.Label

	content *fyne.Container
}

// NewConversionPanel builds the form for h. onConvert runs on the UI goroutine
// when the button is tapped or Enter is pressed in the value field.
func NewConversionPanel(h controller.Handler, units []string, localization *Localization, layout *MobileUI, onConvert func()) *ConversionPanel {
	p := &ConversionPanel{
		handler:      h,
		localization: localization,
	}

	p.valueEntry = widget.NewEntry()
	p.valueEntry.OnSubmitted = func(string) {
		onConvert()
	}

	p.fromSelect = widget.NewSelect(nil, nil)
	p.toSelect = widget.NewSelect(nil, nil)
	p.SetUnits(units)

	p.resultEntry = widget.NewEntry()
	p.resultEntry.Disable()

	p.messageLabel = widget.NewLabel("")
	p.messageLabel.Wrapping = fyne.TextWrapWord
	p.messageLabel.SizeName = SizeNameMessageText

	p.convertBtn = widget.NewButton("", onConvert)
	p.convertBtn.Importance = widget.HighImportance

	p.fromLabel = widget.NewLabel("")
	p.toLabel = widget.NewLabel("")
	p.resultLabel = widget.NewLabel("")

	fields := layout.FieldRow(
		container.NewVBox(p.fromLabel, p.fromSelect),
		container.NewVBox(p.toLabel, p.toSelect),
		container.NewVBox(p.resultLabel, p.resultEntry),
	)

	p.content = container.NewVBox(
		p.valueEntry,
		fields,
		layout.ActionButton(p.convertBtn),
		p.messageLabel,
	)

	p.RefreshTexts()
	return p
}

// Category returns the panel's category
func (p *ConversionPanel) Category() model.Category {
	return p.handler.Category
}

// Container returns the panel's root object
func (p *ConversionPanel) Container() *fyne.Container {
	return p.content
}

// Register binds the panel's widgets to port under the handler's field ids
func (p *ConversionPanel) Register(port *WidgetPort) {
	port.RegisterEntry(p.handler.InputID, p.valueEntry)
	port.RegisterSelect(p.handler.FromID, p.fromSelect)
	port.RegisterSelect(p.handler.ToID, p.toSelect)
	port.RegisterEntry(p.handler.ResultID, p.resultEntry)
	port.RegisterMessage(p.handler.MessageID, p.messageLabel)
}

// SetUnits replaces the selector options. Current choices survive when still offered.
func (p *ConversionPanel) SetUnits(units []string) {
	from, to := model.UnitCatalog{p.handler.Category: units}.DefaultPair(p.handler.Category)

	if slices.Contains(units, p.fromSelect.Selected) {
		from = p.fromSelect.Selected
	}
	if slices.Contains(units, p.toSelect.Selected) {
		to = p.toSelect.Selected
	}

	p.fromSelect.Options = append([]string(nil), units...)
	p.toSelect.Options = append([]string(nil), units...)
	p.fromSelect.ClearSelected()
	p.toSelect.ClearSelected()
	if from != "" {
		p.fromSelect.SetSelected(from)
	}
	if to != "" {
		p.toSelect.SetSelected(to)
	}
	p.fromSelect.Refresh()
	p.toSelect.Refresh()
}

// RefreshTexts applies the current language to labels and placeholders
func (p *ConversionPanel) RefreshTexts() {
	c := p.handler.Category
	p.valueEntry.SetPlaceHolder(p.localization.InputPlaceholder(c))
	p.convertBtn.SetText(p.localization.GetText(KeyConvert))
	p.fromLabel.SetText(p.localization.GetText(KeyFrom))
	p.toLabel.SetText(p.localization.GetText(KeyTo))
	p.resultLabel.SetText(p.localization.GetText(KeyResult))
}

// Message returns the text and style currently shown in the message line
func (p *ConversionPanel) Message() model.Message {
	return model.Message{Text: p.messageLabel.Text, Kind: kindFor(p.messageLabel.Importance)}
}
