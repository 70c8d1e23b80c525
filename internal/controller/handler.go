package controller

import (
	"fmt"

	"github.com/ytget/multi-converter/internal/model"
)

// Empty-input wording per category
const (
	EmptyValueMessage  = "Please enter a value"
	EmptyAmountMessage = "Please enter an amount"
	EmptyNumberMessage = "Please enter a number"
)

// Field id suffixes shared by every category
const (
	SuffixValue   = "-value"
	SuffixFrom    = "-from"
	SuffixTo      = "-to"
	SuffixResult  = "-result"
	SuffixMessage = "-message"
)

// Handler is the configuration record of one conversion panel
type Handler struct {
	Category  model.Category
	InputID   string
	FromID    string
	ToID      string
	ResultID  string
	MessageID string
	Endpoint  string

	// ParseValue turns the raw input into the JSON value sent to Endpoint
	ParseValue func(raw string) any

	// EmptyMessage is shown when the input is blank
	EmptyMessage string
}

// NewHandler builds the handler of a category with its standard field ids
func NewHandler(category model.Category) Handler {
	prefix := category.FieldPrefix()

	h := Handler{
		Category:     category,
		InputID:      prefix + SuffixValue,
		FromID:       prefix + SuffixFrom,
		ToID:         prefix + SuffixTo,
		ResultID:     prefix + SuffixResult,
		MessageID:    prefix + SuffixMessage,
		Endpoint:     category.Endpoint(),
		ParseValue:   ParseStringValue,
		EmptyMessage: EmptyValueMessage,
	}
	if category.IsNumeric() {
		h.ParseValue = ParseFloatValue
	}

	switch category {
	case model.CategoryCurrency:
		h.EmptyMessage = EmptyAmountMessage
	case model.CategoryNumberBase:
		h.EmptyMessage = EmptyNumberMessage
	}

	return h
}

// DefaultHandlers returns one handler per category, in tab order
func DefaultHandlers() []Handler {
	handlers := make([]Handler, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		handlers = append(handlers, NewHandler(c))
	}
	return handlers
}

// Validate reports a handler missing a field id, endpoint, or parser
func (h Handler) Validate() error {
	switch {
	case h.InputID == "" || h.FromID == "" || h.ToID == "":
		return fmt.Errorf("handler %s: input and selector ids are required", h.Category)
	case h.ResultID == "" || h.MessageID == "":
		return fmt.Errorf("handler %s: result and message ids are required", h.Category)
	case h.Endpoint == "":
		return fmt.Errorf("handler %s: endpoint is required", h.Category)
	case h.ParseValue == nil:
		return fmt.Errorf("handler %s: value parser is required", h.Category)
	}
	return nil
}
