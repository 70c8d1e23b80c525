package model

// MessageKind classifies the text shown in a category's message area
type MessageKind string

const (
	// MessageNeutral is the resting classification after the reset delay
	MessageNeutral MessageKind = ""

	// MessageSuccess marks a completed conversion
	MessageSuccess MessageKind = "success"

	// MessageError marks validation, server, or transport failures
	MessageError MessageKind = "error"
)

// String returns the string representation of MessageKind
func (k MessageKind) String() string {
	if k == MessageNeutral {
		return "neutral"
	}
	return string(k)
}

// IsHighlighted returns true if the message area carries a success or error style
func (k MessageKind) IsHighlighted() bool {
	return k == MessageSuccess || k == MessageError
}

// Message is the text and classification last written to a message area
type Message struct {
	Text string
	Kind MessageKind
}

// NewSuccessMessage creates a success message
func NewSuccessMessage(text string) Message {
	return Message{Text: text, Kind: MessageSuccess}
}

// NewErrorMessage creates an error message
func NewErrorMessage(text string) Message {
	return Message{Text: text, Kind: MessageError}
}

// IsError returns true if the message reports a failure
func (m Message) IsError() bool {
	return m.Kind == MessageError
}
