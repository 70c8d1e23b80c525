package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ytget/multi-converter/internal/api"
	"github.com/ytget/multi-converter/internal/logging"
	"github.com/ytget/multi-converter/internal/model"
)

// DefaultMessageResetDelay is how long a message keeps its success/error style
const DefaultMessageResetDelay = 5000 * time.Millisecond

// TransportErrorPrefix precedes the description of request/decode failures
const TransportErrorPrefix = "Error: "

// ErrUnknownCategory is returned by Submit for a category without a handler
var ErrUnknownCategory = errors.New("unknown category")

// Controller runs conversions for every category against one backend and one port.
// It keeps no state between submissions besides its handler table.
type Controller struct {
	backend    api.Backend
	port       Port
	clock      Clock
	logger     *slog.Logger
	resetDelay time.Duration

	mu       sync.RWMutex
	handlers map[model.Category]Handler
}

// Option configures a Controller
type Option func(*Controller)

// WithClock replaces the clock used for message resets
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithResetDelay changes the message reset delay
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.resetDelay = d
		}
	}
}

// WithHandlers replaces the default handler table
func WithHandlers(handlers ...Handler) Option {
	return func(c *Controller) {
		c.handlers = make(map[model.Category]Handler, len(handlers))
		for _, h := range handlers {
			c.handlers[h.Category] = h
		}
	}
}

// New creates a controller with one handler per category
func New(backend api.Backend, port Port, opts ...Option) *Controller {
	c := &Controller{
		backend:    backend,
		port:       port,
		clock:      SystemClock{},
		logger:     slog.Default(),
		resetDelay: DefaultMessageResetDelay,
	}
	WithHandlers(DefaultHandlers()...)(c)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handler returns the handler registered for a category
func (c *Controller) Handler(category model.Category) (Handler, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.handlers[category]
	return h, ok
}

// SetHandler registers or replaces the handler of its category
func (c *Controller) SetHandler(h Handler) error {
	if err := h.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[h.Category] = h
	return nil
}

// ResetDelay returns the delay after which messages lose their style
func (c *Controller) ResetDelay() time.Duration {
	return c.resetDelay
}

// Submit runs the conversion of one category and returns the message it showed.
// The only error is ErrUnknownCategory; conversion failures are reported
// through the port and the returned message.
func (c *Controller) Submit(ctx context.Context, category model.Category) (model.Message, error) {
	h, ok := c.Handler(category)
	if !ok {
		return model.Message{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	return c.Run(ctx, h), nil
}

// Run executes the conversion template for h: read, validate, post, render.
func (c *Controller) Run(ctx context.Context, h Handler) model.Message {
	raw := c.port.Value(h.InputID)
	from := c.port.Value(h.FromID)
	to := c.port.Value(h.ToID)

	if strings.TrimSpace(raw) == "" {
		msg := model.NewErrorMessage(h.EmptyMessage)
		c.show(h.MessageID, msg)
		return msg
	}

	req := model.ConversionRequest{
		Category: h.Category,
		Value:    h.ParseValue(raw),
		From:     from,
		To:       to,
	}

	start := time.Now()
	resp, err := c.backend.Convert(ctx, h.Endpoint, req)

	var msg model.Message
	switch {
	case err != nil:
		logging.LogError(c.logger, "conversion request failed", err,
			slog.String("category", h.Category.String()),
			slog.String("endpoint", h.Endpoint))
		msg = model.NewErrorMessage(TransportErrorPrefix + err.Error())
	case resp.Success:
		// The previous result is only replaced on success
		c.port.SetValue(h.ResultID, resp.ResultText())
		msg = model.NewSuccessMessage(resp.Summary())
	default:
		msg = model.NewErrorMessage(resp.ErrorText())
	}

	logging.LogOperation(c.logger, "conversion_completed",
		slog.String("category", h.Category.String()),
		slog.String("from", from),
		slog.String("to", to),
		slog.String("outcome", msg.Kind.String()),
		slog.Duration("duration", time.Since(start)))

	c.show(h.MessageID, msg)
	return msg
}

// show writes msg to a message area and schedules the style reset for
// highlighted kinds. Resets are never cancelled: an older timer may clear
// the style of a newer message.
func (c *Controller) show(id string, msg model.Message) {
	c.port.ShowMessage(id, msg.Text, msg.Kind)
	if !msg.Kind.IsHighlighted() {
		return
	}
	c.clock.AfterFunc(c.resetDelay, func() {
		c.port.SetMessageKind(id, model.MessageNeutral)
	})
}
