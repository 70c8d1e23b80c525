package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/ytget/multi-converter/internal/controller"
	"github.com/ytget/multi-converter/internal/model"
)

// consolePort serves the controller from command arguments and prints what it displays
type consolePort struct {
	mu     sync.Mutex
	out    io.Writer
	values map[string]string
}

var _ controller.Port = (*consolePort)(nil)

func newConsolePort(out io.Writer, values map[string]string) *consolePort {
	if values == nil {
		values = make(map[string]string)
	}
	return &consolePort{out: out, values: values}
}

func (p *consolePort) Value(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[id]
}

func (p *consolePort) SetValue(id, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[id] = value
}

func (p *consolePort) ShowMessage(_ string, text string, _ model.MessageKind) {
	fmt.Fprintln(p.out, text)
}

func (p *consolePort) SetMessageKind(string, model.MessageKind) {}
