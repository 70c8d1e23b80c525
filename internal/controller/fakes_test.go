package controller

import (
	"sort"
	"sync"
	"time"

	"github.com/ytget/multi-converter/internal/model"
)

// fakePort is an in-memory Port
type fakePort struct {
	mu       sync.Mutex
	values   map[string]string
	messages map[string]model.Message
	writes   map[string]int
}

func newFakePort() *fakePort {
	return &fakePort{
		values:   make(map[string]string),
		messages: make(map[string]model.Message),
		writes:   make(map[string]int),
	}
}

func (p *fakePort) Value(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[id]
}

func (p *fakePort) SetValue(id, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[id] = value
	p.writes[id]++
}

func (p *fakePort) ShowMessage(id, text string, kind model.MessageKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages[id] = model.Message{Text: text, Kind: kind}
}

func (p *fakePort) SetMessageKind(id string, kind model.MessageKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	msg := p.messages[id]
	msg.Kind = kind
	p.messages[id] = msg
}

func (p *fakePort) message(id string) model.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.messages[id]
}

func (p *fakePort) fill(h Handler, value, from, to string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[h.InputID] = value
	p.values[h.FromID] = from
	p.values[h.ToID] = to
}

// fakeClock runs scheduled functions when advanced past their deadline
type fakeClock struct {
	mu      sync.Mutex
	now     time.Duration
	pending []scheduled
}

type scheduled struct {
	at time.Duration
	fn func()
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, scheduled{at: c.now + d, fn: f})
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due, rest []scheduled
	for _, s := range c.pending {
		if s.at <= c.now {
			due = append(due, s)
		} else {
			rest = append(rest, s)
		}
	}
	c.pending = rest
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, s := range due {
		s.fn()
	}
}

func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
