package controller

import "sync"

// TabButton is one entry of the tab bar; Target names the panel it shows
type TabButton struct {
	Label  string
	Target string
}

// TabSet tracks which tab button and which panel are active.
// Clicking a button deactivates everything, then activates that button and
// the panel named by its target. A target with no panel leaves no panel active.
type TabSet struct {
	mu            sync.Mutex
	buttons       []TabButton
	activeButtons []bool
	panels        []string
	activePanels  []bool
	listeners     []func()
}

// NewTabSet creates a tab set with nothing active
func NewTabSet(buttons []TabButton, panels []string) *TabSet {
	return &TabSet{
		buttons:       append([]TabButton(nil), buttons...),
		activeButtons: make([]bool, len(buttons)),
		panels:        append([]string(nil), panels...),
		activePanels:  make([]bool, len(panels)),
	}
}

// OnChange registers fn to run after every click
func (ts *TabSet) OnChange(fn func()) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.listeners = append(ts.listeners, fn)
}

// Buttons returns the tab buttons in order
func (ts *TabSet) Buttons() []TabButton {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]TabButton(nil), ts.buttons...)
}

// Panels returns the panel ids in order
func (ts *TabSet) Panels() []string {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return append([]string(nil), ts.panels...)
}

// Click handles a click on the button at index. Out-of-range indexes are ignored.
func (ts *TabSet) Click(index int) {
	ts.mu.Lock()
	if index < 0 || index >= len(ts.buttons) {
		ts.mu.Unlock()
		return
	}

	for i := range ts.activeButtons {
		ts.activeButtons[i] = false
	}
	for i := range ts.activePanels {
		ts.activePanels[i] = false
	}

	ts.activeButtons[index] = true
	target := ts.buttons[index].Target
	for i, id := range ts.panels {
		if id == target {
			ts.activePanels[i] = true
			break
		}
	}

	listeners := append([]func(){}, ts.listeners...)
	ts.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Select clicks the first button targeting target and reports whether one exists
func (ts *TabSet) Select(target string) bool {
	index := -1
	ts.mu.Lock()
	for i, b := range ts.buttons {
		if b.Target == target {
			index = i
			break
		}
	}
	ts.mu.Unlock()

	if index < 0 {
		return false
	}
	ts.Click(index)
	return true
}

// Next clicks the button after the active one, wrapping around
func (ts *TabSet) Next() {
	ts.step(1)
}

// Prev clicks the button before the active one, wrapping around
func (ts *TabSet) Prev() {
	ts.step(-1)
}

func (ts *TabSet) step(delta int) {
	ts.mu.Lock()
	n := len(ts.buttons)
	current := -1
	for i, active := range ts.activeButtons {
		if active {
			current = i
			break
		}
	}
	ts.mu.Unlock()

	if n == 0 {
		return
	}
	if current < 0 {
		ts.Click(0)
		return
	}
	ts.Click(((current+delta)%n + n) % n)
}

// IsButtonActive reports whether the button at index is active
func (ts *TabSet) IsButtonActive(index int) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return index >= 0 && index < len(ts.activeButtons) && ts.activeButtons[index]
}

// IsPanelActive reports whether the panel id is active
func (ts *TabSet) IsPanelActive(id string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for i, p := range ts.panels {
		if p == id && ts.activePanels[i] {
			return true
		}
	}
	return false
}

// ActiveTarget returns the target of the active button
func (ts *TabSet) ActiveTarget() (string, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for i, active := range ts.activeButtons {
		if active {
			return ts.buttons[i].Target, true
		}
	}
	return "", false
}
