// Package testing provides test utilities for TUI components.
package testing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer drives a Bubble Tea model without a terminal, running the
// commands it returns the way the runtime would.
type TestRenderer struct {
	// Output contains the last rendered view.
	Output string

	// Messages contains every message delivered to the model.
	Messages []tea.Msg

	// UpdateCount tracks how many times Update was called.
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Render renders a model and captures its output.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update delivers msg and returns the new model and command.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)
	r.UpdateCount++

	newModel, cmd := model.Update(msg)
	r.Output = newModel.View()
	return newModel, cmd
}

// Send delivers msg and then keeps executing the resulting commands, feeding
// their messages back, until no command remains. Messages accepted by skip
// are dropped instead of delivered, which keeps tickers from looping forever.
func (r *TestRenderer) Send(model tea.Model, msg tea.Msg, skip func(tea.Msg) bool) tea.Model {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		var cmd tea.Cmd
		model, cmd = r.Update(model, next)
		queue = append(queue, Run(cmd, skip)...)
	}
	return model
}

// Run executes cmd, expanding batches, and returns the produced messages.
func Run(cmd tea.Cmd, skip func(tea.Msg) bool) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, Run(c, skip)...)
		}
		return out
	default:
		if skip != nil && skip(msg) {
			return nil
		}
		return []tea.Msg{msg}
	}
}

// StripANSI removes ANSI escape codes from the output for content-only testing.
func (r *TestRenderer) StripANSI() string {
	return StripANSI(r.Output)
}

// Lines returns the stripped output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.StripANSI(), "\n")
}
