// Package setupview is the screen where the user picks the round count and
// the round and rest lengths.
package setupview

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rounds/internal/keymap"
	"github.com/llehouerou/rounds/internal/settings"
	"github.com/llehouerou/rounds/internal/ui"
)

// Input indexes, in tab order.
const (
	inputRounds = iota
	inputRoundMinutes
	inputRoundSeconds
	inputRestMinutes
	inputRestSeconds
	inputCount
)

// clockRefresh is how often the projected finish time is recomputed.
const clockRefresh = time.Minute

// ClockMsg refreshes the projected finish time.
type ClockMsg time.Time

// Model is the setup screen.
type Model struct {
	ui.Base
	store  *settings.Store
	inputs [inputCount]textinput.Model
	focus  int
	keys   *keymap.Resolver
	now    func() time.Time
	clock  time.Time
}

// Option configures a Model.
type Option func(*Model)

// WithClock replaces time.Now for the projected finish time.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a setup screen editing store.
func New(store *settings.Store, opts ...Option) Model {
	m := Model{
		store: store,
		keys:  keymap.ForContexts(keymap.ContextSetup),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	for i := range m.inputs {
		m.inputs[i] = newInput(i)
	}
	m.clock = m.now()
	m.Load()
	return m
}

func newInput(i int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"
	switch i {
	case inputRounds, inputRoundMinutes, inputRestMinutes:
		ti.CharLimit = 3
	default:
		ti.CharLimit = 2
	}
	ti.Width = ti.CharLimit
	return ti
}

// Load refills the inputs from the store and focuses the first one.
func (m *Model) Load() {
	f := FieldsFor(m.store.Get())
	values := [inputCount]string{f.Rounds, f.RoundMinutes, f.RoundSeconds, f.RestMinutes, f.RestSeconds}
	for i := range m.inputs {
		m.inputs[i].SetValue(values[i])
		m.inputs[i].CursorEnd()
	}
	m.setFocus(0)
}

// Fields returns the current input text.
func (m Model) Fields() Fields {
	return Fields{
		Rounds:       m.inputs[inputRounds].Value(),
		RoundMinutes: m.inputs[inputRoundMinutes].Value(),
		RoundSeconds: m.inputs[inputRoundSeconds].Value(),
		RestMinutes:  m.inputs[inputRestMinutes].Value(),
		RestSeconds:  m.inputs[inputRestSeconds].Value(),
	}
}

// Preview returns the settings the inputs would commit, clamped the way the
// store will clamp them.
func (m Model) Preview() settings.Settings {
	return m.Fields().Parse().Clamp(m.store.MinimumRound())
}

// Focused returns the index of the focused input.
func (m Model) Focused() int {
	return m.focus
}

// Init starts the clock refresh and the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, clockCmd())
}

func clockCmd() tea.Cmd {
	return tea.Tick(clockRefresh, func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}

// Update handles messages for the setup screen.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClockMsg:
		m.clock = m.now()
		return m, clockCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionNextField:
		m.setFocus((m.focus + 1) % inputCount)
		return m, nil
	case keymap.ActionPrevField:
		m.setFocus((m.focus + inputCount - 1) % inputCount)
		return m, nil
	case keymap.ActionStart:
		return m, m.commit()
	}

	if msg.Type == tea.KeyRunes && !digitsOnly(msg.Runes) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) commit() tea.Cmd {
	committed := m.store.Set(m.Fields().Parse())
	return func() tea.Msg {
		return ActionMsg(Committed{Settings: committed})
	}
}

func (m *Model) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func digitsOnly(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(runes) > 0
}
