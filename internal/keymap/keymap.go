package keymap

import "slices"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // ContextGlobal, ContextSetup or ContextTimer
}

// All contains all key bindings, in help display order.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	// Setup
	{ActionNextField, []string{"tab", "down"}, "Next field", ContextSetup},
	{ActionPrevField, []string{"shift+tab", "up"}, "Previous field", ContextSetup},
	{ActionStart, []string{"enter"}, "Save and start training", ContextSetup},

	// Timer
	{ActionToggle, []string{" "}, "Start/pause", ContextTimer},
	{ActionReset, []string{"r"}, "Reset session", ContextTimer},
	{ActionBack, []string{"esc", "b"}, "Back to setup", ContextTimer},
}

// ByContext returns key bindings belonging to any of contexts, in
// declaration order.
func ByContext(contexts ...string) []Binding {
	var result []Binding
	for _, kb := range All {
		if slices.Contains(contexts, kb.Context) {
			result = append(result, kb)
		}
	}
	return result
}

// DisplayKey returns the label shown for a key in help and hints.
func DisplayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
