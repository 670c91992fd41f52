// Package ui provides shared UI constants and utilities.
package ui

import "time"

// Layout constants shared by the views.
const (
	// HeaderHeight is the header bar plus its separator.
	HeaderHeight = 2

	// MinProgressBarWidth is the narrowest usable progress bar.
	MinProgressBarWidth = 5

	// MaxContentWidth caps the centered content column on wide terminals.
	MaxContentWidth = 60

	// MinWidth and MinHeight are the smallest terminal the views lay out in.
	MinWidth  = 30
	MinHeight = 12
)

// FlashDuration is how long the phase-change banner stays up.
const FlashDuration = time.Second

// ContentWidth returns the content column width for a terminal width.
func ContentWidth(termWidth int) int {
	return max(min(termWidth-4, MaxContentWidth), MinProgressBarWidth)
}
