package timerview

import "strings"

// glyphHeight is the row count of the countdown font.
const glyphHeight = 5

var glyphs = map[rune][glyphHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"  █", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

// bigText renders s in the block font, one space between glyphs.
// Runes without a glyph are skipped.
func bigText(s string) []string {
	var rows [glyphHeight][]string
	for _, r := range s {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for i := range glyphHeight {
			rows[i] = append(rows[i], g[i])
		}
	}
	out := make([]string, glyphHeight)
	for i := range glyphHeight {
		out[i] = strings.Join(rows[i], " ")
	}
	return out
}
