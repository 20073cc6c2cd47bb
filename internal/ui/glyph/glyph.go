// Package glyph maps the opaque icon handles carried by lessons, parts and
// buckets to terminal symbols.
package glyph

var symbols = map[string]string{
	"code":      "⌨",
	"build":     "⚒",
	"science":   "⚗",
	"memory":    "▣",
	"display":   "▦",
	"toggle":    "◉",
	"sensors":   "◎",
	"bolt":      "ϟ",
	"extension": "⧉",
	"wifi":      "≋",
	"battery":   "▮",
	"storage":   "⛁",
	"input":     "⇥",
	"output":    "⇤",
}

// Fallback is shown for unknown or empty handles.
const Fallback = "•"

// For returns the symbol for handle.
func For(handle string) string {
	if s, ok := symbols[handle]; ok {
		return s
	}
	return Fallback
}
