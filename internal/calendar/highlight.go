package calendar

import (
	"io"
	"time"

	"github.com/muesli/termenv"
)

// Highlight modes accepted by NewHighlighter
const (
	HighlightAuto   = "auto"
	HighlightAlways = "always"
	HighlightNever  = "never"
)

// Highlighter marks today's slot in rendered blocks
type Highlighter struct {
	output *termenv.Output
}

// NewHighlighter builds a highlighter for output written to w. In auto mode styling is
// used only when w is a terminal that supports it.
func NewHighlighter(w io.Writer, mode string) *Highlighter {
	var opts []termenv.OutputOption
	switch mode {
	case HighlightAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI))
	case HighlightNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &Highlighter{output: termenv.NewOutput(w, opts...)}
}

// Enabled reports whether the highlighter emits any styling
func (h *Highlighter) Enabled() bool {
	return h != nil && h.output.Profile != termenv.Ascii
}

// SlotPosition returns the line index and byte column of day's two-character slot in a
// block rendered for m. ok is false when day is not in the month.
func SlotPosition(m Month, day int) (line, col int, ok bool) {
	if day < 1 || day > m.Days() {
		return 0, 0, false
	}
	idx := m.FirstWeekday() - 1 + day - 1
	return headerLines + idx/7, (idx % 7) * 3, true
}

// Apply returns blocks with the slot for today wrapped in reverse video. Blocks for other
// months are returned untouched, and the visible text never changes.
func (h *Highlighter) Apply(blocks []Block, today time.Time) []Block {
	if !h.Enabled() {
		return blocks
	}

	out := make([]Block, len(blocks))
	copy(out, blocks)
	for i, b := range out {
		if !b.Month.Contains(today) {
			continue
		}
		line, col, ok := SlotPosition(b.Month, today.Day())
		if !ok || line >= len(b.Lines) || col+2 > len(b.Lines[line]) {
			continue
		}

		lines := make([]string, len(b.Lines))
		copy(lines, b.Lines)
		s := lines[line]
		lines[line] = s[:col] + h.output.String(s[col:col+2]).Reverse().String() + s[col+2:]
		out[i] = Block{Month: b.Month, Lines: lines}
	}
	return out
}
