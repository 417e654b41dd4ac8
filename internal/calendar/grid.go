package calendar

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Width is the display width of every line in a rendered month
const Width = 20

// headerLines is the number of lines before the first week row (title, weekday labels)
const headerLines = 2

// display widths are measured without East Asian ambiguous-width rules so that Cyrillic
// names stay one column per letter regardless of the host locale
var widths = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Block is one rendered month: a title line, the weekday row, then one line per week.
type Block struct {
	Month Month
	Lines []string
}

// Height returns the number of lines in the block
func (b Block) Height() int {
	return len(b.Lines)
}

// Weeks groups the month's days into rows of seven, Monday first. Slots before the 1st
// hold 0. The final row is not padded and keeps only the remaining days.
func Weeks(m Month) [][]int {
	leading := m.FirstWeekday() - 1
	days := m.Days()

	slots := make([]int, 0, leading+days)
	for i := 0; i < leading; i++ {
		slots = append(slots, 0)
	}
	for d := 1; d <= days; d++ {
		slots = append(slots, d)
	}

	var weeks [][]int
	for start := 0; start < len(slots); start += 7 {
		end := start + 7
		if end > len(slots) {
			end = len(slots)
		}
		weeks = append(weeks, slots[start:end])
	}
	return weeks
}

// Render lays out m as a fixed-width Block using the given name table
func Render(m Month, names Names) Block {
	lines := make([]string, 0, headerLines+6)
	lines = append(lines, centerHeader(fmt.Sprintf("%s %d", names.MonthName(m.Month), m.Year)))
	lines = append(lines, widths.FillRight(strings.Join(names.Weekdays[:], " "), Width))

	for _, week := range Weeks(m) {
		cells := make([]string, len(week))
		for i, day := range week {
			if day == 0 {
				cells[i] = "  "
			} else {
				cells[i] = fmt.Sprintf("%2d", day)
			}
		}
		lines = append(lines, widths.FillRight(strings.Join(cells, " "), Width))
	}

	return Block{Month: m, Lines: lines}
}

// RenderAll renders every month in order
func RenderAll(months []Month, names Names) []Block {
	blocks := make([]Block, 0, len(months))
	for _, m := range months {
		blocks = append(blocks, Render(m, names))
	}
	return blocks
}

// centerHeader puts floor(padding/2) spaces on the left and the rest on the right.
// A header wider than Width is returned as is.
func centerHeader(header string) string {
	w := widths.StringWidth(header)
	padding := Width - w
	if padding <= 0 {
		return header
	}
	return widths.FillRight(widths.FillLeft(header, padding/2+w), Width)
}
