package calendar

import (
	"io"
	"strings"
)

const (
	// BatchSize is the number of months placed side by side in one output row
	BatchSize = 3
	// Separator joins the blocks of a batch
	Separator = "  "
)

var blankLine = strings.Repeat(" ", Width)

// Batches splits blocks into consecutive groups of at most size blocks, keeping order
func Batches(blocks []Block, size int) [][]Block {
	if size < 1 {
		size = 1
	}
	var batches [][]Block
	for start := 0; start < len(blocks); start += size {
		end := start + size
		if end > len(blocks) {
			end = len(blocks)
		}
		batches = append(batches, blocks[start:end])
	}
	return batches
}

// PadBlock returns a copy of b extended with blank lines up to height.
// A block already at least that tall is returned unchanged.
func PadBlock(b Block, height int) Block {
	if len(b.Lines) >= height {
		return b
	}
	lines := make([]string, len(b.Lines), height)
	copy(lines, b.Lines)
	for len(lines) < height {
		lines = append(lines, blankLine)
	}
	return Block{Month: b.Month, Lines: lines}
}

// JoinBatch pads every block of the batch to the tallest one and concatenates them
// line by line with Separator.
func JoinBatch(batch []Block) []string {
	height := 0
	for _, b := range batch {
		if b.Height() > height {
			height = b.Height()
		}
	}

	padded := make([]Block, len(batch))
	for i, b := range batch {
		padded[i] = PadBlock(b, height)
	}

	rows := make([]string, height)
	parts := make([]string, len(padded))
	for i := 0; i < height; i++ {
		for j, b := range padded {
			parts[j] = b.Lines[i]
		}
		rows[i] = strings.Join(parts, Separator)
	}
	return rows
}

// Compose lays the blocks out BatchSize per row. Each batch is followed by an empty line.
func Compose(blocks []Block) []string {
	var out []string
	for _, batch := range Batches(blocks, BatchSize) {
		out = append(out, JoinBatch(batch)...)
		out = append(out, "")
	}
	return out
}

// Print writes the composed layout of blocks to w, one line per row
func Print(w io.Writer, blocks []Block) error {
	var sb strings.Builder
	for _, line := range Compose(blocks) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
