package tapes

import (
	"fmt"
	"slices"
	"strings"
)

const Blank = ' '

const DefaultRadius = 10

// Tape is a bidirectionally growable sequence of cells.
// Logical position p is stored at cells[p+offset].
type Tape struct {
	cells  []rune
	offset int
}

func New() *Tape {
	return new(Tape)
}

func (t *Tape) Write(position int, symbol rune) {
	if index := position + t.offset; index >= len(t.cells) {
		t.cells = append(t.cells, blanks(index-len(t.cells)+1)...)
	}
	if index := position + t.offset; index < 0 {
		// prepend the whole deficit at once
		t.cells = slices.Insert(t.cells, 0, blanks(-index)...)
		t.offset += -index
	}
	t.cells[position+t.offset] = symbol
}

func (t *Tape) Read(position int) rune {
	index := position + t.offset
	if index >= 0 && index < len(t.cells) {
		return t.cells[index]
	}
	return Blank
}

func (t *Tape) Clear() {
	t.cells = nil
	t.offset = 0
}

func (t *Tape) Len() int {
	return len(t.cells)
}

func (t *Tape) Offset() int {
	return t.offset
}

// Bounds returns the materialized logical range [start, end).
func (t *Tape) Bounds() (start, end int) {
	return -t.offset, len(t.cells) - t.offset
}

func (t *Tape) Content() string {
	if len(t.cells) == 0 {
		return ""
	}
	return t.ContentRange(t.Bounds())
}

func (t *Tape) ContentRange(start, end int) string {
	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteRune(t.Read(i))
	}
	return b.String()
}

// Window renders [center-radius, center+radius] with the center cell bracketed.
func (t *Tape) Window(center int, radius int) string {
	if len(t.cells) == 0 {
		return "[]"
	}
	return t.render(center-radius, center+radius+1, &center)
}

// View renders the whole materialized range without a highlighted cell.
func (t *Tape) View() string {
	if len(t.cells) == 0 {
		return "[]"
	}
	start, end := t.Bounds()
	return t.render(start, end, nil)
}

func (t *Tape) render(start, end int, center *int) string {
	var b strings.Builder
	for i := start; i < end; i++ {
		symbol := t.Read(i)
		if center != nil && i == *center {
			b.WriteRune('[')
			b.WriteRune(symbol)
			b.WriteRune(']')
			continue
		}
		b.WriteRune(symbol)
	}
	return b.String()
}

func (t *Tape) String() string {
	return t.Content()
}

func (t *Tape) GoString() string {
	return fmt.Sprintf("Tape(cells=%d, offset=%d)", len(t.cells), t.offset)
}

func blanks(n int) []rune {
	ret := make([]rune, n)
	for i := range ret {
		ret[i] = Blank
	}
	return ret
}
