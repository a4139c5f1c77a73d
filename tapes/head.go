package tapes

import "fmt"

// Head addresses a Tape it does not own.
type Head struct {
	tape     *Tape
	position int
}

func NewHead(tape *Tape) *Head {
	return &Head{
		tape: tape,
	}
}

func (h *Head) Read() rune {
	return h.tape.Read(h.position)
}

func (h *Head) Write(symbol rune) {
	h.tape.Write(h.position, symbol)
}

// WriteString writes runes left to right, advancing one cell per rune.
func (h *Head) WriteString(str string) {
	for _, r := range str {
		h.Write(r)
		h.MoveRight()
	}
}

func (h *Head) MoveLeft() {
	h.position--
}

func (h *Head) MoveRight() {
	h.position++
}

func (h *Head) MoveTo(position int) {
	h.position = position
}

func (h *Head) Position() int {
	return h.position
}

func (h *Head) Status(radius int) string {
	return fmt.Sprintf("position: %d, symbol: '%c', tape: %s",
		h.position,
		h.Read(),
		h.tape.Window(h.position, radius),
	)
}

func (h *Head) String() string {
	return fmt.Sprintf("Head(position=%d, symbol='%c')", h.position, h.Read())
}

func (h *Head) GoString() string {
	return fmt.Sprintf("Head(position=%d, tape=%#v)", h.position, h.tape)
}
