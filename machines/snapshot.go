package machines

type Snapshot struct {
	Status   string   `json:"status"`
	Position int      `json:"position"`
	Symbol   string   `json:"symbol"`
	Content  string   `json:"content"`
	Window   string   `json:"window"`
	History  []string `json:"history"`
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Status:   m.status.String(),
		Position: m.head.Position(),
		Symbol:   string(m.head.Read()),
		Content:  m.tape.Content(),
		Window:   m.tape.Window(m.head.Position(), m.radius),
		History:  m.History(),
	}
}
