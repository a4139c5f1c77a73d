package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/reusee/tapecalc/machines"
)

// MenuItem is one entry of the interactive menu, keyed by digit.
type MenuItem struct {
	Key   string
	Label string
}

var Menu = []MenuItem{
	{"1", "add"},
	{"2", "subtract"},
	{"3", "multiply"},
	{"4", "divide"},
	{"5", "power"},
	{"6", "square root"},
	{"7", "machine status"},
	{"8", "history"},
	{"9", "reset machine"},
	{"0", "exit"},
}

type Styles struct {
	Title   lipgloss.Style
	Key     lipgloss.Style
	Panel   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Heading lipgloss.Style
}

// View renders machine state for a terminal.
type View struct {
	Styles Styles
	Title  string
}

// New picks colors by the capabilities of w.
func New(w io.Writer, title string) *View {
	r := lipgloss.NewRenderer(w)
	return &View{
		Title: title,
		Styles: Styles{
			Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
			Key:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
			Panel:   r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Label:   r.NewStyle().Faint(true),
			Value:   r.NewStyle().Bold(true),
			Error:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935")),
			Muted:   r.NewStyle().Faint(true),
			Heading: r.NewStyle().Bold(true).Underline(true),
		},
	}
}

func (v *View) Menu() string {
	lines := []string{
		v.Styles.Title.Render(strings.ToUpper(v.Title)),
	}
	for _, item := range Menu {
		lines = append(lines, v.Styles.Key.Render(item.Key)+". "+item.Label)
	}
	return v.Styles.Panel.Render(strings.Join(lines, "\n"))
}

func (v *View) Status(m *machines.Machine) string {
	snapshot := m.Snapshot()
	status := v.Styles.Value.Render(snapshot.Status)
	if m.Status() == machines.StatusError {
		status = v.Styles.Error.Render(snapshot.Status)
	}
	rows := [][2]string{
		{"status", status},
		{"head position", fmt.Sprint(snapshot.Position)},
		{"symbol", fmt.Sprintf("'%s'", snapshot.Symbol)},
		{"tape", snapshot.Window},
		{"content", fmt.Sprintf("'%s'", snapshot.Content)},
	}
	labels := make([]string, 0, len(rows))
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, v.Styles.Label.Render(row[0]+":"))
		values = append(values, row[1])
	}
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		strings.Join(labels, "\n"),
		" ",
		strings.Join(values, "\n"),
	)
	return v.Styles.Panel.Render(body)
}

func (v *View) History(entries []string, title string) string {
	if len(entries) == 0 {
		return v.Styles.Muted.Render("no operations in history")
	}
	var b strings.Builder
	b.WriteString(v.Styles.Heading.Render(fmt.Sprintf("%s (%d)", title, len(entries))))
	for i, entry := range entries {
		fmt.Fprintf(&b, "\n%2d. %s", i+1, entry)
	}
	return b.String()
}

func (v *View) Result(result machines.Result) string {
	if !result.OK() {
		return v.Styles.Error.Render(fmt.Sprintf("error: %s = %v", result.Expr(), result.Err))
	}
	return fmt.Sprintf("result: %s = %s", result.Expr(), v.Styles.Value.Render(result.String()))
}
