package programs

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Step struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Action string `json:"action"` // format "op: args"
	Status string `json:"status,omitempty"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

type LogEntry struct {
	Time    time.Time `json:"time"`
	Step    string    `json:"step"`
	Message string    `json:"message"`
}

type Program struct {
	PC    int        `json:"pc"`
	Steps []*Step    `json:"steps"`
	Logs  []LogEntry `json:"logs,omitempty"`
}

func New(steps ...*Step) *Program {
	return &Program{
		Steps: steps,
	}
}

func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var program Program
	if err := json.Unmarshal(data, &program); err != nil {
		return nil, fmt.Errorf("decode program %s: %w", path, err)
	}
	return &program, nil
}

func (p *Program) Done() bool {
	return p.PC < 0 || p.PC >= len(p.Steps)
}

// Failed returns steps that ended in failure.
func (p *Program) Failed() (ret []*Step) {
	for _, step := range p.Steps {
		if step.Status == StatusFailed {
			ret = append(ret, step)
		}
	}
	return
}

func (p *Program) log(step *Step, message string) {
	p.Logs = append(p.Logs, LogEntry{
		Time:    time.Now(),
		Step:    step.label(),
		Message: message,
	})
	// keep the log bounded
	const maxLogs = 500
	if len(p.Logs) > maxLogs {
		p.Logs = p.Logs[len(p.Logs)-maxLogs:]
	}
}

func (s *Step) label() string {
	if s.Name != "" {
		return s.Name
	}
	if s.ID != "" {
		return s.ID
	}
	return s.Action
}
