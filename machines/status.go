package machines

type Status int

const (
	StatusInitial Status = iota
	StatusPrepared
	StatusCompleted
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusInitial:
		return "initial"
	case StatusPrepared:
		return "prepared"
	case StatusCompleted:
		return "completed"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
