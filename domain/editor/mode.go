package editor

// Mode enumerates the mutually exclusive interaction modes. A single enum
// field guarantees no two modal modes are ever active at once.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAddPoint
	ModeDeletePoint
	ModeDeleteRegion
	ModeSelect
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeAddPoint:
		return "add-point"
	case ModeDeletePoint:
		return "delete-point"
	case ModeDeleteRegion:
		return "delete-region"
	case ModeSelect:
		return "select"
	default:
		return "unknown"
	}
}
