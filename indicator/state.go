package indicator

// State is the lifecycle of an indicator.
type State int

const (
	Idle State = iota
	Running
	GracefulStopping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case GracefulStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Phase is the lifecycle of a single circle.
type Phase int

const (
	// Pending animators exist but have not been told to pulse yet.
	Pending Phase = iota
	Pulsing
	Exiting
	Removed
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Pulsing:
		return "pulsing"
	case Exiting:
		return "exiting"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}
