package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Tool     *ToolPresenter
	Frame    *FramePresenter
	Schedule func()
}

func NewLoop(tool *ToolPresenter, frame *FramePresenter, schedule func()) *Loop {
	return &Loop{Tool: tool, Frame: frame, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Reflect mode changes first so the frame renders with current affordances.
	if l.Tool != nil {
		l.Tool.Tick(now)
	}
	if l.Frame != nil {
		l.Frame.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
