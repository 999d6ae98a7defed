package core

import "time"

// DelayGate holds the simulation back until a deadline passes. It implements
// pause-as-delay: triggering while a delay is already pending extends the
// deadline instead of toggling a paused state, so the simulation always
// resumes on its own.
type DelayGate struct {
	resumeAt time.Time
}

// Trigger pushes the deadline d further out, measured from now or from the
// current deadline, whichever is later.
func (dg *DelayGate) Trigger(d time.Duration) {
	base := time.Now()
	if dg.resumeAt.After(base) {
		base = dg.resumeAt
	}
	dg.resumeAt = base.Add(d)
}

// Waiting reports whether the delay is still pending.
func (dg *DelayGate) Waiting() bool {
	return time.Now().Before(dg.resumeAt)
}
