package site

import (
	"time"

	"github.com/google/uuid"
)

// Report summarizes one build invocation.
type Report struct {
	ID       uuid.UUID
	Started  time.Time
	Pages    int
	Assets   int
	Duration time.Duration
}

// Report returns the current build counters with the elapsed time filled in.
func (b *Builder) Report() Report {
	r := b.report
	r.Duration = time.Since(r.Started)
	return r
}
