package storage

import (
	"context"
	"log"
	"time"

	"github.com/Joo200/piston/pkg/cmd"
)

// Recorder is a cmd.Listener persisting every finished invocation to the
// command history.
type Recorder struct {
	Store *Storage
}

func (r *Recorder) BeforeCall(ctx context.Context, p *cmd.Parameters) {}

func (r *Recorder) AfterCall(ctx context.Context, p *cmd.Parameters, status int) {
	r.record(HistoryRecord{
		Command:  p.Command().Name(),
		Status:   status,
		Datetime: time.Now(),
	})
}

func (r *Recorder) AfterThrow(ctx context.Context, p *cmd.Parameters, err error) {
	r.record(HistoryRecord{
		Command:  p.Command().Name(),
		Error:    err.Error(),
		Datetime: time.Now(),
	})
}

func (r *Recorder) record(rec HistoryRecord) {
	if err := r.Store.AddHistory(rec); err != nil {
		log.Println("[WARN] Failed to record command history:", err)
	}
}
