// Package refresh coalesces dirty row ranges and flushes them to the
// data layers once per display-refresh cycle.
package refresh

import (
	"sync"

	"github.com/dshills/vtrender/internal/renderer/core"
)

// maxPendingRanges bounds the merge cost of a flush. Above this count
// the queue is treated as a full-viewport repaint: many small updates
// cost the same as redrawing everything anyway.
const maxPendingRanges = 4

// FramePump runs a callback once, no earlier than the next display
// repaint. At most one request may be outstanding; the pump re-arms
// only when Schedule is called again after the callback has fired.
type FramePump interface {
	Schedule(fn func())
}

// FlushFunc receives the effective row range of a completed merge.
// The scheduler has already emptied its queue and disarmed itself when
// this runs, so the callee may queue further refreshes.
type FlushFunc func(start, end int)

// Scheduler owns the pending queue of dirty row ranges and the
// single-flight pump request. Idle/Pending state is tracked by the
// armed flag; at most one pump request is ever outstanding.
type Scheduler struct {
	mu      sync.Mutex
	pending []core.RowRange
	armed   bool

	pump    FramePump
	rows    func() int
	onFlush FlushFunc
}

// NewScheduler creates a scheduler. rows supplies the current viewport
// height for the full-viewport fallback; onFlush is invoked with the
// effective range of every flush.
func NewScheduler(pump FramePump, rows func() int, onFlush FlushFunc) *Scheduler {
	return &Scheduler{
		pending: make([]core.RowRange, 0, maxPendingRanges+1),
		pump:    pump,
		rows:    rows,
		onFlush: onFlush,
	}
}

// Queue appends a dirty row range. The first call while idle arms the
// frame pump; further calls before the next flush only append. Never
// blocks.
func (s *Scheduler) Queue(start, end int) {
	s.mu.Lock()
	s.pending = append(s.pending, core.RowRange{Start: start, End: end})
	arm := !s.armed
	s.armed = true
	s.mu.Unlock()

	if arm {
		s.pump.Schedule(s.flushFrame)
	}
}

// Pending returns true if a flush is scheduled.
func (s *Scheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.armed
}

// QueueLen returns the number of unmerged ranges waiting for a flush.
func (s *Scheduler) QueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// flushFrame merges the queue into one effective range and hands it to
// the flush callback. The queue is emptied and the scheduler disarmed
// before the callback runs: a layer that queues a refresh while being
// painted must see an idle scheduler and arm a fresh cycle.
func (s *Scheduler) flushFrame() {
	s.mu.Lock()
	if len(s.pending) == 0 {
		// Unreachable when driven through Queue; disarm and bail.
		s.armed = false
		s.mu.Unlock()
		return
	}

	var effective core.RowRange
	if len(s.pending) > maxPendingRanges {
		effective = core.RowRange{Start: 0, End: s.rows() - 1}
	} else {
		effective = s.pending[0]
		for _, r := range s.pending[1:] {
			if r.Start < effective.Start {
				effective.Start = r.Start
			}
			if r.End > effective.End {
				effective.End = r.End
			}
		}
	}

	s.pending = s.pending[:0]
	s.armed = false
	s.mu.Unlock()

	s.onFlush(effective.Start, effective.End)
}
