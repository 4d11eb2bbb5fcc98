package refresh

import (
	"sync"
	"time"
)

// ManualPump is a FramePump driven by an explicit Tick call, for hosts
// that flush from their own event loop and for tests.
type ManualPump struct {
	mu        sync.Mutex
	fn        func()
	scheduled int
}

// NewManualPump creates a manual pump.
func NewManualPump() *ManualPump {
	return &ManualPump{}
}

// Schedule stores the callback for the next Tick. A second Schedule
// before the tick replaces the slot; the contract allows at most one
// outstanding request, so this only happens on misuse.
func (p *ManualPump) Schedule(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fn = fn
	p.scheduled++
}

// Tick fires the stored callback, if any. The slot is cleared before
// the callback runs so it may re-schedule.
func (p *ManualPump) Tick() {
	p.mu.Lock()
	fn := p.fn
	p.fn = nil
	p.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Armed returns true if a callback is waiting for the next tick.
func (p *ManualPump) Armed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fn != nil
}

// ScheduleCount returns how many times Schedule has been called.
func (p *ManualPump) ScheduleCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scheduled
}

// TickerPump is a FramePump backed by a fixed-rate ticker, for hosts
// without a vsync-style callback. The callback runs on the pump's
// goroutine; hosts that mutate renderer state elsewhere must confine
// or synchronize accordingly.
type TickerPump struct {
	mu   sync.Mutex
	fn   func()
	done chan struct{}
	once sync.Once
}

// NewTickerPump starts a pump firing at the given interval.
func NewTickerPump(interval time.Duration) *TickerPump {
	p := &TickerPump{done: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.mu.Lock()
				fn := p.fn
				p.fn = nil
				p.mu.Unlock()
				if fn != nil {
					fn()
				}
			case <-p.done:
				return
			}
		}
	}()

	return p
}

// Schedule stores the callback for the next tick.
func (p *TickerPump) Schedule(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fn = fn
}

// Stop shuts the pump down. A callback scheduled but not yet fired is
// dropped.
func (p *TickerPump) Stop() {
	p.once.Do(func() { close(p.done) })
}
