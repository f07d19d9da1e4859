package session

import (
	"sync"
	"time"
)

// Ticker delivers tick times to the controller.
type Ticker interface {
	C() <-chan time.Time
	Stop()
	Reset(d time.Duration)
}

// wallTicker adapts time.Ticker to the Ticker interface.
type wallTicker struct {
	t *time.Ticker
}

// NewTicker returns a Ticker backed by time.Ticker.
func NewTicker(d time.Duration) Ticker {
	return &wallTicker{t: time.NewTicker(d)}
}

func (w *wallTicker) C() <-chan time.Time {
	return w.t.C
}

func (w *wallTicker) Stop() {
	w.t.Stop()
}

func (w *wallTicker) Reset(d time.Duration) {
	w.t.Reset(d)
}

// ManualTicker is a Ticker that only fires when Fire is called.
type ManualTicker struct {
	ch chan time.Time

	mu      sync.Mutex
	stopped bool
	resets  int
}

// NewManualTicker creates a stopped-on-demand ticker for tests.
func NewManualTicker() *ManualTicker {
	return &ManualTicker{ch: make(chan time.Time)}
}

func (m *ManualTicker) C() <-chan time.Time {
	return m.ch
}

func (m *ManualTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *ManualTicker) Reset(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = false
	m.resets++
}

// Fire delivers one tick. It blocks until the controller receives it.
func (m *ManualTicker) Fire() {
	m.ch <- time.Now()
}

// Stopped reports whether Stop was called after the last Reset.
func (m *ManualTicker) Stopped() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopped
}

// Resets returns how many times Reset was called.
func (m *ManualTicker) Resets() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resets
}
