package session

import (
	"sync"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Sink receives snapshots from a running controller.
// Publish is called from the controller goroutine and must not block.
type Sink interface {
	Publish(snap core.Snapshot)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(core.Snapshot)

// Publish calls f(snap).
func (f SinkFunc) Publish(snap core.Snapshot) {
	f(snap)
}

// ChannelSink buffers snapshots on a channel for a consumer goroutine.
// When the consumer falls behind the oldest snapshot is dropped.
type ChannelSink struct {
	snaps    chan core.Snapshot
	done     chan struct{}
	doneOnce sync.Once
}

// NewChannelSink creates a sink holding up to size snapshots.
func NewChannelSink(size int) *ChannelSink {
	if size < 1 {
		size = 8
	}
	return &ChannelSink{
		snaps: make(chan core.Snapshot, size),
		done:  make(chan struct{}),
	}
}

// Publish enqueues a snapshot, dropping the oldest one if the buffer is full.
func (s *ChannelSink) Publish(snap core.Snapshot) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.snaps <- snap:
	default:
		select {
		case <-s.snaps:
		default:
		}
		select {
		case s.snaps <- snap:
		default:
		}
	}
}

// Snapshots returns the channel to read snapshots from.
func (s *ChannelSink) Snapshots() <-chan core.Snapshot {
	return s.snaps
}

// Done returns a channel closed by Close.
func (s *ChannelSink) Done() <-chan struct{} {
	return s.done
}

// Close stops accepting snapshots. Safe to call multiple times.
func (s *ChannelSink) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})
}
