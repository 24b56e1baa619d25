package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

type captureSink struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	err    error
}

func (s *captureSink) Write(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *captureSink) snapshot() []domain.AuditEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditEvent, len(s.events))
	copy(out, s.events)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcherDeliversEvents(t *testing.T) {
	sink := &captureSink{}
	d := NewDispatcher(2, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.AuditEvent{Entity: "employee", EntityID: 1, Action: domain.AuditCreated, Timestamp: time.Now().UTC()})
	d.Record(domain.AuditEvent{Entity: "system_user", EntityID: 1, Action: domain.AuditDeleted, Timestamp: time.Now().UTC()})

	waitFor(t, func() bool { return len(sink.snapshot()) == 2 })
}

func TestDispatcherPreservesPerRecordOrdering(t *testing.T) {
	sink := &captureSink{}
	d := NewDispatcher(4, sink, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{domain.AuditCreated, domain.AuditDeactivated, domain.AuditReactivated, domain.AuditDeleted}
	for _, action := range actions {
		d.Record(domain.AuditEvent{Entity: "employee", EntityID: 7, Action: action, Timestamp: time.Now().UTC()})
	}

	waitFor(t, func() bool { return len(sink.snapshot()) == len(actions) })

	got := sink.snapshot()
	for i, action := range actions {
		if got[i].Action != action {
			t.Fatalf("event %d: got action %q, want %q", i, got[i].Action, action)
		}
	}
}

func TestDispatcherShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, &captureSink{}, zerolog.Nop())

	first := d.shardIndex("employee", 42)
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("employee", 42); got != first {
			t.Fatalf("shard index changed: got %d, want %d", got, first)
		}
	}
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	sink := &captureSink{err: errors.New("unused")}
	// Never started, so the single worker channel fills up and further
	// events must be dropped without blocking.
	d := NewDispatcher(1, sink, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(domain.AuditEvent{Entity: "employee", EntityID: 1, Action: domain.AuditCreated})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full queue")
	}
}
