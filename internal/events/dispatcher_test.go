package events

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcherInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher(zap.NewNop())

	var calls []string
	d.Subscribe(EventQueryCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "first")
		return nil
	})
	d.Subscribe(EventQueryCreated, func(_ context.Context, _ Event) error {
		calls = append(calls, "second")
		return nil
	})
	d.Subscribe(EventQueryDeleted, func(_ context.Context, _ Event) error {
		calls = append(calls, "unrelated")
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventQueryCreated, QueryID: "q-1"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, want [first second]", calls)
	}
}

func TestDispatcherLogsAndContinuesPastHandlerError(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewInMemoryDispatcher(zap.New(core))

	reached := false
	d.Subscribe(EventQueryAssigned, func(_ context.Context, _ Event) error {
		return errors.New("handler failed")
	})
	d.Subscribe(EventQueryAssigned, func(_ context.Context, _ Event) error {
		reached = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventQueryAssigned, QueryID: "q-1"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !reached {
		t.Error("second handler was not invoked after first errored")
	}
	if got := logs.FilterMessage("event handler failed").Len(); got != 1 {
		t.Errorf("warning entries = %d, want 1 for the failed handler", got)
	}
}
