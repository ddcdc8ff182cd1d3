package events

import (
	"context"
	"testing"
)

func TestInMemoryDispatcherRoutesByType(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var checkedIn, deleted int
	dispatcher.Subscribe(EventAttendanceCheckedIn, func(ctx context.Context, event Event) error {
		checkedIn++
		return nil
	})
	dispatcher.Subscribe(EventEmployeeDeleted, func(ctx context.Context, event Event) error {
		deleted++
		return nil
	})

	ctx := context.Background()
	_ = dispatcher.Publish(ctx, Event{Type: EventAttendanceCheckedIn, EntityID: 1})
	_ = dispatcher.Publish(ctx, Event{Type: EventAttendanceCheckedIn, EntityID: 2})
	_ = dispatcher.Publish(ctx, Event{Type: EventEmployeeCreated, EntityID: 3})

	if checkedIn != 2 {
		t.Fatalf("expected 2 check-in deliveries, got %d", checkedIn)
	}
	if deleted != 0 {
		t.Fatalf("unrelated handler must not fire, got %d", deleted)
	}
}

func TestRedisMirrorUnconfiguredReturnsInner(t *testing.T) {
	inner := NewInMemoryDispatcher()
	if got := NewRedisMirror(inner, nil, "events", nil); got != inner {
		t.Fatal("missing client must return the inner dispatcher unchanged")
	}
	if got := NewRedisMirror(inner, nil, "", nil); got != inner {
		t.Fatal("missing channel must return the inner dispatcher unchanged")
	}
}
