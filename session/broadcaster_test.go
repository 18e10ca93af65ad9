package session

import "testing"

func TestExpiryBroadcaster_SignalsEverySubscriber(t *testing.T) {
	b := NewExpiryBroadcaster()
	_, first := b.Subscribe()
	_, second := b.Subscribe()

	b.Broadcast()

	select {
	case <-first:
	default:
		t.Fatalf("expected first subscriber to observe the signal")
	}
	select {
	case <-second:
	default:
		t.Fatalf("expected second subscriber to observe the signal")
	}
}

func TestExpiryBroadcaster_DoesNotBlockOnSaturatedListener(t *testing.T) {
	b := NewExpiryBroadcaster()
	b.Subscribe()

	// Neither broadcast may block even though nobody drains the channel.
	b.Broadcast()
	b.Broadcast()
}

func TestExpiryBroadcaster_UnsubscribedListenerStopsReceiving(t *testing.T) {
	b := NewExpiryBroadcaster()
	id, ch := b.Subscribe()
	b.Unsubscribe(id)

	b.Broadcast()

	select {
	case <-ch:
		t.Fatalf("expected no signal after unsubscribe")
	default:
	}
	if b.ListenerCount() != 0 {
		t.Fatalf("expected no remaining listeners, have %d", b.ListenerCount())
	}
}
