package event

import "testing"

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := NewBus()

	var got []any
	b.Subscribe("render.refresh", func(p any) { got = append(got, p) })

	b.Publish("render.refresh", 42)
	b.Publish("render.refresh", "x")

	if len(got) != 2 || got[0] != 42 || got[1] != "x" {
		t.Errorf("got %v, want [42 x]", got)
	}
}

func TestPublishTopicIsolation(t *testing.T) {
	b := NewBus()

	calls := 0
	b.Subscribe("a", func(any) { calls++ })

	b.Publish("b", nil)
	if calls != 0 {
		t.Errorf("handler for topic a called %d times by topic b", calls)
	}
}

func TestSubscriptionOrder(t *testing.T) {
	b := NewBus()

	var order []int
	b.Subscribe("t", func(any) { order = append(order, 1) })
	b.Subscribe("t", func(any) { order = append(order, 2) })
	b.Subscribe("t", func(any) { order = append(order, 3) })

	b.Publish("t", nil)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order = %v, want [1 2 3]", order)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus()

	calls := 0
	sub := b.Subscribe("t", func(any) { calls++ })
	keep := 0
	b.Subscribe("t", func(any) { keep++ })

	b.Unsubscribe(sub)
	b.Publish("t", nil)

	if calls != 0 {
		t.Error("unsubscribed handler should not be called")
	}
	if keep != 1 {
		t.Error("remaining handler should still be called")
	}

	// Double unsubscribe is harmless.
	b.Unsubscribe(sub)
}

func TestPublishWithNoSubscribers(t *testing.T) {
	b := NewBus()
	b.Publish("nobody.home", struct{}{}) // must not panic
}
