package state

import "testing"

func TestSignalNotifiesInOrder(t *testing.T) {
	sig := NewSignal(1)
	var order []string
	unsubA := sig.Subscribe(func() { order = append(order, "a") })
	sig.Subscribe(func() { order = append(order, "b") })

	if !sig.Set(2) {
		t.Fatal("expected set to report a change")
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("order = %v, want [a b]", order)
	}

	unsubA()
	unsubA()
	sig.Set(3)
	if len(order) != 3 || order[2] != "b" {
		t.Fatalf("order after unsubscribe = %v", order)
	}
	if got := sig.Version(); got != 2 {
		t.Fatalf("version = %d, want 2", got)
	}
}

func TestComparableSignalDropsEqualSets(t *testing.T) {
	sig := NewComparableSignal("idle")
	calls := 0
	sig.Subscribe(func() { calls++ })

	if sig.Set("idle") {
		t.Fatal("expected equal set to be dropped")
	}
	if !sig.Update(func(s string) string { return s + "!" }) {
		t.Fatal("expected update to change the value")
	}
	if calls != 1 || sig.Get() != "idle!" {
		t.Fatalf("calls=%d value=%q", calls, sig.Get())
	}

	sig.SetEqualFunc(nil)
	if !sig.Set("idle!") {
		t.Fatal("expected every set to count without an equal func")
	}
}

func TestSignalNilReceiver(t *testing.T) {
	var sig *Signal[int]
	if sig.Get() != 0 || sig.Set(1) || sig.Version() != 0 {
		t.Fatal("expected nil signal to be inert")
	}
	sig.Subscribe(func() {})()
}

func TestComputedFollowsDependencies(t *testing.T) {
	a := NewComparableSignal(1)
	b := NewComparableSignal(2)
	sum := NewComputed(func() int { return a.Get() + b.Get() }, a, b)
	sum.SetEqualFunc(EqualComparable[int])

	calls := 0
	sum.Subscribe(func() { calls++ })
	a.Set(5)
	if got := sum.Get(); got != 7 {
		t.Fatalf("sum = %d, want 7", got)
	}
	a.Set(6)
	b.Set(1)
	if got := sum.Get(); got != 7 || calls != 3 {
		t.Fatalf("sum = %d calls = %d, want 7 and 3", got, calls)
	}

	sum.Stop()
	a.Set(100)
	if got := sum.Get(); got != 7 {
		t.Fatalf("sum after stop = %d, want 7", got)
	}
}

func TestComputedWithQueue(t *testing.T) {
	queue := NewQueue()
	count := NewSignal(0)
	doubled := NewComputedWithScheduler(queue, func() int { return count.Get() * 2 }, count)

	count.Set(4)
	if got := doubled.Get(); got != 0 {
		t.Fatalf("doubled before flush = %d, want 0", got)
	}
	if queue.Len() != 1 {
		t.Fatalf("queue len = %d, want 1", queue.Len())
	}
	queue.Flush()
	if got := doubled.Get(); got != 8 {
		t.Fatalf("doubled after flush = %d, want 8", got)
	}
}

func TestQueueFlushDefersNestedSchedules(t *testing.T) {
	queue := NewQueue()
	var ran []int
	queue.Schedule(func() {
		ran = append(ran, 1)
		queue.Schedule(func() { ran = append(ran, 3) })
	})
	queue.Schedule(func() { ran = append(ran, 2) })

	if n := queue.Flush(); n != 2 {
		t.Fatalf("first flush = %d, want 2", n)
	}
	if n := queue.Flush(); n != 1 {
		t.Fatalf("second flush = %d, want 1", n)
	}
	if len(ran) != 3 || ran[0] != 1 || ran[1] != 2 || ran[2] != 3 {
		t.Fatalf("ran = %v", ran)
	}
}

func TestSubscriptionsObserveAndClear(t *testing.T) {
	queue := NewQueue()
	subs := NewSubscriptions(queue)
	sig := NewSignal(0)
	calls := 0
	subs.Observe(sig, func() { calls++ })
	subs.Add(func() { calls += 10 })

	sig.Set(1)
	if calls != 0 {
		t.Fatalf("calls before flush = %d, want 0", calls)
	}
	queue.Flush()
	if calls != 1 {
		t.Fatalf("calls after flush = %d, want 1", calls)
	}

	subs.Clear()
	if calls != 11 || subs.Len() != 0 {
		t.Fatalf("calls=%d len=%d after clear", calls, subs.Len())
	}
	sig.Set(2)
	queue.Flush()
	if calls != 11 {
		t.Fatalf("calls after clear = %d, want 11", calls)
	}
}

func TestSubscriptionsWithoutScheduler(t *testing.T) {
	subs := NewSubscriptions(nil)
	sig := NewSignal("")
	calls := 0
	subs.Observe(sig, func() { calls++ })
	sig.Set("x")
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}
