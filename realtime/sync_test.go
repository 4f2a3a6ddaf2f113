package realtime

import (
	"context"
	"sync"
	"testing"

	"taskflow/model"
)

func newTestSubscription() *Subscription {
	_, cancel := context.WithCancel(context.Background())
	return &Subscription{cancel: cancel}
}

func TestDeliverInvokesCallbackUntilCanceled(t *testing.T) {
	sub := newTestSubscription()

	var got [][]model.Task
	fn := func(tasks []model.Task) { got = append(got, tasks) }

	sub.deliver(fn, []model.Task{{TaskID: "t1"}})
	sub.deliver(fn, []model.Task{{TaskID: "t1"}, {TaskID: "t2"}})
	if len(got) != 2 {
		t.Fatalf("expected two deliveries, got %d", len(got))
	}

	sub.Cancel()

	sub.deliver(fn, []model.Task{{TaskID: "t3"}})
	sub.deliver(fn, nil)
	if len(got) != 2 {
		t.Fatalf("no snapshot may be delivered after Cancel returns, got %d", len(got))
	}
}

func TestCancelIsSafeDuringInFlightDelivery(t *testing.T) {
	sub := newTestSubscription()

	started := make(chan struct{})
	release := make(chan struct{})
	delivered := 0
	fn := func([]model.Task) {
		delivered++
		close(started)
		<-release
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		sub.deliver(fn, []model.Task{{TaskID: "t1"}})
	}()

	<-started
	canceled := make(chan struct{})
	go func() {
		sub.Cancel()
		close(canceled)
	}()

	// Cancel must wait for the in-flight delivery.
	select {
	case <-canceled:
		t.Fatal("Cancel returned while a delivery was still running")
	default:
	}

	close(release)
	wg.Wait()
	<-canceled

	sub.deliver(fn, []model.Task{{TaskID: "t2"}})
	if delivered != 1 {
		t.Fatalf("expected exactly one delivery, got %d", delivered)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	sub := newTestSubscription()
	sub.Cancel()
	sub.Cancel()
}
