package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"spsatune/internal/model"
)

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	b := NewBus()
	ch1 := b.Subscribe(1)
	ch2 := b.Subscribe(1)

	b.Publish(model.CheckpointEvent{Iteration: 1})

	select {
	case e := <-ch1:
		require.Equal(t, 1, e.Iteration)
	case <-time.After(time.Second):
		t.Fatal("ch1 did not receive event")
	}
	select {
	case e := <-ch2:
		require.Equal(t, 1, e.Iteration)
	case <-time.After(time.Second):
		t.Fatal("ch2 did not receive event")
	}
}

func TestPublishDropsOnFullSubscriber(t *testing.T) {
	b := NewBus()
	ch := b.Subscribe(1)

	b.Publish(model.CheckpointEvent{Iteration: 1})
	b.Publish(model.CheckpointEvent{Iteration: 2}) // channel still full of event 1, this one drops

	e := <-ch
	require.Equal(t, 1, e.Iteration)

	select {
	case <-ch:
		t.Fatal("expected no second event, publish should have dropped it")
	default:
	}
}

func TestPublishWithNoSubscribersDoesNotBlock(t *testing.T) {
	b := NewBus()
	done := make(chan struct{})
	go func() {
		b.Publish(model.CheckpointEvent{Iteration: 1})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish with no subscribers blocked")
	}
}
