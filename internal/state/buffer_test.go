package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"spsatune/internal/model"
)

func TestRingBufferBelowCapacityPreservesOrder(t *testing.T) {
	rb := NewRingBuffer(5)
	for i := 1; i <= 3; i++ {
		rb.Add(model.CheckpointEvent{Iteration: i})
	}

	events := rb.GetAll()
	require.Len(t, events, 3)
	require.Equal(t, 1, events[0].Iteration)
	require.Equal(t, 3, events[2].Iteration)
	require.Equal(t, 3, rb.Size())
}

func TestRingBufferWrapsAroundKeepingOnlyMostRecent(t *testing.T) {
	rb := NewRingBuffer(3)
	for i := 1; i <= 5; i++ {
		rb.Add(model.CheckpointEvent{Iteration: i})
	}

	events := rb.GetAll()
	require.Len(t, events, 3)
	require.Equal(t, []int{3, 4, 5}, []int{events[0].Iteration, events[1].Iteration, events[2].Iteration})
	require.Equal(t, 3, rb.Size())
}

func TestRingBufferEmptyReturnsNil(t *testing.T) {
	rb := NewRingBuffer(4)
	require.Nil(t, rb.GetAll())
	require.Equal(t, 0, rb.Size())
}
