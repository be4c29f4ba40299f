package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue(4)
	assert.True(t, q.Push(Pause))
	assert.True(t, q.Push(ToggleOverlay))
	assert.True(t, q.Push(Quit))

	assert.Equal(t, []Event{Pause, ToggleOverlay, Quit}, q.Drain())
	assert.Empty(t, q.Drain())
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue(1)
	assert.True(t, q.Push(Pause))
	assert.False(t, q.Push(Resume))
	assert.Equal(t, []Event{Pause}, q.Drain())
}

func TestQueueDefaultCapacity(t *testing.T) {
	q := NewQueue(0)
	for i := 0; i < 16; i++ {
		assert.True(t, q.Push(TogglePause))
	}
	assert.False(t, q.Push(TogglePause))
}
