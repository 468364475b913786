package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "github.com/pixeldojo/shadowboxer/config"
)

func TestActionQueueFIFO(t *testing.T) {
	q := &ActionQueueData{Cap: 3}

	require.True(t, q.Enqueue(cfg.ActionPunch))
	require.True(t, q.Enqueue(cfg.ActionKick))
	require.True(t, q.Enqueue(cfg.ActionBlock))

	got, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, cfg.ActionPunch, got)

	got, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, cfg.ActionKick, got)

	got, ok = q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, cfg.ActionBlock, got)

	_, ok = q.Dequeue()
	assert.False(t, ok, "queue should be empty")
}

func TestActionQueueDropsWhenFull(t *testing.T) {
	q := &ActionQueueData{Cap: 2}

	assert.True(t, q.Enqueue(cfg.ActionPunch))
	assert.True(t, q.Enqueue(cfg.ActionPunch))
	assert.False(t, q.Enqueue(cfg.ActionKick), "third enqueue should drop")
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, 1, q.Dropped)

	// Draining frees capacity again.
	_, ok := q.Dequeue()
	require.True(t, ok)
	assert.True(t, q.Enqueue(cfg.ActionKick))
	assert.Equal(t, 1, q.Dropped, "successful enqueue must not change drop count")
}

func TestActionQueuePeekDoesNotConsume(t *testing.T) {
	q := &ActionQueueData{Cap: 3}
	q.Enqueue(cfg.ActionForward)

	got, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, cfg.ActionForward, got)
	assert.Equal(t, 1, q.Len())
}

func TestActionQueueClear(t *testing.T) {
	q := &ActionQueueData{Cap: 3}
	q.Enqueue(cfg.ActionPunch)
	q.Enqueue(cfg.ActionKick)
	q.Clear()

	assert.Equal(t, 0, q.Len())
	_, ok := q.Peek()
	assert.False(t, ok)
}
