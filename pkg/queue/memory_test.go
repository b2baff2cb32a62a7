package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_FIFO(t *testing.T) {
	q := NewInMemoryQueue(8)

	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	require.NoError(t, q.Enqueue("c"))
	assert.Equal(t, 3, q.Size())

	items, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b", "c"}, items)
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_EnqueueFullFails(t *testing.T) {
	q := NewInMemoryQueue(1)

	require.NoError(t, q.Enqueue("a"))
	assert.Error(t, q.Enqueue("b"))
	assert.Equal(t, 1, q.Size())
}

func TestInMemoryQueue_Clear(t *testing.T) {
	q := NewInMemoryQueue(4)
	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))

	q.Clear()
	assert.Equal(t, 0, q.Size())

	items, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Empty(t, items)
}
