package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopic(t *testing.T) {
	topic := NewTopic[int]()
	a := topic.Subscribe(2)
	b := topic.Subscribe(1)
	assert.Equal(t, 2, topic.NumSubscribers())

	assert.Equal(t, 2, topic.Publish(1))

	// b is full and misses this one
	assert.Equal(t, 1, topic.Publish(2))

	assert.Equal(t, 1, <-a.Recv())
	assert.Equal(t, 2, <-a.Recv())
	assert.Equal(t, 1, <-b.Recv())

	b.Done()
	b.Done()
	assert.Equal(t, 1, topic.NumSubscribers())

	_, ok := <-b.Recv()
	assert.False(t, ok, "channel should be closed")

	assert.Equal(t, 1, topic.Publish(3))
	assert.Equal(t, 3, <-a.Recv())
}
