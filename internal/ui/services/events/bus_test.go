package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type pinged struct{ n int }

func TestPublishIsSynchronousAndOrdered(t *testing.T) {
	b := NewBus()
	var got []int
	b.Subscribe(TypeOf(pinged{}), func(e interface{}) { got = append(got, e.(pinged).n) })
	b.Subscribe(TypeOf(pinged{}), func(e interface{}) { got = append(got, -e.(pinged).n) })

	b.Publish(pinged{n: 1})
	assert.Equal(t, []int{1, -1}, got)
}

func TestHandlersMayPublishReentrantly(t *testing.T) {
	b := NewBus()
	var got []int
	b.Subscribe(TypeOf(pinged{}), func(e interface{}) {
		n := e.(pinged).n
		got = append(got, n)
		if n < 3 {
			b.Publish(pinged{n: n + 1})
		}
	})

	b.Publish(pinged{n: 1})
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestResetDropsListeners(t *testing.T) {
	b := NewBus()
	called := false
	b.Subscribe(TypeOf(pinged{}), func(interface{}) { called = true })
	b.Reset()
	b.Publish(pinged{})
	assert.False(t, called)
}
