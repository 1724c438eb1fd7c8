package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typeahead/internal/domain"
	"typeahead/internal/ui/services/events"
)

func items(labels ...string) []domain.Item {
	out := make([]domain.Item, len(labels))
	for i, l := range labels {
		out[i] = domain.Item{Value: l, Label: l}
	}
	return out
}

func TestStartsClosed(t *testing.T) {
	s := NewService(nil)
	assert.False(t, s.IsOpen())
	assert.Equal(t, NoHighlight, s.Highlighted())
	assert.Nil(t, s.Items())
}

func TestOpenWithItemsFiresHandlerOnce(t *testing.T) {
	s := NewService(nil)
	var calls [][]domain.Item
	s.SetOpenHandler(func(it []domain.Item) { calls = append(calls, it) })

	list := items("Prague", "Brno")
	require.True(t, s.Open(list))

	assert.True(t, s.IsOpen())
	assert.Equal(t, NoHighlight, s.Highlighted())
	require.Len(t, calls, 1)
	assert.Equal(t, list, calls[0])
}

func TestOpenWithNoItemsStaysClosed(t *testing.T) {
	s := NewService(nil)
	fired := false
	s.SetOpenHandler(func([]domain.Item) { fired = true })

	assert.False(t, s.Open(nil))
	assert.False(t, s.Open([]domain.Item{}))
	assert.False(t, s.IsOpen())
	assert.False(t, fired)
}

func TestOpenWithNoItemsClosesAnOpenList(t *testing.T) {
	s := NewService(nil)
	s.Open(items("a"))
	s.Open(nil)
	assert.False(t, s.IsOpen())
}

func TestReopenResetsHighlight(t *testing.T) {
	s := NewService(nil)
	list := items("a", "b", "c")
	s.Open(list)
	s.HighlightNext()
	s.HighlightNext()
	require.Equal(t, 1, s.Highlighted())

	// Same content still resets
	s.Open(items("a", "b", "c"))
	assert.Equal(t, NoHighlight, s.Highlighted())
}

func TestHighlightNextWrapsFromNone(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for k := 1; k <= 9; k++ {
			s := NewService(nil)
			s.Open(items(make([]string, n)...))
			for i := 0; i < k; i++ {
				s.HighlightNext()
			}
			assert.Equal(t, (k-1)%n, s.Highlighted(), "n=%d k=%d", n, k)
		}
	}
}

func TestHighlightPrevInvertsNext(t *testing.T) {
	s := NewService(nil)
	s.Open(items("a", "b", "c", "d"))

	s.HighlightNext()
	s.HighlightNext()
	start := s.Highlighted()
	for k := 1; k <= 6; k++ {
		for i := 0; i < k; i++ {
			s.HighlightNext()
		}
		for i := 0; i < k; i++ {
			s.HighlightPrev()
		}
		assert.Equal(t, start, s.Highlighted())
	}
}

func TestHighlightPrevFromNoneLandsOnLast(t *testing.T) {
	s := NewService(nil)
	s.Open(items("a", "b", "c"))
	s.Navigate(DirectionUp)
	assert.Equal(t, 2, s.Highlighted())
	s.Navigate(DirectionDown)
	assert.Equal(t, 0, s.Highlighted())
}

func TestHighlightIsNoopWhenClosed(t *testing.T) {
	s := NewService(nil)
	s.HighlightNext()
	s.HighlightPrev()
	s.HighlightIndex(0)
	assert.False(t, s.IsOpen())
	assert.Equal(t, NoHighlight, s.Highlighted())
}

func TestHighlightIndexIgnoresOutOfRange(t *testing.T) {
	s := NewService(nil)
	s.Open(items("a", "b"))
	s.HighlightIndex(5)
	assert.Equal(t, NoHighlight, s.Highlighted())
	s.HighlightIndex(1)
	item, ok := s.HighlightedItem()
	require.True(t, ok)
	assert.Equal(t, "b", item.Value)
}

func TestCloseIsIdempotent(t *testing.T) {
	bus := events.NewBus()
	closed := 0
	bus.Subscribe(events.TypeOf(ClosedEvent{}), func(interface{}) { closed++ })

	s := NewService(bus)
	s.Open(items("a"))
	assert.True(t, s.Close())
	assert.False(t, s.Close())
	assert.Equal(t, 1, closed)
	assert.Equal(t, NoHighlight, s.Highlighted())
}

func TestPublishesHighlightMoves(t *testing.T) {
	bus := events.NewBus()
	var moves []HighlightMovedEvent
	bus.Subscribe(events.TypeOf(HighlightMovedEvent{}), func(e interface{}) {
		moves = append(moves, e.(HighlightMovedEvent))
	})

	s := NewService(bus)
	s.Open(items("a", "b"))
	s.HighlightNext()
	s.HighlightNext()

	assert.Equal(t, []HighlightMovedEvent{
		{OldIndex: NoHighlight, NewIndex: 0},
		{OldIndex: 0, NewIndex: 1},
	}, moves)
}
