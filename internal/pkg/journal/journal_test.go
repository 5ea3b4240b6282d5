package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

type stubEvent struct {
	kind string
	id   string
}

func (e stubEvent) EventType() string   { return e.kind }
func (e stubEvent) AggregateID() string { return e.id }

func TestJournal_Record(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	j := New(10, clk)

	j.Record(stubEvent{kind: "order.placed", id: "order-1"})

	entries := j.Entries("", 0)
	require.Len(t, entries, 1)
	assert.Equal(t, "order.placed", entries[0].EventType)
	assert.Equal(t, "order-1", entries[0].AggregateID)
	assert.NotEmpty(t, entries[0].EventID)
	assert.Equal(t, clk.Now(), entries[0].RecordedAt)
}

func TestJournal_EvictsOldestWhenFull(t *testing.T) {
	j := New(3, nil)

	j.Record(stubEvent{kind: "a", id: "1"})
	j.Record(stubEvent{kind: "b", id: "2"})
	j.Record(stubEvent{kind: "c", id: "3"})
	j.Record(stubEvent{kind: "d", id: "4"})

	entries := j.Entries("", 0)
	require.Len(t, entries, 3)
	assert.Equal(t, "b", entries[0].EventType)
	assert.Equal(t, "d", entries[2].EventType)
	assert.Equal(t, 3, j.Len())
}

func TestJournal_Entries(t *testing.T) {
	j := New(10, nil)
	j.Record(stubEvent{kind: "order.placed", id: "order-1"})
	j.Record(stubEvent{kind: "product.deactivated", id: "Widget"})
	j.Record(stubEvent{kind: "order.placed", id: "order-2"})

	t.Run("filter by event type", func(t *testing.T) {
		entries := j.Entries("order.placed", 0)
		require.Len(t, entries, 2)
		assert.Equal(t, "order-1", entries[0].AggregateID)
		assert.Equal(t, "order-2", entries[1].AggregateID)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		entries := j.Entries("", 2)
		assert.Len(t, entries, 2)
	})

	t.Run("unknown type matches nothing", func(t *testing.T) {
		assert.Empty(t, j.Entries("nope", 0))
	})
}

func TestJournal_DefaultCapacity(t *testing.T) {
	j := New(0, nil)
	for i := 0; i < DefaultCapacity+5; i++ {
		j.Record(stubEvent{kind: "tick", id: "t"})
	}
	assert.Equal(t, DefaultCapacity, j.Len())
}
