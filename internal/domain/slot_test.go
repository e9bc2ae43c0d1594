package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/parlourease/pkg/types"
)

func TestSlotSequence_Regular(t *testing.T) {
	slots := NewSlotSequence(false).All()

	require.Len(t, slots, 37)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:15"), slots[1])
	assert.Equal(t, types.TimeString("18:00"), slots[len(slots)-1])
}

func TestSlotSequence_Festival(t *testing.T) {
	slots := NewSlotSequence(true).All()

	require.Len(t, slots, 19)
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("18:00"), slots[18])
}

func TestSlotSequence_NextAndReset(t *testing.T) {
	seq := NewSlotSequence(true)

	count := 0
	for _, ok := seq.Next(); ok; _, ok = seq.Next() {
		count++
	}
	assert.Equal(t, 19, count)

	_, ok := seq.Next()
	assert.False(t, ok)

	seq.Reset()
	first, ok := seq.Next()
	assert.True(t, ok)
	assert.Equal(t, types.TimeString("09:00"), first)
}

func TestFilterPastSlots(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 10, 0, 0, time.UTC)
	slots := NewSlotSequence(false).All()

	t.Run("today drops passed slots", func(t *testing.T) {
		filtered := FilterPastSlots(now, slots, now)
		require.NotEmpty(t, filtered)
		assert.Equal(t, types.TimeString("12:15"), filtered[0])
		assert.Equal(t, types.TimeString("18:00"), filtered[len(filtered)-1])
	})

	t.Run("future day unfiltered", func(t *testing.T) {
		tomorrow := now.AddDate(0, 0, 1)
		assert.Len(t, FilterPastSlots(tomorrow, slots, now), 37)
	})

	t.Run("slot equal to now is kept", func(t *testing.T) {
		at := time.Date(2024, 5, 10, 12, 15, 0, 0, time.UTC)
		filtered := FilterPastSlots(at, slots, at)
		assert.Equal(t, types.TimeString("12:15"), filtered[0])
	})
}

func TestRevalidateSelection(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 10, 0, 0, time.UTC)

	t.Run("stale time on today is cleared", func(t *testing.T) {
		selected, ok := RevalidateSelection(now, "10:00", false, now)
		assert.False(t, ok)
		assert.True(t, selected.IsZero())
	})

	t.Run("same time on a future day is kept", func(t *testing.T) {
		selected, ok := RevalidateSelection(now.AddDate(0, 0, 1), "10:00", false, now)
		assert.True(t, ok)
		assert.Equal(t, types.TimeString("10:00"), selected)
	})

	t.Run("quarter hour cleared under festival mode", func(t *testing.T) {
		_, ok := RevalidateSelection(now.AddDate(0, 0, 1), "10:15", true, now)
		assert.False(t, ok)
	})
}

func TestIsPastDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, ist) }

	// 2024-05-10 02:00 in the salon, still May 9 in UTC
	now := time.Date(2024, 5, 9, 20, 30, 0, 0, time.UTC)

	assert.True(t, IsPastDay(day(2024, 5, 9), now))
	assert.False(t, IsPastDay(day(2024, 5, 10), now))
	assert.False(t, IsPastDay(day(2024, 5, 11), now))
	assert.True(t, IsPastDay(day(2023, 12, 31), now))
}
