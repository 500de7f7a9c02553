package slotcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() []Machine {
	return []Machine{
		{ID: "lavarropas-1", DisplayName: "Lavarropas 1", Kind: KindWasher},
		{ID: "lavarropas-2", DisplayName: "Lavarropas 2", Kind: KindWasher},
		{ID: "secadora-1", DisplayName: "Secadora 1", Kind: KindDryer},
		{ID: "secadora-2", DisplayName: "Secadora 2", Kind: KindDryer},
	}
}

func newTestCalendar(t *testing.T) *Calendar {
	t.Helper()
	return New(testRoster(), time.UTC, 15*time.Minute)
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, SlotCount)

	assert.Equal(t, "00:00 - 02:00", slots[0])
	assert.Equal(t, "08:00 - 10:00", slots[4])
	assert.Equal(t, "12:00 - 14:00", slots[6])
	// The last slot wraps to midnight.
	assert.Equal(t, "22:00 - 00:00", slots[11])

	seen := make(map[string]bool)
	for _, s := range slots {
		assert.False(t, seen[s], "duplicate slot %s", s)
		seen[s] = true
	}
}

func TestSlotID(t *testing.T) {
	id := SlotID("2024-05-01", "10:00 - 12:00", "lavarropas-1")
	assert.Equal(t, "2024-05-01_10:00 - 12:00_lavarropas-1", id)

	// Identical inputs, identical key.
	assert.Equal(t, id, SlotID("2024-05-01", "10:00 - 12:00", "lavarropas-1"))

	// Any differing coordinate yields a different key.
	assert.NotEqual(t, id, SlotID("2024-05-02", "10:00 - 12:00", "lavarropas-1"))
	assert.NotEqual(t, id, SlotID("2024-05-01", "12:00 - 14:00", "lavarropas-1"))
	assert.NotEqual(t, id, SlotID("2024-05-01", "10:00 - 12:00", "lavarropas-2"))
}

func TestSlotBounds(t *testing.T) {
	start, end, err := SlotBounds("10:00 - 12:00")
	require.NoError(t, err)
	assert.Equal(t, 10, start)
	assert.Equal(t, 12, end)

	// The midnight end is reported as 24, not 0.
	start, end, err = SlotBounds("22:00 - 00:00")
	require.NoError(t, err)
	assert.Equal(t, 22, start)
	assert.Equal(t, 24, end)

	for _, bad := range []string{"", "10:00-12:00", "10:00 - 13:00", "25:00 - 27:00"} {
		_, _, err := SlotBounds(bad)
		assert.ErrorIs(t, err, ErrInvalidRange, "range %q should be rejected", bad)
	}
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2024-05-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), day)

	for _, bad := range []string{"", "01-05-2024", "2024-5-1", "2024-05-01T00:00:00Z", "not-a-date"} {
		_, err := ParseDate(bad, time.UTC)
		assert.ErrorIs(t, err, ErrInvalidDate, "date %q should be rejected", bad)
	}
}

func TestValidateSlot(t *testing.T) {
	cal := newTestCalendar(t)

	id, err := cal.ValidateSlot("2024-05-01", "10:00 - 12:00", "secadora-2")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01_10:00 - 12:00_secadora-2", id)

	_, err = cal.ValidateSlot("garbage", "10:00 - 12:00", "secadora-2")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = cal.ValidateSlot("2024-05-01", "10:30 - 12:30", "secadora-2")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = cal.ValidateSlot("2024-05-01", "10:00 - 12:00", "dishwasher-9")
	assert.ErrorIs(t, err, ErrInvalidMachine)
}

func TestClassify(t *testing.T) {
	cal := newTestCalendar(t)
	now := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		date      string
		timeRange string
		expected  Phase
	}{
		{"earlier day is past", "2024-04-30", "22:00 - 00:00", PhasePast},
		{"later day is future", "2024-05-02", "00:00 - 02:00", PhaseFuture},
		{"ended slot today is past", "2024-05-01", "08:00 - 10:00", PhasePast},
		{"slot containing now is current", "2024-05-01", "10:00 - 12:00", PhaseCurrent},
		{"later slot today is future", "2024-05-01", "12:00 - 14:00", PhaseFuture},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			phase, err := cal.Classify(now, tc.date, tc.timeRange)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, phase)
		})
	}

	// The midnight slot stays current until the end of the day.
	phase, err := cal.Classify(time.Date(2024, 5, 1, 23, 59, 0, 0, time.UTC), "2024-05-01", "22:00 - 00:00")
	require.NoError(t, err)
	assert.Equal(t, PhaseCurrent, phase)
}

func TestCanBookLate(t *testing.T) {
	cal := newTestCalendar(t)
	day := "2024-05-01"
	slot := "10:00 - 12:00"

	// Inside the grace window after the slot starts.
	assert.True(t, cal.CanBookLate(time.Date(2024, 5, 1, 10, 0, 1, 0, time.UTC), day, slot))
	assert.True(t, cal.CanBookLate(time.Date(2024, 5, 1, 10, 14, 59, 0, time.UTC), day, slot))

	// At and past the grace boundary the slot is no longer bookable.
	assert.False(t, cal.CanBookLate(time.Date(2024, 5, 1, 10, 15, 0, 0, time.UTC), day, slot))
	assert.False(t, cal.CanBookLate(time.Date(2024, 5, 1, 11, 30, 0, 0, time.UTC), day, slot))

	// Slots that are not current are never bookable late.
	assert.False(t, cal.CanBookLate(time.Date(2024, 5, 1, 9, 59, 0, 0, time.UTC), day, slot))
	assert.False(t, cal.CanBookLate(time.Date(2024, 5, 2, 10, 5, 0, 0, time.UTC), day, slot))
}

func TestCurrentSlotAndToday(t *testing.T) {
	cal := newTestCalendar(t)

	assert.Equal(t, "00:00 - 02:00", cal.CurrentSlot(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "10:00 - 12:00", cal.CurrentSlot(time.Date(2024, 5, 1, 11, 59, 0, 0, time.UTC)))
	assert.Equal(t, "22:00 - 00:00", cal.CurrentSlot(time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)))

	assert.Equal(t, "2024-05-01", cal.Today(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	// Today is computed in the calendar's zone, not the instant's.
	buenosAires, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	local := New(testRoster(), buenosAires, 15*time.Minute)
	assert.Equal(t, "2024-04-30", local.Today(time.Date(2024, 5, 1, 1, 0, 0, 0, time.UTC)))
}

func TestMachineLookup(t *testing.T) {
	cal := newTestCalendar(t)

	m, ok := cal.Machine("lavarropas-2")
	require.True(t, ok)
	assert.Equal(t, "Lavarropas 2", m.DisplayName)
	assert.Equal(t, KindWasher, m.Kind)

	_, ok = cal.Machine("unknown")
	assert.False(t, ok)

	assert.Len(t, cal.Machines(), 4)
}
