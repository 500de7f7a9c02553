// Package slotcal computes the fixed daily time-slot grid, the machine
// roster, and the scheduling policy derived from them. It holds no mutable
// state: a Calendar is built once from configuration and only answers
// questions.
package slotcal

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical calendar-day format for all reservation dates.
const DateLayout = "2006-01-02"

// SlotCount is the number of two-hour slots covering a day.
const SlotCount = 12

// Machine kinds.
const (
	KindWasher = "washer"
	KindDryer  = "dryer"
)

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrInvalidRange   = errors.New("invalid time range")
	ErrInvalidMachine = errors.New("unknown machine")
)

// Machine describes one member of the static laundry room roster.
type Machine struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Kind        string `json:"kind"`
}

var timeSlots = buildTimeSlots()

func buildTimeSlots() []string {
	slots := make([]string, SlotCount)
	for i := 0; i < SlotCount; i++ {
		start := i * 2
		end := start + 2
		if end == 24 {
			end = 0
		}
		slots[i] = fmt.Sprintf("%02d:00 - %02d:00", start, end)
	}
	return slots
}

// TimeSlots returns the ordered sequence of the twelve two-hour ranges,
// starting at "00:00 - 02:00" and ending at "22:00 - 00:00".
func TimeSlots() []string {
	out := make([]string, SlotCount)
	copy(out, timeSlots)
	return out
}

// SlotID derives the deterministic composite key for a slot. It is the
// primary key of a reservation and the uniqueness anchor for booking:
// identical inputs always produce the identical key.
func SlotID(date, timeRange, machineID string) string {
	return date + "_" + timeRange + "_" + machineID
}

// SlotBounds returns the start and end hour of a time range. The midnight
// end is reported as 24 so comparisons against the current hour stay simple.
func SlotBounds(timeRange string) (startHour, endHour int, err error) {
	for i, s := range timeSlots {
		if s == timeRange {
			return i * 2, i*2 + 2, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrInvalidRange, timeRange)
}

// ParseDate parses a YYYY-MM-DD calendar day in the given location. The
// strict layout rejects anything with a time component or offset, which is
// what keeps dates from drifting a day under timezone arithmetic.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

// Phase classifies a slot relative to the current moment.
type Phase int

const (
	PhasePast Phase = iota
	PhaseCurrent
	PhaseFuture
)

func (p Phase) String() string {
	switch p {
	case PhasePast:
		return "past"
	case PhaseCurrent:
		return "current"
	default:
		return "future"
	}
}

// Calendar answers slot and roster questions for one deployment.
type Calendar struct {
	machines []Machine
	byID     map[string]Machine
	loc      *time.Location
	grace    time.Duration
}

// New builds a Calendar from the configured roster, canonical location and
// late-booking grace window.
func New(machines []Machine, loc *time.Location, grace time.Duration) *Calendar {
	byID := make(map[string]Machine, len(machines))
	for _, m := range machines {
		byID[m.ID] = m
	}
	return &Calendar{machines: machines, byID: byID, loc: loc, grace: grace}
}

// Machines returns the ordered roster.
func (c *Calendar) Machines() []Machine {
	out := make([]Machine, len(c.machines))
	copy(out, c.machines)
	return out
}

// Machine looks up a roster member by id.
func (c *Calendar) Machine(id string) (Machine, bool) {
	m, ok := c.byID[id]
	return m, ok
}

// Location returns the canonical local time zone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Today formats the current calendar day in the canonical zone.
func (c *Calendar) Today(now time.Time) string {
	return now.In(c.loc).Format(DateLayout)
}

// ValidateSlot checks the full (date, timeRange, machineID) coordinate and
// returns its identifier.
func (c *Calendar) ValidateSlot(date, timeRange, machineID string) (string, error) {
	if _, err := ParseDate(date, c.loc); err != nil {
		return "", err
	}
	if _, _, err := SlotBounds(timeRange); err != nil {
		return "", err
	}
	if _, ok := c.byID[machineID]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMachine, machineID)
	}
	return SlotID(date, timeRange, machineID), nil
}

// SlotStart returns the wall-clock start of a slot on a given day.
func (c *Calendar) SlotStart(date, timeRange string) (time.Time, error) {
	day, err := ParseDate(date, c.loc)
	if err != nil {
		return time.Time{}, err
	}
	startHour, _, err := SlotBounds(timeRange)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(startHour) * time.Hour), nil
}

// Classify places a slot on the past/current/future axis relative to now.
// Slots on a day other than today are past or future wholesale.
func (c *Calendar) Classify(now time.Time, date, timeRange string) (Phase, error) {
	startHour, endHour, err := SlotBounds(timeRange)
	if err != nil {
		return PhasePast, err
	}
	if _, err := ParseDate(date, c.loc); err != nil {
		return PhasePast, err
	}

	local := now.In(c.loc)
	today := local.Format(DateLayout)
	switch {
	case date < today:
		return PhasePast, nil
	case date > today:
		return PhaseFuture, nil
	}

	hour := local.Hour()
	switch {
	case hour >= endHour:
		return PhasePast, nil
	case hour >= startHour:
		return PhaseCurrent, nil
	default:
		return PhaseFuture, nil
	}
}

// CanBookLate reports whether an unreserved slot that has already started
// today may still be booked. The answer is yes only within the grace window
// after its nominal start; past that the slot is unavailable for the rest of
// its range.
func (c *Calendar) CanBookLate(now time.Time, date, timeRange string) bool {
	phase, err := c.Classify(now, date, timeRange)
	if err != nil || phase != PhaseCurrent {
		return false
	}
	start, err := c.SlotStart(date, timeRange)
	if err != nil {
		return false
	}
	return now.Before(start.Add(c.grace))
}

// CurrentSlot returns the time range containing the current hour.
func (c *Calendar) CurrentSlot(now time.Time) string {
	hour := now.In(c.loc).Hour()
	return timeSlots[hour/2]
}
