package day

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

const (
	// SlotDuration is the width of a single bookable slot.
	SlotDuration = 15 * time.Minute
	// SlotsPerDay is the number of slots covering 00:00 to 24:00.
	SlotsPerDay = int(24 * time.Hour / SlotDuration)

	slotMinutes = int(SlotDuration / time.Minute)
)

// EndOfDay is midnight at the end of the day. It is only valid as the end of a range.
var EndOfDay = civil.Time{Hour: 24}

var (
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrSlotNotAvailable = errors.New("slot not available")
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventID   = errors.New("invalid event id")
)

// Slot is a single 15 minute cell of a Day. EventID is empty when the slot is free.
type Slot struct {
	Start   civil.Time `json:"start"`
	EventID string     `json:"event_id,omitempty"`
}

func (s Slot) Free() bool {
	return s.EventID == ""
}

// SlotTime returns the start time of the slot at index i.
func SlotTime(i int) civil.Time {
	m := i * slotMinutes
	return civil.Time{Hour: m / 60, Minute: m % 60}
}

// Aligned reports whether t falls exactly on a slot boundary.
func Aligned(t civil.Time) bool {
	return t.Minute%slotMinutes == 0 && t.Second == 0 && t.Nanosecond == 0
}

// ValidateRange checks that [start, end) is a non-inverted range on the slot grid.
// An empty range (start == end) is valid.
func ValidateRange(start, end civil.Time) error {
	if _, err := startIndex(start); err != nil {
		return err
	}
	if _, err := endIndex(end); err != nil {
		return err
	}
	if minutes(start) > minutes(end) {
		return fmt.Errorf("start %s is after end %s: %w", start, end, ErrInvalidTimeRange)
	}
	return nil
}

func minutes(t civil.Time) int {
	return t.Hour*60 + t.Minute
}

func startIndex(t civil.Time) (int, error) {
	if !t.IsValid() {
		return 0, fmt.Errorf("start %s: %w", t, ErrInvalidTimeRange)
	}
	if !Aligned(t) {
		return 0, fmt.Errorf("start %s is not on the %s grid: %w", t, SlotDuration, ErrInvalidTimeRange)
	}
	return minutes(t) / slotMinutes, nil
}

func endIndex(t civil.Time) (int, error) {
	if t == EndOfDay {
		return SlotsPerDay, nil
	}
	if !t.IsValid() {
		return 0, fmt.Errorf("end %s: %w", t, ErrInvalidTimeRange)
	}
	if !Aligned(t) {
		return 0, fmt.Errorf("end %s is not on the %s grid: %w", t, SlotDuration, ErrInvalidTimeRange)
	}
	return minutes(t) / slotMinutes, nil
}

func bounds(start, end civil.Time) (int, int, error) {
	if err := ValidateRange(start, end); err != nil {
		return 0, 0, err
	}
	from, _ := startIndex(start)
	to, _ := endIndex(end)
	return from, to, nil
}
