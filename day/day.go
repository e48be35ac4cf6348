package day

import (
	"fmt"
	"sync"

	"cloud.google.com/go/civil"
)

// Day is a single calendar date split into SlotsPerDay fixed slots.
// Each slot holds at most one event id. The Day never owns the events themselves.
type Day struct {
	mu    sync.RWMutex
	date  civil.Date
	slots [SlotsPerDay]string
}

func New(date civil.Date) *Day {
	return &Day{date: date}
}

func (d *Day) Date() civil.Date {
	return d.date
}

// AddEvent books [start, end) for eventID. Either every slot in the range is
// assigned or, if any of them is taken, none are.
func (d *Day) AddEvent(eventID string, start, end civil.Time) error {
	if eventID == "" {
		return fmt.Errorf("event id is required: %w", ErrInvalidEventID)
	}
	from, to, err := bounds(start, end)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := from; i < to; i++ {
		if d.slots[i] != "" {
			return fmt.Errorf("slot %s on %s: %w", SlotTime(i), d.date, ErrSlotNotAvailable)
		}
	}
	for i := from; i < to; i++ {
		d.slots[i] = eventID
	}
	return nil
}

// DeleteEvent frees every slot held by eventID.
func (d *Day) DeleteEvent(eventID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	found := false
	for i := range d.slots {
		if d.slots[i] == eventID && eventID != "" {
			d.slots[i] = ""
			found = true
		}
	}
	if !found {
		return fmt.Errorf("event %q on %s: %w", eventID, d.date, ErrEventNotFound)
	}
	return nil
}

// UpdateEvent moves eventID to [start, end). Slots already held by eventID
// count as free. On conflict the table is left exactly as it was.
func (d *Day) UpdateEvent(eventID string, start, end civil.Time) error {
	if eventID == "" {
		return fmt.Errorf("event id is required: %w", ErrInvalidEventID)
	}
	from, to, err := bounds(start, end)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := from; i < to; i++ {
		if occupant := d.slots[i]; occupant != "" && occupant != eventID {
			return fmt.Errorf("slot %s on %s: %w", SlotTime(i), d.date, ErrSlotNotAvailable)
		}
	}
	for i := range d.slots {
		if d.slots[i] == eventID {
			d.slots[i] = ""
		}
	}
	for i := from; i < to; i++ {
		d.slots[i] = eventID
	}
	return nil
}

// IsFree reports whether no slot in [start, end) is occupied.
func (d *Day) IsFree(start, end civil.Time) (bool, error) {
	from, to, err := bounds(start, end)
	if err != nil {
		return false, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := from; i < to; i++ {
		if d.slots[i] != "" {
			return false, nil
		}
	}
	return true, nil
}

// Slots returns a snapshot of the whole table in time order.
func (d *Day) Slots() []Slot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Slot, SlotsPerDay)
	for i, id := range d.slots {
		out[i] = Slot{Start: SlotTime(i), EventID: id}
	}
	return out
}
