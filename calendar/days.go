package calendar

import (
	"daybook/day"
	"fmt"

	"cloud.google.com/go/civil"
)

// lookupDay returns the stored Day for date, or a detached empty one that is not kept.
func (c *Calendar) lookupDay(date civil.Date) (*day.Day, error) {
	if !date.IsValid() {
		return nil, fmt.Errorf("date %s: %w", date, ErrInvalidDate)
	}

	c.mu.Lock()
	d, ok := c.days[date]
	c.mu.Unlock()

	if !ok {
		d = day.New(date)
	}
	return d, nil
}

// GetDay returns the slot table for date. Reading never creates a Day.
func (c *Calendar) GetDay(date civil.Date) ([]day.Slot, error) {
	d, err := c.lookupDay(date)
	if err != nil {
		return nil, c.report("get day", err)
	}
	return d.Slots(), nil
}

// IsFree reports whether [start, end) on date has no booked slot.
func (c *Calendar) IsFree(date civil.Date, start, end civil.Time) (bool, error) {
	d, err := c.lookupDay(date)
	if err != nil {
		return false, c.report("is free", err)
	}
	free, err := d.IsFree(start, end)
	return free, c.report("is free", err)
}

// Days returns how many dates currently hold a Day.
func (c *Calendar) Days() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.days)
}
