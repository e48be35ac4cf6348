package calendar

import (
	"cmp"
	"daybook/event"
	"fmt"
	"slices"
	"time"
)

// CreateEvent stores a new event and books its slots. Nothing is stored if the slots are taken.
func (c *Calendar) CreateEvent(payload event.Event) (*event.Event, error) {
	evt, err := c.createEvent(payload)
	return evt, c.report("create event", err)
}

func (c *Calendar) createEvent(payload event.Event) (*event.Event, error) {
	evt, err := event.Create(payload, c.newID)
	if err != nil {
		return nil, err
	}
	if err := c.checkDate(evt.Date); err != nil {
		return nil, fmt.Errorf("date %s: %w", evt.Date, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.events[evt.ID]; exists {
		return nil, fmt.Errorf("duplicate event id %q", evt.ID)
	}
	if err := c.dayFor(evt.Date).AddEvent(evt.ID, evt.Start, evt.End); err != nil {
		return nil, fmt.Errorf("book: %w", err)
	}
	c.events[evt.ID] = evt

	out := evt.Clone()
	return &out, nil
}

func (c *Calendar) GetEvent(id string) (*event.Event, error) {
	evt, err := c.getEvent(id)
	return evt, c.report("get event", err)
}

func (c *Calendar) getEvent(id string) (*event.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	evt, ok := c.events[id]
	if !ok {
		return nil, fmt.Errorf("event %q: %w", id, ErrEventNotFound)
	}
	out := evt.Clone()
	return &out, nil
}

// GetEvents returns every event ordered by date, then start time.
func (c *Calendar) GetEvents() []event.Event {
	c.mu.Lock()
	events := make([]event.Event, 0, len(c.events))
	for _, evt := range c.events {
		events = append(events, evt.Clone())
	}
	c.mu.Unlock()

	slices.SortFunc(events, func(a, b event.Event) int {
		return cmp.Or(
			a.Date.DaysSince(b.Date),
			cmp.Compare(clockMinutes(a), clockMinutes(b)),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return events
}

func clockMinutes(e event.Event) int {
	return e.Start.Hour*60 + e.Start.Minute
}

// UpdateEvent replaces title, description, date and times of an existing event.
// Reminders are kept. If the new slots are taken the event is left unchanged.
func (c *Calendar) UpdateEvent(payload event.Event) (*event.Event, error) {
	evt, err := c.updateEvent(payload)
	return evt, c.report("update event", err)
}

func (c *Calendar) updateEvent(payload event.Event) (*event.Event, error) {
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	evt, ok := c.events[payload.ID]
	if !ok {
		return nil, fmt.Errorf("event %q: %w", payload.ID, ErrEventNotFound)
	}
	if payload.Date == evt.Date {
		if err := c.dayFor(evt.Date).UpdateEvent(evt.ID, payload.Start, payload.End); err != nil {
			return nil, fmt.Errorf("reschedule: %w", err)
		}
	} else {
		if err := c.checkDate(payload.Date); err != nil {
			return nil, fmt.Errorf("date %s: %w", payload.Date, err)
		}
		// Book the new day before releasing the old one so a conflict changes nothing.
		if err := c.dayFor(payload.Date).AddEvent(evt.ID, payload.Start, payload.End); err != nil {
			return nil, fmt.Errorf("book: %w", err)
		}
		if err := c.dayFor(evt.Date).DeleteEvent(evt.ID); err != nil {
			_ = c.dayFor(payload.Date).DeleteEvent(evt.ID)
			return nil, fmt.Errorf("release: %w", err)
		}
	}

	evt.Title = payload.Title
	evt.Description = payload.Description
	evt.Date = payload.Date
	evt.Start = payload.Start
	evt.End = payload.End

	out := evt.Clone()
	return &out, nil
}

// DeleteEvent removes the event and frees its slots.
func (c *Calendar) DeleteEvent(id string) error {
	return c.report("delete event", c.deleteEvent(id))
}

func (c *Calendar) deleteEvent(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	evt, ok := c.events[id]
	if !ok {
		return fmt.Errorf("event %q: %w", id, ErrEventNotFound)
	}
	delete(c.events, id)
	if err := c.dayFor(evt.Date).DeleteEvent(id); err != nil {
		return fmt.Errorf("release: %w", err)
	}
	return nil
}

func (c *Calendar) AddReminder(id, message string, remindAt time.Time, kind event.ReminderKind) (*event.Event, error) {
	evt, err := c.addReminder(id, message, remindAt, kind)
	return evt, c.report("add reminder", err)
}

func (c *Calendar) addReminder(id, message string, remindAt time.Time, kind event.ReminderKind) (*event.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	evt, ok := c.events[id]
	if !ok {
		return nil, fmt.Errorf("event %q: %w", id, ErrEventNotFound)
	}
	if _, err := evt.AddReminder(message, remindAt, kind); err != nil {
		return nil, fmt.Errorf("event %q: %w", id, err)
	}

	out := evt.Clone()
	return &out, nil
}

func (c *Calendar) DeleteReminder(id string, index int) (*event.Event, error) {
	evt, err := c.deleteReminder(id, index)
	return evt, c.report("delete reminder", err)
}

func (c *Calendar) deleteReminder(id string, index int) (*event.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	evt, ok := c.events[id]
	if !ok {
		return nil, fmt.Errorf("event %q: %w", id, ErrEventNotFound)
	}
	if err := evt.DeleteReminder(index); err != nil {
		return nil, fmt.Errorf("event %q: %w", id, err)
	}

	out := evt.Clone()
	return &out, nil
}
