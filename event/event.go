package event

import (
	"daybook/day"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("title is required: %w", ErrInvalidEvent)
	}
	if !e.Date.IsValid() {
		return fmt.Errorf("date %s: %w", e.Date, ErrInvalidEvent)
	}
	if err := day.ValidateRange(e.Start, e.End); err != nil {
		return err
	}
	if e.Start == e.End {
		return fmt.Errorf("start %s equals end: %w", e.Start, day.ErrInvalidTimeRange)
	}
	return nil
}

// Create validates payload and returns a new Event with a freshly generated ID
// and no reminders. A nil newID falls back to random UUIDs.
func Create(payload Event, newID IDGenerator) (*Event, error) {
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	if newID == nil {
		newID = uuid.NewString
	}

	id := newID()
	if id == "" {
		return nil, errors.New("id generator returned an empty id")
	}

	return &Event{
		ID:          id,
		Title:       payload.Title,
		Description: payload.Description,
		Date:        payload.Date,
		Start:       payload.Start,
		End:         payload.End,
		Reminders:   []Reminder{},
	}, nil
}

// AddReminder appends a reminder. The zero kind means email; unknown kinds are rejected.
func (e *Event) AddReminder(message string, remindAt time.Time, kind ReminderKind) (Reminder, error) {
	kind, err := ParseReminderKind(string(kind))
	if err != nil {
		return Reminder{}, err
	}
	r := Reminder{Message: message, FireAt: remindAt, Kind: kind}
	e.Reminders = append(e.Reminders, r)
	return r, nil
}

func (e *Event) DeleteReminder(index int) error {
	if index < 0 || index >= len(e.Reminders) {
		return fmt.Errorf("index %d of %d: %w", index, len(e.Reminders), ErrReminderNotFound)
	}
	e.Reminders = slices.Delete(e.Reminders, index, index+1)
	return nil
}

// Clone returns a deep copy; the reminder slice is not shared.
func (e *Event) Clone() Event {
	c := *e
	c.Reminders = make([]Reminder, len(e.Reminders))
	copy(c.Reminders, e.Reminders)
	return c
}

func (e *Event) String() string {
	return fmt.Sprintf("ID: %s\nEvent title: %s\nDescription: %s\nTime: %s - %s",
		e.ID, e.Title, e.Description, e.Start, e.End)
}
