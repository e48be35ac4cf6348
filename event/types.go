package event

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrReminderNotFound = errors.New("reminder not found")
)

type ReminderKind string

const (
	ReminderKindEmail  ReminderKind = "email"
	ReminderKindSystem ReminderKind = "system"
)

func ParseReminderKind(s string) (ReminderKind, error) {
	switch k := ReminderKind(s); k {
	case "":
		return ReminderKindEmail, nil
	case ReminderKindEmail, ReminderKindSystem:
		return k, nil
	default:
		return "", fmt.Errorf("unknown reminder kind %q: %w", s, ErrInvalidEvent)
	}
}

// Reminder is a notification attached to an Event. It is not changed after creation.
type Reminder struct {
	Message string       `json:"message"`
	FireAt  time.Time    `json:"fire_at"`
	Kind    ReminderKind `json:"kind"`
}

func (r Reminder) String() string {
	return fmt.Sprintf("Reminder on %s of type %s", r.FireAt.Format(time.DateTime), r.Kind)
}

// IDGenerator returns a new identifier, unique across all live events.
type IDGenerator func() string

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        civil.Date `json:"date"`
	Start       civil.Time `json:"start"`
	End         civil.Time `json:"end"`
	Reminders   []Reminder `json:"reminders"`
}
