package calendar

import (
	"daybook/day"
	"daybook/event"
	"errors"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	ErrDateInPast  = errors.New("date is in the past")
	ErrInvalidDate = errors.New("invalid date")
)

// ErrEventNotFound is returned for unknown event ids. It is the same value as day.ErrEventNotFound.
var ErrEventNotFound = day.ErrEventNotFound

// Calendar owns events by id and keeps one Day per date, created on first use.
// All methods are safe for concurrent use.
type Calendar struct {
	mu     sync.Mutex
	events map[string]*event.Event
	days   map[civil.Date]*day.Day

	newID          event.IDGenerator
	now            func() time.Time
	reporter       Reporter
	allowPastDates bool
}

type Option func(*Calendar)

func WithIDGenerator(gen event.IDGenerator) Option {
	return func(c *Calendar) { c.newID = gen }
}

func WithClock(now func() time.Time) Option {
	return func(c *Calendar) { c.now = now }
}

func WithReporter(r Reporter) Option {
	return func(c *Calendar) { c.reporter = r }
}

func WithAllowPastDates(allow bool) Option {
	return func(c *Calendar) { c.allowPastDates = allow }
}

func New(opts ...Option) *Calendar {
	c := &Calendar{
		events:   make(map[string]*event.Event),
		days:     make(map[civil.Date]*day.Day),
		newID:    uuid.NewString,
		now:      time.Now,
		reporter: NewLogReporter(log.Default()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calendar) report(op string, err error) error {
	if err != nil {
		c.reporter.Report(op, err)
	}
	return err
}

// dayFor must be called with c.mu held.
func (c *Calendar) dayFor(date civil.Date) *day.Day {
	d, ok := c.days[date]
	if !ok {
		d = day.New(date)
		c.days[date] = d
	}
	return d
}

func (c *Calendar) checkDate(date civil.Date) error {
	if c.allowPastDates {
		return nil
	}
	today := civil.DateOf(c.now())
	if date.Before(today) {
		return ErrDateInPast
	}
	return nil
}
