package api

import (
	"daybook/calendar"
	"daybook/day"
	"daybook/event"
	"errors"
	"net/http"
)

var errBadRequest = errors.New("bad request")

// statusFor maps calendar errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, day.ErrInvalidTimeRange),
		errors.Is(err, day.ErrInvalidEventID),
		errors.Is(err, event.ErrInvalidEvent),
		errors.Is(err, calendar.ErrDateInPast),
		errors.Is(err, calendar.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, day.ErrEventNotFound),
		errors.Is(err, event.ErrReminderNotFound):
		return http.StatusNotFound
	case errors.Is(err, day.ErrSlotNotAvailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (a *API) Error(w http.ResponseWriter, err error) {
	a.Response(w, statusFor(err), err.Error())
}
