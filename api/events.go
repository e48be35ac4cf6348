package api

import (
	"daybook/event"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
)

type getEventsResponse struct {
	Events []event.Event `json:"events"`
}

func (a *API) getEvents(w http.ResponseWriter, _ *http.Request) {
	a.Response(w, http.StatusOK, getEventsResponse{
		Events: a.calendar.GetEvents(),
	})
}

// eventRequest is the API DTO; date is YYYY-MM-DD and times are HH:MM.
type eventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

func (r eventRequest) toEvent() (event.Event, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return event.Event{}, err
	}
	start, err := parseClock(r.Start)
	if err != nil {
		return event.Event{}, err
	}
	end, err := parseClock(r.End)
	if err != nil {
		return event.Event{}, err
	}
	return event.Event{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		Start:       start,
		End:         end,
	}, nil
}

func decodeEvent(r *http.Request) (event.Event, error) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return event.Event{}, fmt.Errorf("invalid request body: %w", errBadRequest)
	}
	return req.toEvent()
}

func (a *API) createEvent(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeEvent(r)
	if err != nil {
		a.Error(w, err)
		return
	}

	evt, err := a.calendar.CreateEvent(payload)
	if err != nil {
		a.Error(w, err)
		return
	}
	a.Response(w, http.StatusCreated, evt)
}

func (a *API) getEvent(w http.ResponseWriter, r *http.Request) {
	evt, err := a.calendar.GetEvent(mux.Vars(r)["id"])
	if err != nil {
		a.Error(w, err)
		return
	}
	a.Response(w, http.StatusOK, evt)
}

func (a *API) updateEvent(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeEvent(r)
	if err != nil {
		a.Error(w, err)
		return
	}
	payload.ID = mux.Vars(r)["id"]

	evt, err := a.calendar.UpdateEvent(payload)
	if err != nil {
		a.Error(w, err)
		return
	}
	a.Response(w, http.StatusOK, evt)
}

func (a *API) deleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := a.calendar.DeleteEvent(mux.Vars(r)["id"]); err != nil {
		a.Error(w, err)
		return
	}
	a.Response(w, http.StatusNoContent, nil)
}

// reminderRequest takes remind_at as a unix epoch in seconds.
type reminderRequest struct {
	Message  string `json:"message"`
	RemindAt int64  `json:"remind_at"`
	Kind     string `json:"kind"`
}

func (a *API) addReminder(w http.ResponseWriter, r *http.Request) {
	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.Response(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RemindAt <= 0 {
		a.Response(w, http.StatusBadRequest, "remind_at is required")
		return
	}
	kind, err := event.ParseReminderKind(req.Kind)
	if err != nil {
		a.Error(w, err)
		return
	}

	evt, err := a.calendar.AddReminder(mux.Vars(r)["id"], req.Message, time.Unix(req.RemindAt, 0).UTC(), kind)
	if err != nil {
		a.Error(w, err)
		return
	}
	a.Response(w, http.StatusCreated, evt)
}

func (a *API) deleteReminder(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		a.Response(w, http.StatusBadRequest, "invalid reminder index")
		return
	}

	evt, err := a.calendar.DeleteReminder(vars["id"], index)
	if err != nil {
		a.Error(w, err)
		return
	}
	a.Response(w, http.StatusOK, evt)
}
