package api

import (
	"daybook/day"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/gorilla/mux"
)

type getDayResponse struct {
	Date  civil.Date `json:"date"`
	Slots []day.Slot `json:"slots"`
}

// getDay returns the slot table for a date. ?busy=true drops free slots.
func (a *API) getDay(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(mux.Vars(r)["date"])
	if err != nil {
		a.Error(w, err)
		return
	}

	slots, err := a.calendar.GetDay(date)
	if err != nil {
		a.Error(w, err)
		return
	}

	if r.URL.Query().Get("busy") == "true" {
		busy := make([]day.Slot, 0, len(slots))
		for _, s := range slots {
			if !s.Free() {
				busy = append(busy, s)
			}
		}
		slots = busy
	}

	a.Response(w, http.StatusOK, getDayResponse{Date: date, Slots: slots})
}

type getFreeResponse struct {
	Date  civil.Date `json:"date"`
	Start civil.Time `json:"start"`
	End   civil.Time `json:"end"`
	Free  bool       `json:"free"`
}

// getFree answers whether ?start=HH:MM&end=HH:MM on a date is unbooked.
func (a *API) getFree(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(mux.Vars(r)["date"])
	if err != nil {
		a.Error(w, err)
		return
	}
	q := r.URL.Query()
	start, err := parseClock(q.Get("start"))
	if err != nil {
		a.Error(w, err)
		return
	}
	end, err := parseClock(q.Get("end"))
	if err != nil {
		a.Error(w, err)
		return
	}

	free, err := a.calendar.IsFree(date, start, end)
	if err != nil {
		a.Error(w, err)
		return
	}
	a.Response(w, http.StatusOK, getFreeResponse{Date: date, Start: start, End: end, Free: free})
}
