package api

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
	Events int    `json:"events"`
	Days   int    `json:"days"`
}

func (a *API) health(w http.ResponseWriter, _ *http.Request) {
	a.Response(w, http.StatusOK, healthResponse{
		Status: "ok",
		Events: len(a.calendar.GetEvents()),
		Days:   a.calendar.Days(),
	})
}
