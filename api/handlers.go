package api

import (
	"daybook/calendar"
	"encoding/json"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type API struct {
	router    *mux.Router
	calendar  *calendar.Calendar
	logger    *log.Logger
	accessLog io.Writer
}

func NewAPI(cal *calendar.Calendar, logger *log.Logger) *API {
	r := mux.NewRouter()
	r = r.PathPrefix("/api").Subrouter()
	return &API{
		router:    r,
		calendar:  cal,
		logger:    logger,
		accessLog: os.Stdout,
	}
}

func (a *API) Router() *mux.Router {
	return a.router
}

// Handler wraps the router with access logging and panic recovery.
func (a *API) Handler() http.Handler {
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(a.logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel})),
	)
	return handlers.LoggingHandler(a.accessLog, recovery(a.router))
}

type Response struct {
	Status   int `json:"status"`
	Response any `json:"response"`
}

func (a *API) Response(w http.ResponseWriter, status int, data any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Response{
		Status:   status,
		Response: data,
	})
	if err != nil {
		a.logger.Error("encode response", "err", err)
	}
}

func (a *API) RegisterRoutes() {
	a.router.HandleFunc("/health", a.health).Methods(http.MethodGet)
	a.router.HandleFunc("/events", a.getEvents).Methods(http.MethodGet)
	a.router.HandleFunc("/events", a.createEvent).Methods(http.MethodPost)
	a.router.HandleFunc("/events/{id}", a.getEvent).Methods(http.MethodGet)
	a.router.HandleFunc("/events/{id}", a.updateEvent).Methods(http.MethodPut)
	a.router.HandleFunc("/events/{id}", a.deleteEvent).Methods(http.MethodDelete)
	a.router.HandleFunc("/events/{id}/reminders", a.addReminder).Methods(http.MethodPost)
	a.router.HandleFunc("/events/{id}/reminders/{index}", a.deleteReminder).Methods(http.MethodDelete)
	a.router.HandleFunc("/days/{date}", a.getDay).Methods(http.MethodGet)
	a.router.HandleFunc("/days/{date}/free", a.getFree).Methods(http.MethodGet)
}
