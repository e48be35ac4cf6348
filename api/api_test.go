package api_test

import (
	"bytes"
	"daybook/api"
	"daybook/calendar"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 3, 10, 12, 0, 0, 0, time.UTC)

func setupAPI(t *testing.T) *api.API {
	t.Helper()
	logger := log.New(io.Discard)
	n := 0
	cal := calendar.New(
		calendar.WithClock(func() time.Time { return now }),
		calendar.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("evt-%d", n)
		}),
		calendar.WithReporter(calendar.NewLogReporter(logger)),
	)

	a := api.NewAPI(cal, logger)
	a.RegisterRoutes()
	return a
}

func do(t *testing.T, a *api.API, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		buf = bytes.NewBufferString(b)
	default:
		bodyBytes, err := json.Marshal(b)
		require.NoError(t, err)
		buf = bytes.NewBuffer(bodyBytes)
	}
	req := httptest.NewRequest(method, target, buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) api.Response {
	t.Helper()
	var res api.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, rec.Code, res.Status)
	return res
}

func eventBody(title, date, start, end string) map[string]any {
	return map[string]any{
		"title":       title,
		"description": "",
		"date":        date,
		"start":       start,
		"end":         end,
	}
}

func createEvent(t *testing.T, a *api.API, title, start, end string) map[string]any {
	t.Helper()
	rec := do(t, a, http.MethodPost, "/api/events", eventBody(title, "2030-03-11", start, end))
	require.Equal(t, http.StatusCreated, rec.Code)
	evt, ok := decode(t, rec).Response.(map[string]any)
	require.True(t, ok)
	return evt
}

func TestHealth(t *testing.T) {
	a := setupAPI(t)
	createEvent(t, a, "Standup", "09:00", "09:15")

	rec := do(t, a, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	res, ok := decode(t, rec).Response.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", res["status"])
	assert.InDelta(t, 1, res["events"], 0)
}

func TestHandler(t *testing.T) {
	a := setupAPI(t)
	srv := httptest.NewServer(a.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/api/health")
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
