package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysAPI(t *testing.T) {
	t.Parallel()

	t.Run("empty day", func(t *testing.T) {
		t.Parallel()
		a := setupAPI(t)

		rec := do(t, a, http.MethodGet, "/api/days/2030-03-11", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		res, ok := decode(t, rec).Response.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "2030-03-11", res["date"])
		slots, ok := res["slots"].([]any)
		require.True(t, ok)
		require.Len(t, slots, 96)
		assert.Equal(t, "00:00:00", slots[0].(map[string]any)["start"])
		assert.Equal(t, "23:45:00", slots[95].(map[string]any)["start"])
		assert.NotContains(t, slots[0], "event_id")
	})

	t.Run("busy slots", func(t *testing.T) {
		t.Parallel()
		a := setupAPI(t)
		created := createEvent(t, a, "A", "10:00", "10:30")

		rec := do(t, a, http.MethodGet, "/api/days/2030-03-11?busy=true", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		res, ok := decode(t, rec).Response.(map[string]any)
		require.True(t, ok)
		slots, ok := res["slots"].([]any)
		require.True(t, ok)
		require.Len(t, slots, 2)
		for _, s := range slots {
			assert.Equal(t, created["id"], s.(map[string]any)["event_id"])
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		t.Parallel()
		a := setupAPI(t)

		rec := do(t, a, http.MethodGet, "/api/days/tomorrow", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reading does not keep days", func(t *testing.T) {
		t.Parallel()
		a := setupAPI(t)

		for _, date := range []string{"2030-03-11", "2031-01-01", "2040-12-31"} {
			rec := do(t, a, http.MethodGet, "/api/days/"+date, nil)
			require.Equal(t, http.StatusOK, rec.Code)
			rec = do(t, a, http.MethodGet, "/api/days/"+date+"/free?start=09:00&end=10:00", nil)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		rec := do(t, a, http.MethodGet, "/api/health", nil)
		res, ok := decode(t, rec).Response.(map[string]any)
		require.True(t, ok)
		assert.InDelta(t, 0, res["days"], 0)
	})

	t.Run("free", func(t *testing.T) {
		t.Parallel()
		a := setupAPI(t)
		createEvent(t, a, "A", "10:00", "11:00")

		tests := []struct {
			query string
			free  bool
		}{
			{query: "start=09:00&end=10:00", free: true},
			{query: "start=10:45&end=11:15", free: false},
			{query: "start=11:00&end=24:00", free: true},
		}
		for _, tt := range tests {
			rec := do(t, a, http.MethodGet, "/api/days/2030-03-11/free?"+tt.query, nil)
			require.Equal(t, http.StatusOK, rec.Code, tt.query)
			res, ok := decode(t, rec).Response.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.free, res["free"], tt.query)
		}
	})

	t.Run("free invalid range", func(t *testing.T) {
		t.Parallel()
		a := setupAPI(t)

		for _, query := range []string{"start=10:10&end=11:00", "start=11:00&end=10:00", "start=ten&end=11:00", "end=11:00"} {
			rec := do(t, a, http.MethodGet, "/api/days/2030-03-11/free?"+query, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		}
	})
}
