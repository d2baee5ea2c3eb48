package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/missioncontrol/internal/domain"
	"github.com/Domenick1991/missioncontrol/internal/repository/memory"
	"github.com/Domenick1991/missioncontrol/internal/service/launches"
	"github.com/Domenick1991/missioncontrol/internal/service/planets"
	"github.com/araddon/dateparse"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	require.NoError(t, store.Planets().Put(context.Background(), &domain.Planet{KeplerName: "Kepler-442 b"}))
	launchSvc := launches.NewLaunchService(store.Launches(), store.Planets(), nil)
	return NewRouter(launchSvc, planets.NewPlanetService(store.Planets()))
}

func do(router *gin.Engine, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_ScheduleRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	request := map[string]string{
		"mission":    "Mission 1",
		"rocket":     "Rocket 1",
		"target":     "Kepler-442 b",
		"launchDate": "January 1, 2030",
	}

	w := do(router, http.MethodPost, "/v1/launches", request)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var got domain.Launch
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	want, err := dateparse.ParseLocal("January 1, 2030")
	require.NoError(t, err)
	assert.True(t, got.LaunchDate.Equal(want))
	assert.Equal(t, "Mission 1", got.Mission)
	assert.Equal(t, "Rocket 1", got.Rocket)
	assert.Equal(t, "Kepler-442 b", got.Target)
	assert.Equal(t, []string{"Zero To Mastery", "NASA"}, got.Customers)
	assert.True(t, got.Upcoming)
	assert.True(t, got.Success)
	assert.Equal(t, int64(1), got.FlightNumber)

	w = do(router, http.MethodHead, "/v1/launches/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodDelete, "/v1/launches/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = do(router, http.MethodDelete, "/v1/launches/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodDelete, "/v1/launches/2", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ListLaunches(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/v1/launches", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestRouter_Planets(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/v1/planets", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"keplerName":"Kepler-442 b"}]`, w.Body.String())
}

func TestRouter_SwaggerDoc(t *testing.T) {
	router := newTestRouter(t)

	w := do(router, http.MethodGet, "/docs/doc.json", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/launches/{id}"`)
}
