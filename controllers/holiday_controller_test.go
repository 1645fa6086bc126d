package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidayapi/controllers"
	"holidayapi/models"
	"holidayapi/routes"
	"holidayapi/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSource struct {
	mu     sync.Mutex
	calls  []int
	byYear map[int][]models.Holiday
	errs   map[int]error
}

func (s *stubSource) FetchYear(_ context.Context, year int) ([]models.Holiday, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, year)
	if err, ok := s.errs[year]; ok {
		return nil, err
	}
	return s.byYear[year], nil
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func h(date, name string, types ...string) models.Holiday {
	return models.Holiday{Date: date, Name: name, LocalName: name, CountryCode: "IN", Types: types}
}

func newSource() *stubSource {
	return &stubSource{
		byYear: map[int][]models.Holiday{
			2023: {h("2023-12-25", "Christmas Day", "Public")},
			2024: {
				h("2024-01-01", "New Year's Day", "Optional"),
				h("2024-01-10", "Makar Sankranti", "Optional"),
				h("2024-01-26", "Republic Day", "Public"),
				h("2024-03-29", "Good Friday", "Public", "Bank"),
				h("2024-12-25", "Christmas Day", "Public", "Bank"),
			},
			2025: {h("2025-01-26", "Republic Day", "Public")},
		},
		errs: map[int]error{},
	}
}

func newTestRouter(source services.HolidaySource, today string) *gin.Engine {
	d, _ := time.Parse(models.DateLayout, today)
	hc := controllers.NewHolidayController(source, services.FixedClock(d), nil)

	r := gin.New()
	routes.RegisterHolidayRoutes(r.Group("/api/v1/holidays"), hc)
	return r
}

func do(t *testing.T, r http.Handler, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return w, body
}

func TestGetYearHolidays(t *testing.T) {
	src := newSource()
	w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/2024")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2024), body["year"])
	assert.Equal(t, float64(5), body["totalCount"])
	assert.Len(t, body["holidays"], 5)

	byMonth := body["holidaysByMonth"].(map[string]interface{})
	assert.Len(t, byMonth, 3)
	assert.Len(t, byMonth["1"], 3)
	assert.Len(t, byMonth["3"], 1)
	assert.Len(t, byMonth["12"], 1)
	assert.Equal(t, []int{2024}, src.calls)
}

func TestGetYearHolidays_EmptyYear(t *testing.T) {
	src := newSource()
	src.byYear[2030] = []models.Holiday{}
	w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/2030")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["totalCount"])
	assert.Equal(t, []interface{}{}, body["holidays"])
	assert.Equal(t, map[string]interface{}{}, body["holidaysByMonth"])
}

func TestGetYearHolidays_Errors(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		upstream  error
		wantCode  int
		wantError string
		wantCalls int
	}{
		{name: "year too small", path: "/api/v1/holidays/1899", wantCode: 400, wantError: "Year must be between 1900 and 2100"},
		{name: "year not numeric", path: "/api/v1/holidays/abc", wantCode: 400, wantError: "Valid year is required"},
		{name: "upstream 404", path: "/api/v1/holidays/2024", upstream: errors.Wrap(services.ErrUpstreamNotFound, "year 2024"),
			wantCode: 404, wantError: "No holiday data available for this year", wantCalls: 1},
		{name: "upstream timeout", path: "/api/v1/holidays/2024", upstream: errors.Wrap(services.ErrUpstreamUnavailable, "context deadline exceeded"),
			wantCode: 500, wantError: "Failed to fetch holidays", wantCalls: 1},
		{name: "malformed payload", path: "/api/v1/holidays/2024", upstream: services.ErrMalformedPayload,
			wantCode: 500, wantError: "Failed to fetch holidays", wantCalls: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newSource()
			if tt.upstream != nil {
				src.errs[2024] = tt.upstream
			}
			w, body := do(t, newTestRouter(src, "2024-01-01"), tt.path)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantError, body["error"])
			assert.NotContains(t, body, "holidaysByMonth")
			assert.NotContains(t, w.Body.String(), "deadline")
			assert.Equal(t, tt.wantCalls, src.callCount())
			if tt.wantCode == 400 {
				assert.NotContains(t, body, "success")
			} else {
				assert.Equal(t, false, body["success"])
			}
		})
	}
}

func TestGetMonthHolidays(t *testing.T) {
	src := newSource()
	w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/2024/1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["month"])
	assert.Equal(t, "January", body["monthName"])
	assert.Equal(t, float64(3), body["count"])
	holidays := body["holidays"].([]interface{})
	require.Len(t, holidays, 3)
	assert.Equal(t, "New Year's Day", holidays[0].(map[string]interface{})["name"])
}

func TestGetMonthHolidays_InvalidMonthMakesNoUpstreamCall(t *testing.T) {
	for _, month := range []string{"0", "13", "-3", "june"} {
		src := newSource()
		w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/2024/"+month)

		assert.Equal(t, http.StatusBadRequest, w.Code, "month %s", month)
		assert.NotEmpty(t, body["error"])
		assert.Equal(t, 0, src.callCount(), "month %s", month)
	}
}

func TestGetMonthHolidays_UpstreamNotFound(t *testing.T) {
	src := newSource()
	src.errs[2024] = services.ErrUpstreamNotFound
	w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/2024/3")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No holiday data available for this year", body["error"])
}

func TestGetUpcomingHolidays(t *testing.T) {
	src := newSource()
	src.byYear[2024] = append(src.byYear[2024], h("2023-12-31", "Stale Entry"))
	w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/upcoming?count=2")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["count"])
	holidays := body["holidays"].([]interface{})
	require.Len(t, holidays, 2)

	first := holidays[0].(map[string]interface{})
	second := holidays[1].(map[string]interface{})
	assert.Equal(t, "2024-01-01", first["date"])
	assert.Equal(t, float64(0), first["daysUntil"])
	assert.Equal(t, "2024-01-10", second["date"])
	assert.Equal(t, float64(9), second["daysUntil"])

	assert.ElementsMatch(t, []int{2024, 2025}, src.calls)
}

func TestGetUpcomingHolidays_DefaultCountSpansYears(t *testing.T) {
	src := newSource()
	w, body := do(t, newTestRouter(src, "2024-03-01"), "/api/v1/holidays/upcoming?count=abc")

	require.Equal(t, http.StatusOK, w.Code)
	holidays := body["holidays"].([]interface{})
	require.Len(t, holidays, 3)
	assert.Equal(t, "2024-03-29", holidays[0].(map[string]interface{})["date"])
	assert.Equal(t, "2025-01-26", holidays[2].(map[string]interface{})["date"])
}

func TestGetUpcomingHolidays_EitherYearFailing(t *testing.T) {
	for _, failing := range []int{2024, 2025} {
		src := newSource()
		src.errs[failing] = services.ErrUpstreamUnavailable
		w, body := do(t, newTestRouter(src, "2024-06-01"), "/api/v1/holidays/upcoming")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Failed to fetch upcoming holidays", body["error"])
		assert.NotContains(t, body, "holidays")
	}
}

func TestGetUpcomingHolidays_InvalidCount(t *testing.T) {
	src := newSource()
	w, _ := do(t, newTestRouter(src, "2024-06-01"), "/api/v1/holidays/upcoming?count=0")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, src.callCount())
}

func TestCheckHoliday(t *testing.T) {
	src := newSource()
	r := newTestRouter(src, "2024-01-01")

	w, body := do(t, r, "/api/v1/holidays/check/2024-01-26")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-01-26", body["date"])
	assert.Equal(t, true, body["isHoliday"])
	assert.Equal(t, "Republic Day", body["holiday"].(map[string]interface{})["name"])

	w, body = do(t, r, "/api/v1/holidays/check/2024-01-27")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["isHoliday"])
	assert.Contains(t, body, "holiday")
	assert.Nil(t, body["holiday"])

	assert.Equal(t, []int{2024, 2024}, src.calls)
}

func TestCheckHoliday_InvalidDate(t *testing.T) {
	for _, date := range []string{"2024-02-30", "2024-1-26", "tomorrow", "2024-01-26x"} {
		src := newSource()
		w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/check/"+date)

		assert.Equal(t, http.StatusBadRequest, w.Code, "date %s", date)
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", body["error"])
		assert.Equal(t, 0, src.callCount())
	}
}

func TestGetHolidayTypes(t *testing.T) {
	src := newSource()
	w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/2024/types")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"Optional", "Public", "Bank"}, body["types"])

	byType := body["holidaysByType"].(map[string]interface{})
	assert.Len(t, byType["Optional"], 2)
	assert.Len(t, byType["Public"], 3)
	bank := byType["Bank"].([]interface{})
	require.Len(t, bank, 2)
	assert.Equal(t, "Good Friday", bank[0].(map[string]interface{})["name"])
}

func TestGetHolidayTypes_UpstreamTimeout(t *testing.T) {
	src := newSource()
	src.errs[2024] = errors.Wrap(services.ErrUpstreamUnavailable, "Get \"https://date.nager.at\": i/o timeout")
	w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/2024/types")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch holiday types", body["error"])
	assert.NotContains(t, body, "holidaysByType")
	assert.NotContains(t, w.Body.String(), "nager")
}

func TestSearchHolidays(t *testing.T) {
	src := newSource()
	r := newTestRouter(src, "2024-01-01")

	w, body := do(t, r, "/api/v1/holidays/2024/search?q=christmas")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])
	assert.NotContains(t, body, "suggestion")

	w, body = do(t, r, "/api/v1/holidays/2024/search?q=")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, body["error"])
}

func TestGetHolidaySummaries(t *testing.T) {
	src := newSource()
	w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/2024/summary")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2024), body["year"])
	assert.Equal(t, float64(5), body["count"])
	holidays := body["holidays"].([]interface{})
	require.Len(t, holidays, 5)
	assert.Equal(t, map[string]interface{}{"name": "Good Friday", "date": "2024-03-29", "type": "Public"}, holidays[3])
}

func TestGetHolidaySummaries_UpstreamNotFound(t *testing.T) {
	src := newSource()
	src.errs[2024] = services.ErrUpstreamNotFound
	w, body := do(t, newTestRouter(src, "2024-01-01"), "/api/v1/holidays/2024/summary")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No holiday data available for this year", body["error"])
}

func TestRegisterHolidayRoutes_StaticSegmentsWin(t *testing.T) {
	r := newTestRouter(newSource(), "2024-01-01")

	for _, tt := range []struct{ path, key string }{
		{path: "/api/v1/holidays/2024/types", key: "holidaysByType"},
		{path: "/api/v1/holidays/2024/summary", key: "holidays"},
		{path: "/api/v1/holidays/2024/search?q=day", key: "query"},
		{path: "/api/v1/holidays/upcoming", key: "holidays"},
		{path: "/api/v1/holidays/check/2024-01-26", key: "isHoliday"},
	} {
		path, key := tt.path, tt.key
		w, body := do(t, r, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, body, key, path)
	}
}

func TestHandlers_AreIdempotent(t *testing.T) {
	r := newTestRouter(newSource(), "2024-01-01")
	for _, path := range []string{
		"/api/v1/holidays/2024",
		"/api/v1/holidays/2024/types",
		"/api/v1/holidays/2024/1",
		"/api/v1/holidays/upcoming",
	} {
		first := httptest.NewRecorder()
		r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, path, nil))
		for i := 0; i < 5; i++ {
			again := httptest.NewRecorder()
			r.ServeHTTP(again, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, first.Body.String(), again.Body.String(), path)
		}
	}
}
