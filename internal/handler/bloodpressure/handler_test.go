package bloodpressure

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karadarhythm/health-api/internal/repository/memory"
	bpservice "github.com/karadarhythm/health-api/internal/service/bloodpressure"
	"github.com/karadarhythm/health-api/internal/service/streak"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	clock := func() time.Time { return time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC) }
	svc := bpservice.NewService(store.BloodPressure(), streak.NewService(store.Streaks(), clock), clock)

	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestCreateReading(t *testing.T) {
	engine := setupRouter(t)

	body := `{"systolic": 152, "diastolic": 94, "pulse": 72, "timing": "morning"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blood-pressure", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Systolic   int    `json:"systolic"`
			MeasuredAt string `json:"measured_at"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 152, resp.Data.Systolic)
	assert.Contains(t, resp.Data.MeasuredAt, "2025-06-15")
}

func TestCreateReadingRejectsMissingValues(t *testing.T) {
	engine := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blood-pressure", strings.NewReader(`{"systolic": 152}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}

func TestListReadings(t *testing.T) {
	engine := setupRouter(t)

	for _, body := range []string{
		`{"systolic": 150, "diastolic": 92}`,
		`{"systolic": 145, "diastolic": 88}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/blood-pressure", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/blood-pressure", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestDeleteInvalidID(t *testing.T) {
	engine := setupRouter(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/blood-pressure/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
