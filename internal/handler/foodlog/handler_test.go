package foodlog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/repository/memory"
	foodlogservice "github.com/karadarhythm/health-api/internal/service/foodlog"
	"github.com/karadarhythm/health-api/internal/service/nutrition"
	"github.com/karadarhythm/health-api/internal/service/streak"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("dateonly", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(model.DateFormat, fl.Field().String())
			return err == nil
		})
	}

	store := memory.NewStore()
	clock := func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	streakSvc := streak.NewService(store.Streaks(), clock)
	svc := foodlogservice.NewService(store.FoodLog(), store.Recipes(), streakSvc, clock)
	nutritionSvc := nutrition.NewService(store.FoodLog(), store.Recipes(), model.DefaultNutritionTargets())

	engine := gin.New()
	NewHandler(svc, nutritionSvc, clock).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func postEntry(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/food-log", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateEntry(t *testing.T) {
	engine := setupRouter(t)

	w := postEntry(t, engine, `{
		"logged_date": "2025-06-15",
		"meal_type": "lunch",
		"custom_name": "ざるそば",
		"calories": 420,
		"salt_g": 2.8
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "ざるそば")
}

func TestCreateEntryRejectsBadDate(t *testing.T) {
	engine := setupRouter(t)

	w := postEntry(t, engine, `{"logged_date": "15/06/2025", "meal_type": "lunch"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEntryRejectsUnknownMeal(t *testing.T) {
	engine := setupRouter(t)

	w := postEntry(t, engine, `{"logged_date": "2025-06-15", "meal_type": "brunch"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReturnsSummaryAndTargets(t *testing.T) {
	engine := setupRouter(t)

	require.Equal(t, http.StatusCreated, postEntry(t, engine, `{
		"logged_date": "2025-06-15",
		"meal_type": "breakfast",
		"custom_name": "オートミール",
		"calories": 220,
		"salt_g": 0.8
	}`).Code)
	require.Equal(t, http.StatusCreated, postEntry(t, engine, `{
		"logged_date": "2025-06-15",
		"meal_type": "lunch",
		"custom_name": "そば",
		"calories": 420,
		"salt_g": 2.8
	}`).Code)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/food-log?date=2025-06-15", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Entries []json.RawMessage `json:"entries"`
			Summary struct {
				Calories float64 `json:"calories"`
				SaltG    float64 `json:"salt_g"`
			} `json:"summary"`
			Targets struct {
				SaltG float64 `json:"salt_g"`
			} `json:"targets"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.Data.Entries, 2)
	assert.InDelta(t, 640, resp.Data.Summary.Calories, 0.001)
	assert.InDelta(t, 3.6, resp.Data.Summary.SaltG, 0.001)
	assert.InDelta(t, 6, resp.Data.Targets.SaltG, 0.001)
}

func TestListDefaultsToToday(t *testing.T) {
	engine := setupRouter(t)

	require.Equal(t, http.StatusCreated, postEntry(t, engine, `{
		"logged_date": "2025-06-15",
		"meal_type": "dinner",
		"custom_name": "豚汁定食"
	}`).Code)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/food-log", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "豚汁定食")
}
