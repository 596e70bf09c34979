package foodlog

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/service/foodlog"
	"github.com/karadarhythm/health-api/internal/service/nutrition"
	"github.com/karadarhythm/health-api/pkg/errors"
	"github.com/karadarhythm/health-api/pkg/httputil"
)

type Handler struct {
	service      *foodlog.Service
	nutritionSvc *nutrition.Service
	now          func() time.Time
}

func NewHandler(service *foodlog.Service, nutritionSvc *nutrition.Service, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{service: service, nutritionSvc: nutritionSvc, now: now}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	fl := r.Group("/food-log")
	{
		fl.GET("", h.List)
		fl.POST("", h.Create)
		fl.DELETE("/:id", h.Delete)
	}
}

// List returns the day's entries in meal order, the nutrition totals
// and the configured targets.
func (h *Handler) List(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = model.FormatDate(h.now())
	}

	entries, summary, err := h.nutritionSvc.Summarize(c.Request.Context(), date)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"entries": entries,
		"summary": summary,
		"targets": h.nutritionSvc.Targets(),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateFoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest("日付と食事タイプを入力してください", err))
		return
	}

	entry, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, entry)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid entry ID", err))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithMessage(c, "削除しました", nil)
}
