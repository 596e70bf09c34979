package condition

import (
	"github.com/gin-gonic/gin"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/service/condition"
	"github.com/karadarhythm/health-api/pkg/errors"
	"github.com/karadarhythm/health-api/pkg/httputil"
)

type Handler struct {
	service *condition.Service
}

func NewHandler(service *condition.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	cond := r.Group("/condition")
	{
		cond.GET("", h.List)
		cond.POST("", h.Save)
	}
}

// List returns the single check-in of ?date= when given, otherwise
// the recent history (?limit=).
func (h *Handler) List(c *gin.Context) {
	var filter model.ConditionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid query", err))
		return
	}

	if filter.Date != "" {
		entry, err := h.service.GetByDate(c.Request.Context(), filter.Date)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		httputil.RespondWithSuccess(c, entry)
		return
	}

	entries, err := h.service.List(c.Request.Context(), filter.Limit)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, entries)
}

func (h *Handler) Save(c *gin.Context) {
	var req model.SaveConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest("体調の内容を確認してください", err))
		return
	}

	entry, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithMessage(c, "体調を記録しました", entry)
}
