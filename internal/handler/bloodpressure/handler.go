package bloodpressure

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/service/bloodpressure"
	"github.com/karadarhythm/health-api/pkg/errors"
	"github.com/karadarhythm/health-api/pkg/httputil"
)

type Handler struct {
	service *bloodpressure.Service
}

func NewHandler(service *bloodpressure.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bp := r.Group("/blood-pressure")
	{
		bp.GET("", h.List)
		bp.POST("", h.Create)
		bp.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateBloodPressureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest("血圧の値を入力してください", err))
		return
	}

	reading, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithCreated(c, reading)
}

func (h *Handler) List(c *gin.Context) {
	var filter model.BloodPressureFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid query", err))
		return
	}

	readings, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, readings)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid reading ID", err))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithMessage(c, "削除しました", nil)
}
