package mission

import (
	"github.com/gin-gonic/gin"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/service/mission"
	"github.com/karadarhythm/health-api/pkg/errors"
	"github.com/karadarhythm/health-api/pkg/httputil"
)

type Handler struct {
	service *mission.Service
}

func NewHandler(service *mission.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	missions := r.Group("/missions")
	{
		missions.GET("", h.Status)
		missions.POST("", h.Complete)
	}
}

// Status returns the day's mission, assigning one on first fetch.
func (h *Handler) Status(c *gin.Context) {
	status, err := h.service.Status(c.Request.Context(), c.Query("date"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, status)
}

func (h *Handler) Complete(c *gin.Context) {
	var req model.CompleteMissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid body", err))
		return
	}

	if err := h.service.Complete(c.Request.Context(), &req); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	message := "ミッションを取り消しました"
	if req.Completed {
		message = "ミッション達成！"
	}
	httputil.RespondWithMessage(c, message, nil)
}
