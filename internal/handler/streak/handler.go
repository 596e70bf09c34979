package streak

import (
	"github.com/gin-gonic/gin"

	"github.com/karadarhythm/health-api/internal/service/streak"
	"github.com/karadarhythm/health-api/pkg/httputil"
)

type Handler struct {
	service *streak.Service
}

func NewHandler(service *streak.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/streaks", h.List)
}

func (h *Handler) List(c *gin.Context) {
	counters, err := h.service.List(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, counters)
}
