// Package insight exposes the derived views over the raw records:
// coaching advice, the risk assessment and the trend report.
package insight

import (
	"github.com/gin-gonic/gin"

	"github.com/karadarhythm/health-api/internal/service/advice"
	"github.com/karadarhythm/health-api/internal/service/analytics"
	"github.com/karadarhythm/health-api/internal/service/risk"
	"github.com/karadarhythm/health-api/pkg/httputil"
)

type Handler struct {
	adviceSvc    *advice.Service
	riskSvc      *risk.Service
	analyticsSvc *analytics.Service
}

func NewHandler(adviceSvc *advice.Service, riskSvc *risk.Service, analyticsSvc *analytics.Service) *Handler {
	return &Handler{adviceSvc: adviceSvc, riskSvc: riskSvc, analyticsSvc: analyticsSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/advice", h.Advice)
	r.GET("/risk", h.Risk)
	r.GET("/analytics", h.Analytics)
}

func (h *Handler) Advice(c *gin.Context) {
	items, err := h.adviceSvc.Generate(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, items)
}

func (h *Handler) Risk(c *gin.Context) {
	assessment, err := h.riskSvc.Assess(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, assessment)
}

func (h *Handler) Analytics(c *gin.Context) {
	report, err := h.analyticsSvc.Report(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, report)
}
