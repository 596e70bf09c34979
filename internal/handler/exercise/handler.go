package exercise

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/internal/service/exercise"
	"github.com/karadarhythm/health-api/pkg/errors"
	"github.com/karadarhythm/health-api/pkg/httputil"
)

type Handler struct {
	service *exercise.Service
}

func NewHandler(service *exercise.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/exercises", h.Catalog)

	log := r.Group("/exercise-log")
	{
		log.GET("", h.List)
		log.POST("", h.Create)
		log.GET("/summary", h.Summary)
		log.PATCH("/:id/complete", h.Complete)
		log.DELETE("/:id", h.Delete)
	}
}

func (h *Handler) Catalog(c *gin.Context) {
	category := model.ExerciseCategory(c.Query("category"))
	httputil.RespondWithSuccess(c, h.service.Catalog(category))
}

func (h *Handler) List(c *gin.Context) {
	entries, err := h.service.ListByDate(c.Request.Context(), c.Query("date"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, entries)
}

func (h *Handler) Create(c *gin.Context) {
	var req model.CreateExerciseLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, errors.BadRequest("運動を選択してください", err))
		return
	}

	entry, err := h.service.Log(c.Request.Context(), &req)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithCreated(c, entry)
}

type completeRequest struct {
	Completed bool `json:"completed"`
}

func (h *Handler) Complete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid log ID", err))
		return
	}

	req := completeRequest{Completed: true}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.RespondWithError(c, errors.BadRequest("invalid body", err))
			return
		}
	}

	entry, err := h.service.SetCompleted(c.Request.Context(), id, req.Completed)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, entry)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.RespondWithError(c, errors.BadRequest("invalid log ID", err))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithMessage(c, "削除しました", nil)
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context(), c.Query("date"))
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	httputil.RespondWithSuccess(c, summary)
}
