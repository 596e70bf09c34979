// Package catalogs serves the static reference tables: eating-out
// presets and the seasoning salt database.
package catalogs

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/karadarhythm/health-api/internal/catalog"
	"github.com/karadarhythm/health-api/internal/model"
	"github.com/karadarhythm/health-api/pkg/errors"
	"github.com/karadarhythm/health-api/pkg/httputil"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/eating-out", h.EatingOut)

	seasonings := r.Group("/seasonings")
	{
		seasonings.GET("", h.Seasonings)
		seasonings.GET("/salt", h.Salt)
	}
}

func (h *Handler) EatingOut(c *gin.Context) {
	httputil.RespondWithSuccess(c, catalog.EatingOutPresets())
}

func (h *Handler) Seasonings(c *gin.Context) {
	httputil.RespondWithSuccess(c, catalog.Seasonings())
}

// Salt converts ?id=&amount=&unit= into grams of salt.
func (h *Handler) Salt(c *gin.Context) {
	id := c.Query("id")
	if _, ok := catalog.SeasoningByID(id); !ok {
		httputil.RespondWithError(c, errors.NotFound("seasoning", nil))
		return
	}

	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil || amount < 0 {
		httputil.RespondWithError(c, errors.BadRequest("amount must be a non-negative number", err))
		return
	}

	unit := model.SeasoningUnit(c.DefaultQuery("unit", string(model.UnitTablespoon)))
	if unit != model.UnitTablespoon && unit != model.UnitTeaspoon {
		httputil.RespondWithError(c, errors.BadRequest("unit must be tbsp or tsp", nil))
		return
	}

	httputil.RespondWithSuccess(c, gin.H{
		"seasoning_id": id,
		"amount":       amount,
		"unit":         unit,
		"salt_g":       catalog.CalculateSalt(id, amount, unit),
	})
}
