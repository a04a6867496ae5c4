package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/api"
	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/models"
	"pse_restaurant_admin/pkg/utils"
)

// WeeklyMenuHandler exposes the weekly menu list manager plus the public
// site's date-range query.
type WeeklyMenuHandler struct {
	crudHandlers[models.WeeklyMenu]
	client *api.Client
}

// NewWeeklyMenuHandler creates a new WeeklyMenuHandler.
func NewWeeklyMenuHandler(menus *manager.Manager[models.WeeklyMenu], client *api.Client) *WeeklyMenuHandler {
	return &WeeklyMenuHandler{
		crudHandlers: newCRUD(menus),
		client:       client,
	}
}

// Range serves the menus overlapping [from, to] for the public menu page.
// A missing from defaults to today; a missing to defaults to five days after
// from, matching the window the site shows. A supplied bound is always honored.
func (h *WeeklyMenuHandler) Range(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid date. Use YYYY-MM-DD.", err.Error()))
		return
	}
	if to == "" {
		to = start.AddDate(0, 0, 5).Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", to); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid date. Use YYYY-MM-DD.", err.Error()))
		return
	}

	menus, err := h.client.WeeklyMenuRange(c.Request.Context(), from, to)
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, menus)
}
