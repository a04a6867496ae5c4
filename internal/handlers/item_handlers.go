package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/models"
	"pse_restaurant_admin/pkg/utils"
)

// ItemHandler exposes the menu item list manager and the public menu feed.
type ItemHandler struct {
	crudHandlers[models.Item]
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(items *manager.Manager[models.Item]) *ItemHandler {
	return &ItemHandler{crudHandlers: newCRUD(items)}
}

// PublicMenu serves one category of the public menu page from the mirror.
func (h *ItemHandler) PublicMenu(c *gin.Context) {
	itemType := c.Query("type")
	if itemType != "" && !models.IsValidItemType(itemType) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid item type.", "type: "+itemType))
		return
	}
	if !h.ensureLoaded(c) {
		return
	}
	items := make([]models.Item, 0)
	for _, item := range h.mgr.Mirror().All() {
		if itemType == "" || string(item.Type) == itemType {
			items = append(items, item)
		}
	}
	c.JSON(http.StatusOK, items)
}
