package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/models"
)

// RestaurantConfigHandler exposes the restaurant configuration manager.
type RestaurantConfigHandler struct {
	crudHandlers[models.RestaurantConfig]
}

// NewRestaurantConfigHandler creates a new RestaurantConfigHandler.
func NewRestaurantConfigHandler(configs *manager.Manager[models.RestaurantConfig]) *RestaurantConfigHandler {
	return &RestaurantConfigHandler{crudHandlers: newCRUD(configs)}
}

// PublicConfig serves the active configuration for the public site's header
// and footer. The backend keeps configs as a collection; the first row wins.
func (h *RestaurantConfigHandler) PublicConfig(c *gin.Context) {
	if !h.ensureLoaded(c) {
		return
	}
	configs := h.mgr.Mirror().All()
	if len(configs) == 0 {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, configs[0])
}
