package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/api"
	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/models"
	"pse_restaurant_admin/pkg/utils"
)

// GalleryHandler exposes the gallery list manager plus publish/draft
// toggling and the public published-images feed.
type GalleryHandler struct {
	crudHandlers[models.GalleryImage]
	galleries *manager.Galleries
	client    *api.Client
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(galleries *manager.Galleries, client *api.Client) *GalleryHandler {
	return &GalleryHandler{
		crudHandlers: newCRUD(galleries.Manager),
		galleries:    galleries,
		client:       client,
	}
}

// galleryStatusRequest is the publish-toggle payload.
type galleryStatusRequest struct {
	Status models.GalleryStatus `json:"status" binding:"required,oneof=Draft Publish"`
}

// SetStatus toggles one image between Draft and Publish.
func (h *GalleryHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.ensureLoaded(c) {
		return
	}

	var req galleryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid status payload.", err.Error()))
		return
	}

	updated, err := h.galleries.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Published serves the public gallery page's images straight from the backend.
func (h *GalleryHandler) Published(c *gin.Context) {
	images, err := h.client.PublishedGalleries(c.Request.Context())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}
