package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/api"
	"pse_restaurant_admin/pkg/utils"
)

// UploadHandler streams image uploads through to the backend's storage and
// hands the resulting URL back, so the dashboard can stitch it into a draft
// before create/update.
type UploadHandler struct {
	client *api.Client
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(client *api.Client) *UploadHandler {
	return &UploadHandler{client: client}
}

// Upload forwards the multipart "image" field to the backend.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Missing image file.", err.Error()))
		return
	}

	content, err := file.Open()
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Unreadable image file.", err.Error()))
		return
	}
	defer content.Close()

	url, err := h.client.Upload(c.Request.Context(), file.Filename, content)
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
