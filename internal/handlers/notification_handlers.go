package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/api"
	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/models"
	"pse_restaurant_admin/pkg/utils"
)

// NotificationHandler exposes the announcements list manager plus the public
// current-notifications feed and the full-booking toggle.
type NotificationHandler struct {
	crudHandlers[models.Notification]
	client *api.Client
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications *manager.Manager[models.Notification], client *api.Client) *NotificationHandler {
	return &NotificationHandler{
		crudHandlers: newCRUD(notifications),
		client:       client,
	}
}

// Current serves the notifications the public site should display now.
func (h *NotificationHandler) Current(c *gin.Context) {
	notifications, err := h.client.CurrentNotifications(c.Request.Context())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// FullBooking reports today's full-booking notice, if one exists.
func (h *NotificationHandler) FullBooking(c *gin.Context) {
	notice, err := h.client.FullBooking(c.Request.Context())
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

// CreateFullBooking marks the restaurant as fully booked for today. Requires
// the operator's explicit ?confirm=true like a delete.
func (h *NotificationHandler) CreateFullBooking(c *gin.Context) {
	if !confirmed(c) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeAborted, "Action requires confirmation.", ""))
		return
	}
	notice, err := h.client.CreateFullBooking(c.Request.Context())
	if err != nil {
		respondActionError(c, err)
		return
	}
	if notice.Notification != nil {
		h.mgr.Mirror().Upsert(*notice.Notification)
	}
	c.JSON(http.StatusCreated, notice)
}
