package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/models"
	"pse_restaurant_admin/pkg/utils"
)

// BookingHandler exposes the booking list manager plus the accept/reject
// transitions and the public reservation flow.
type BookingHandler struct {
	crudHandlers[models.Booking]
	bookings *manager.Bookings
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings *manager.Bookings) *BookingHandler {
	return &BookingHandler{
		crudHandlers: newCRUD(bookings.Manager),
		bookings:     bookings,
	}
}

// List serves the filtered booking page and flags reservations that arrived
// today and are still pending, so the dashboard can highlight them.
func (h *BookingHandler) List(c *gin.Context) {
	if !h.ensureLoaded(c) {
		return
	}
	page := h.bookings.View(parseQuery(c))

	now := time.Now()
	newIDs := make([]int64, 0)
	for _, b := range page.Items {
		if b.IsNew(now) {
			newIDs = append(newIDs, b.BookingID)
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"items":        page.Items,
		"total_items":  page.TotalItems,
		"total_pages":  page.TotalPages,
		"current_page": page.Current,
		"new_ids":      newIDs,
	})
}

// statusChangeRequest is the transition payload. RejectionReason is a
// pointer: absent means the operator cancelled the reason prompt, which
// aborts a rejection without any backend call.
type statusChangeRequest struct {
	Status          models.BookingStatus `json:"status" binding:"required,oneof=accepted rejected"`
	RejectionReason *string              `json:"rejection_reason"`
}

// SetStatus applies an accept or reject transition to one booking.
func (h *BookingHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.ensureLoaded(c) {
		return
	}

	var req statusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid status payload.", err.Error()))
		return
	}

	prompts := manager.StaticPrompter{Confirmed: true}
	if req.RejectionReason != nil {
		prompts.Reason = *req.RejectionReason
		prompts.HasReason = true
	}

	updated, err := h.bookings.SetStatus(c.Request.Context(), prompts, id, req.Status)
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// PublicCreate handles the public site's reservation form. New bookings
// always start pending regardless of what the form sent.
func (h *BookingHandler) PublicCreate(c *gin.Context) {
	var draft models.Booking
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid booking payload.", err.Error()))
		return
	}
	draft.Status = ""
	draft.RejectionReason = ""

	saved, err := h.bookings.SubmitNew(c.Request.Context(), draft, nil)
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// SummaryQR renders a booking's confirmation summary as a QR PNG for the
// printable summary page.
func (h *BookingHandler) SummaryQR(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.ensureLoaded(c) {
		return
	}

	booking, found := h.bookings.Mirror().Get(id)
	if !found {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound,
			utils.ErrCodeNotFound, "Booking not found.", ""))
		return
	}

	summary := fmt.Sprintf("Booking #%d | %s | %s %s | %s table, %s",
		booking.BookingID, booking.Name, booking.DateToCome, booking.TimeToCome,
		booking.TableType, booking.Floor)
	png, err := qrcode.Encode(summary, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError,
			utils.ErrCodeInternalServerError, "Failed to render QR code.", err.Error()))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
