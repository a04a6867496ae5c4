package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pse_restaurant_admin/internal/models"
)

// Resource base paths and endpoint overrides, matching the backend as deployed.
// Galleries and restaurant_config predate the getAll/updateBy convention and
// keep their older paths.
var (
	BookingRoutes      = DefaultRoutes("/bookings")
	ItemRoutes         = DefaultRoutes("/items")
	WeeklyMenuRoutes   = DefaultRoutes("/weekly_menu")
	NotificationRoutes = DefaultRoutes("/notifications")

	GalleryRoutes = Routes{
		List:   "/galleries/getAll",
		Create: "/galleries/create",
		Update: "/galleries/update/%d",
		Delete: "/galleries/deleteBy/%d",
	}
	RestaurantConfigRoutes = Routes{
		List:   "/restaurant_config/getAll",
		Create: "/restaurant_config/new",
		Update: "/restaurant_config/%d",
		Delete: "/restaurant_config/%d",
	}
	UserRoutes = Routes{
		List:   "/users/getAll",
		Delete: "/users/%d",
	}
)

// bookingStatusResponse wraps the status endpoint's payload.
type bookingStatusResponse struct {
	Booking models.Booking `json:"booking"`
}

// UpdateBookingStatus applies a status transition to one booking. The
// rejection reason is only meaningful when moving to rejected.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus, rejectionReason string) (models.Booking, error) {
	body := map[string]any{
		"status":           status,
		"rejection_reason": rejectionReason,
	}
	var out bookingStatusResponse
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/bookings/%d/status", id), body, &out)
	return out.Booking, err
}

// PublishedGalleries fetches the images visible on the public gallery page.
func (c *Client) PublishedGalleries(ctx context.Context) ([]models.GalleryImage, error) {
	var out []models.GalleryImage
	if err := c.doJSON(ctx, http.MethodGet, "/galleries/published", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WeeklyMenuRange fetches weekly menus overlapping [from, to], both YYYY-MM-DD.
func (c *Client) WeeklyMenuRange(ctx context.Context, from, to string) ([]models.WeeklyMenu, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	var out []models.WeeklyMenu
	if err := c.doJSON(ctx, http.MethodGet, "/weekly_menu/range?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CurrentNotifications fetches the notifications the public site should show now.
func (c *Client) CurrentNotifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	if err := c.doJSON(ctx, http.MethodGet, "/notifications/current", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FullBookingNotice is the backend's acknowledgement of a full-booking toggle.
type FullBookingNotice struct {
	Message      string               `json:"message"`
	Notification *models.Notification `json:"notification,omitempty"`
}

// CreateFullBooking marks the restaurant as fully booked for today.
func (c *Client) CreateFullBooking(ctx context.Context) (FullBookingNotice, error) {
	var out FullBookingNotice
	err := c.doJSON(ctx, http.MethodPost, "/notifications/fullbooking", map[string]any{}, &out)
	return out, err
}

// FullBooking fetches today's full-booking notice, if any.
func (c *Client) FullBooking(ctx context.Context) (FullBookingNotice, error) {
	var out FullBookingNotice
	err := c.doJSON(ctx, http.MethodGet, "/notifications/getFullbooking", nil, &out)
	return out, err
}
