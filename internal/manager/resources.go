package manager

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"pse_restaurant_admin/internal/api"
	"pse_restaurant_admin/internal/models"
)

// Bookings manages table reservations, adding the accept/reject status
// transitions on top of the generic CRUD actions.
type Bookings struct {
	*Manager[models.Booking]
	client *api.Client
}

// NewBookings instantiates the booking list manager.
func NewBookings(client *api.Client) *Bookings {
	cfg := Config[models.Booking]{
		Name:     "booking",
		PageSize: 10,
		Key:      func(b models.Booking) int64 { return b.BookingID },
		SearchText: func(b models.Booking) string {
			return b.Name + " " + b.Email + " " + b.Phone
		},
		Status:   func(b models.Booking) string { return string(b.Status) },
		Date:     func(b models.Booking) string { return b.DateToCome },
		NewDraft: func() models.Booking { return models.Booking{} },
	}
	col := api.NewCollection[models.Booking](client, api.BookingRoutes)
	return &Bookings{
		Manager: New(cfg, col, nil, LogNotifier{Resource: "bookings"}),
		client:  client,
	}
}

// SetStatus applies an accept/reject transition to one booking. Rejection
// requires a reason collected through the prompter; a cancelled prompt
// aborts without any network call and leaves the booking unchanged.
func (b *Bookings) SetStatus(ctx context.Context, prompts Prompter, id int64, status models.BookingStatus) (models.Booking, error) {
	var zero models.Booking

	current, ok := b.Mirror().Get(id)
	if !ok {
		return zero, fmt.Errorf("%w: booking %d", ErrNotInMirror, id)
	}
	if !models.CanTransitionBooking(current.Status, status) {
		return zero, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, status)
	}

	reason := ""
	if status == models.BookingStatusRejected {
		r, ok := prompts.Prompt("Please provide a reason for rejection:")
		if !ok {
			return zero, ErrAborted
		}
		reason = r
	}

	if !b.acquire(id) {
		return zero, fmt.Errorf("%w: booking %d", ErrActionInFlight, id)
	}
	defer b.release(id)

	updated, err := b.client.UpdateBookingStatus(ctx, id, status, reason)
	if err != nil {
		b.notify.Error("Failed to update booking status")
		return zero, err
	}
	b.Mirror().Upsert(updated)
	b.notify.Success("Booking status updated")
	return updated, nil
}

// NewItems instantiates the menu item list manager, covering food, drink
// and bakery.
func NewItems(client *api.Client) *Manager[models.Item] {
	cfg := Config[models.Item]{
		Name:       "item",
		PageSize:   10,
		Key:        func(i models.Item) int64 { return i.ID },
		SearchText: func(i models.Item) string { return i.Name },
		Status:     func(i models.Item) string { return string(i.Type) },
		NewDraft:   func() models.Item { return models.Item{Type: models.ItemTypeFood} },
		SetImageURL: func(draft *models.Item, url string) {
			draft.ImageURL = &url
		},
	}
	col := api.NewCollection[models.Item](client, api.ItemRoutes)
	return New(cfg, col, client, LogNotifier{Resource: "items"})
}

// Galleries manages the public gallery images, adding publish/draft toggling.
type Galleries struct {
	*Manager[models.GalleryImage]
	col *api.Collection[models.GalleryImage]
}

// NewGalleries instantiates the gallery list manager.
func NewGalleries(client *api.Client) *Galleries {
	cfg := Config[models.GalleryImage]{
		Name:     "gallery image",
		PageSize: 8,
		Key:      func(g models.GalleryImage) int64 { return g.ID },
		SearchText: func(g models.GalleryImage) string {
			return g.Title + " " + g.Tags
		},
		Status: func(g models.GalleryImage) string { return string(g.Status) },
		NewDraft: func() models.GalleryImage {
			return models.GalleryImage{Status: models.GalleryStatusDraft}
		},
		SetImageURL: func(draft *models.GalleryImage, url string) {
			draft.ImageURL = url
		},
		PrepareDraft: stampPublishedAt,
	}
	col := api.NewCollection[models.GalleryImage](client, api.GalleryRoutes)
	return &Galleries{
		Manager: New(cfg, col, client, LogNotifier{Resource: "galleries"}),
		col:     col,
	}
}

// stampPublishedAt derives published_at from the publication status: set on
// publish, cleared back to null on draft.
func stampPublishedAt(draft *models.GalleryImage) {
	if draft.Status == models.GalleryStatusPublish {
		if draft.PublishedAt == nil {
			now := time.Now().UTC()
			draft.PublishedAt = &now
		}
	} else {
		draft.PublishedAt = nil
	}
}

// SetStatus toggles one image between Draft and Publish. The backend has no
// dedicated status endpoint for galleries, so this is a full update of the
// mirrored record with the status and published_at mutated.
func (g *Galleries) SetStatus(ctx context.Context, id int64, status models.GalleryStatus) (models.GalleryImage, error) {
	var zero models.GalleryImage

	record, ok := g.Mirror().Get(id)
	if !ok {
		return zero, fmt.Errorf("%w: gallery image %d", ErrNotInMirror, id)
	}
	record.Status = status
	stampPublishedAt(&record)

	if !g.acquire(id) {
		return zero, fmt.Errorf("%w: gallery image %d", ErrActionInFlight, id)
	}
	defer g.release(id)

	updated, err := g.col.Update(ctx, id, record)
	if err != nil {
		g.notify.Error("Failed to update gallery status")
		return zero, err
	}
	g.Mirror().Upsert(updated)
	g.notify.Success("Gallery status updated")
	return updated, nil
}

// NewWeeklyMenus instantiates the weekly menu list manager. Menus are
// mirrored newest first by from_date.
func NewWeeklyMenus(client *api.Client) *Manager[models.WeeklyMenu] {
	cfg := Config[models.WeeklyMenu]{
		Name:       "weekly menu",
		PageSize:   8,
		Key:        func(m models.WeeklyMenu) int64 { return m.ID },
		SearchText: func(m models.WeeklyMenu) string { return m.EnglishMenuDescription },
		Status:     func(m models.WeeklyMenu) string { return string(m.MenuShift) },
		Date:       func(m models.WeeklyMenu) string { return m.FromDate },
		NewDraft: func() models.WeeklyMenu {
			return models.WeeklyMenu{MenuShift: models.MenuShiftBreakfast}
		},
		SortOnLoad: func(menus []models.WeeklyMenu) {
			// ISO dates sort lexicographically; newest first.
			sort.SliceStable(menus, func(i, j int) bool {
				return menus[i].FromDate > menus[j].FromDate
			})
		},
		SetImageURL: func(draft *models.WeeklyMenu, url string) {
			draft.ImagesURLs = url
		},
		ValidateDraft: func(draft models.WeeklyMenu) error {
			if draft.FromDate > draft.ToDate {
				return errors.New("From Date cannot be after To Date")
			}
			return nil
		},
	}
	col := api.NewCollection[models.WeeklyMenu](client, api.WeeklyMenuRoutes)
	return New(cfg, col, client, LogNotifier{Resource: "weekly_menu"})
}

// NewNotifications instantiates the announcements list manager.
func NewNotifications(client *api.Client) *Manager[models.Notification] {
	cfg := Config[models.Notification]{
		Name:       "notification",
		PageSize:   10,
		Key:        func(n models.Notification) int64 { return n.ID },
		SearchText: func(n models.Notification) string { return n.Description },
		Status:     func(n models.Notification) string { return string(n.NotifyType) },
		Date:       func(n models.Notification) string { return n.NotifyDate },
		NewDraft:   func() models.Notification { return models.Notification{} },
	}
	col := api.NewCollection[models.Notification](client, api.NotificationRoutes)
	return New(cfg, col, nil, LogNotifier{Resource: "notifications"})
}

// NewRestaurantConfigs instantiates the restaurant configuration manager.
func NewRestaurantConfigs(client *api.Client) *Manager[models.RestaurantConfig] {
	cfg := Config[models.RestaurantConfig]{
		Name:     "configuration",
		PageSize: 10,
		Key:      func(c models.RestaurantConfig) int64 { return c.ID },
		SearchText: func(c models.RestaurantConfig) string {
			return c.RestaurantName + " " + c.Location
		},
		NewDraft: func() models.RestaurantConfig { return models.RestaurantConfig{} },
		SetImageURL: func(draft *models.RestaurantConfig, url string) {
			draft.RestaurantLogoURL = url
		},
	}
	col := api.NewCollection[models.RestaurantConfig](client, api.RestaurantConfigRoutes)
	return New(cfg, col, client, LogNotifier{Resource: "restaurant_config"})
}

// NewUsers instantiates the registered-users manager. Users are only ever
// listed and deleted from the dashboard; accounts are created via
// registration and never edited in place.
func NewUsers(client *api.Client) *Manager[models.User] {
	cfg := Config[models.User]{
		Name:     "user",
		PageSize: 10,
		Key:      func(u models.User) int64 { return u.ID },
		SearchText: func(u models.User) string {
			return u.Username + " " + u.Email
		},
		Status:   func(u models.User) string { return string(u.Role) },
		NewDraft: func() models.User { return models.User{} },
	}
	col := api.NewCollection[models.User](client, api.UserRoutes)
	return New(cfg, col, nil, LogNotifier{Resource: "users"})
}
