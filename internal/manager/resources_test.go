package manager_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pse_restaurant_admin/internal/api"
	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/models"
)

// bookingBackend is a minimal fake of the booking endpoints.
type bookingBackend struct {
	mux         *http.ServeMux
	bookings    []models.Booking
	statusCalls int
}

func newBookingBackend(bookings ...models.Booking) *bookingBackend {
	b := &bookingBackend{mux: http.NewServeMux(), bookings: bookings}

	b.mux.HandleFunc("GET /bookings/getAll", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(b.bookings)
	})
	b.mux.HandleFunc("PUT /bookings/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		b.statusCalls++

		var body struct {
			Status          models.BookingStatus `json:"status"`
			RejectionReason string               `json:"rejection_reason"`
		}
		json.NewDecoder(r.Body).Decode(&body)

		var id int64
		fmt.Sscanf(r.PathValue("id"), "%d", &id)
		for i := range b.bookings {
			if b.bookings[i].BookingID == id {
				b.bookings[i].Status = body.Status
				b.bookings[i].RejectionReason = body.RejectionReason
				json.NewEncoder(w).Encode(map[string]models.Booking{"booking": b.bookings[i]})
				return
			}
		}
		http.NotFound(w, r)
	})
	return b
}

func pendingBooking(id int64) models.Booking {
	return models.Booking{
		BookingID:      id,
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "+85512000001",
		NumberOfPeople: 2,
		DateToCome:     "2025-06-20",
		TimeToCome:     "19:00",
		TableType:      "Couple",
		Floor:          "Indoor",
		Status:         models.BookingStatusPending,
	}
}

func TestBookings_RejectWithoutReasonMakesNoCall(t *testing.T) {
	backend := newBookingBackend(pendingBooking(7))
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	bookings := manager.NewBookings(api.NewClient(srv.URL, srv.Client(), nil))
	require.NoError(t, bookings.Load(context.Background()))

	// Cancelled reason prompt: the rejection never reaches the backend.
	prompts := manager.StaticPrompter{HasReason: false}
	_, err := bookings.SetStatus(context.Background(), prompts, 7, models.BookingStatusRejected)

	assert.ErrorIs(t, err, manager.ErrAborted)
	assert.Zero(t, backend.statusCalls)

	got, ok := bookings.Mirror().Get(7)
	require.True(t, ok)
	assert.Equal(t, models.BookingStatusPending, got.Status)
}

func TestBookings_RejectWithReason(t *testing.T) {
	backend := newBookingBackend(pendingBooking(7))
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	bookings := manager.NewBookings(api.NewClient(srv.URL, srv.Client(), nil))
	require.NoError(t, bookings.Load(context.Background()))

	prompts := manager.StaticPrompter{Reason: "fully booked", HasReason: true}
	updated, err := bookings.SetStatus(context.Background(), prompts, 7, models.BookingStatusRejected)
	require.NoError(t, err)

	assert.Equal(t, 1, backend.statusCalls)
	assert.Equal(t, models.BookingStatusRejected, updated.Status)
	assert.Equal(t, "fully booked", updated.RejectionReason)

	got, _ := bookings.Mirror().Get(7)
	assert.Equal(t, models.BookingStatusRejected, got.Status)
}

func TestBookings_AcceptNeedsNoPrompt(t *testing.T) {
	backend := newBookingBackend(pendingBooking(3))
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	bookings := manager.NewBookings(api.NewClient(srv.URL, srv.Client(), nil))
	require.NoError(t, bookings.Load(context.Background()))

	updated, err := bookings.SetStatus(context.Background(), manager.StaticPrompter{}, 3, models.BookingStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, updated.Status)
}

func TestBookings_InvalidTransitionRefused(t *testing.T) {
	accepted := pendingBooking(5)
	accepted.Status = models.BookingStatusAccepted
	backend := newBookingBackend(accepted)
	srv := httptest.NewServer(backend.mux)
	defer srv.Close()

	bookings := manager.NewBookings(api.NewClient(srv.URL, srv.Client(), nil))
	require.NoError(t, bookings.Load(context.Background()))

	_, err := bookings.SetStatus(context.Background(), manager.StaticPrompter{}, 5, models.BookingStatusPending)
	assert.ErrorIs(t, err, manager.ErrInvalidTransition)
	assert.Zero(t, backend.statusCalls)

	_, err = bookings.SetStatus(context.Background(), manager.StaticPrompter{}, 99, models.BookingStatusAccepted)
	assert.ErrorIs(t, err, manager.ErrNotInMirror)
}

func TestGalleries_SetStatusStampsPublishedAt(t *testing.T) {
	mux := http.NewServeMux()
	images := []models.GalleryImage{
		{ID: 5, Title: "Terrace", Status: models.GalleryStatusDraft, ImageURL: "/uploads/terrace.png"},
	}
	mux.HandleFunc("GET /galleries/getAll", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(images)
	})
	mux.HandleFunc("PUT /galleries/update/{id}", func(w http.ResponseWriter, r *http.Request) {
		// Echo the submitted record back as the canonical version.
		body, _ := io.ReadAll(r.Body)
		w.Write(body)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	galleries := manager.NewGalleries(api.NewClient(srv.URL, srv.Client(), nil))
	require.NoError(t, galleries.Load(context.Background()))

	published, err := galleries.SetStatus(context.Background(), 5, models.GalleryStatusPublish)
	require.NoError(t, err)
	assert.Equal(t, models.GalleryStatusPublish, published.Status)
	require.NotNil(t, published.PublishedAt, "publishing stamps published_at")

	got, _ := galleries.Mirror().Get(5)
	assert.Equal(t, models.GalleryStatusPublish, got.Status)

	// Moving back to draft clears the stamp.
	drafted, err := galleries.SetStatus(context.Background(), 5, models.GalleryStatusDraft)
	require.NoError(t, err)
	assert.Equal(t, models.GalleryStatusDraft, drafted.Status)
	assert.Nil(t, drafted.PublishedAt)
}

func TestWeeklyMenus_LoadSortsNewestFirst(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /weekly_menu/getAll", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.WeeklyMenu{
			{ID: 1, MenuShift: models.MenuShiftLunch, FromDate: "2025-05-12", ToDate: "2025-05-16"},
			{ID: 2, MenuShift: models.MenuShiftLunch, FromDate: "2025-06-02", ToDate: "2025-06-06"},
			{ID: 3, MenuShift: models.MenuShiftDinner, FromDate: "2025-05-26", ToDate: "2025-05-30"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	menus := manager.NewWeeklyMenus(api.NewClient(srv.URL, srv.Client(), nil))
	require.NoError(t, menus.Load(context.Background()))

	all := menus.Mirror().All()
	require.Len(t, all, 3)
	assert.Equal(t, int64(2), all[0].ID)
	assert.Equal(t, int64(3), all[1].ID)
	assert.Equal(t, int64(1), all[2].ID)
}

func TestWeeklyMenus_FromAfterToRejected(t *testing.T) {
	var createCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("POST /weekly_menu/create", func(w http.ResponseWriter, r *http.Request) {
		createCalls++
		w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	menus := manager.NewWeeklyMenus(api.NewClient(srv.URL, srv.Client(), nil))
	menus.StartCreate()
	menus.SetDraft(models.WeeklyMenu{
		MenuShift: models.MenuShiftLunch,
		FromDate:  "2025-06-10",
		ToDate:    "2025-06-06",
	})

	_, err := menus.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, manager.ErrDraftInvalid)
	assert.Zero(t, createCalls)
}
