package router

import (
	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/api"
	"pse_restaurant_admin/internal/handlers"
	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/middleware"
	"pse_restaurant_admin/internal/session"
)

// Setup initializes the routing for the admin gateway. The backend client
// and session are the only external dependencies; every list manager and
// handler is wired here.
func Setup(engine *gin.Engine, client *api.Client, sess *session.Session) {
	// Initialize managers, one per backend resource.
	bookings := manager.NewBookings(client)
	items := manager.NewItems(client)
	galleries := manager.NewGalleries(client)
	weeklyMenus := manager.NewWeeklyMenus(client)
	notifications := manager.NewNotifications(client)
	configs := manager.NewRestaurantConfigs(client)
	users := manager.NewUsers(client)

	// Initialize handlers.
	authHandler := handlers.NewAuthHandler(client, sess)
	bookingHandler := handlers.NewBookingHandler(bookings)
	itemHandler := handlers.NewItemHandler(items)
	galleryHandler := handlers.NewGalleryHandler(galleries, client)
	weeklyMenuHandler := handlers.NewWeeklyMenuHandler(weeklyMenus, client)
	notificationHandler := handlers.NewNotificationHandler(notifications, client)
	configHandler := handlers.NewRestaurantConfigHandler(configs)
	userHandler := handlers.NewUserHandler(users)
	uploadHandler := handlers.NewUploadHandler(client)

	apiV1 := engine.Group("/api")

	// Public routes: the site's browse and reservation flows plus auth.
	SetupAuthRoutes(apiV1, authHandler)
	SetupPublicRoutes(apiV1, bookingHandler, itemHandler, galleryHandler,
		weeklyMenuHandler, notificationHandler, configHandler)

	// Admin routes: everything the dashboard pages bind to.
	admin := apiV1.Group("/admin")
	admin.Use(middleware.SessionGuard(sess), middleware.AdminOnly(sess))
	{
		SetupBookingRoutes(admin, bookingHandler)
		SetupItemRoutes(admin, itemHandler)
		SetupGalleryRoutes(admin, galleryHandler)
		SetupWeeklyMenuRoutes(admin, weeklyMenuHandler)
		SetupNotificationRoutes(admin, notificationHandler)
		SetupRestaurantConfigRoutes(admin, configHandler)
		SetupUserRoutes(admin, userHandler, authHandler)
		SetupUploadRoutes(admin, uploadHandler)
	}
}
