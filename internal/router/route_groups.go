package router

import (
	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/handlers"
)

// SetupAuthRoutes sets up login, registration and logout.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/users")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/logout", authHandler.Logout)
	}
}

// SetupPublicRoutes sets up the unauthenticated site feeds: menu browsing,
// the reservation form, the gallery and the notice banners.
func SetupPublicRoutes(
	apiGroup *gin.RouterGroup,
	bookingHandler *handlers.BookingHandler,
	itemHandler *handlers.ItemHandler,
	galleryHandler *handlers.GalleryHandler,
	weeklyMenuHandler *handlers.WeeklyMenuHandler,
	notificationHandler *handlers.NotificationHandler,
	configHandler *handlers.RestaurantConfigHandler,
) {
	apiGroup.POST("/bookings", bookingHandler.PublicCreate)
	apiGroup.GET("/bookings/:id/qr", bookingHandler.SummaryQR)
	apiGroup.GET("/menu", itemHandler.PublicMenu)
	apiGroup.GET("/galleries/published", galleryHandler.Published)
	apiGroup.GET("/weekly_menu/range", weeklyMenuHandler.Range)
	apiGroup.GET("/notifications/current", notificationHandler.Current)
	apiGroup.GET("/restaurant_config", configHandler.PublicConfig)
}

// SetupBookingRoutes sets up the dashboard's booking management routes.
func SetupBookingRoutes(adminGroup *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookingRoutes := adminGroup.Group("/bookings")
	{
		bookingRoutes.GET("", bookingHandler.List)
		bookingRoutes.POST("/refresh", bookingHandler.Refresh)
		bookingRoutes.POST("", bookingHandler.Create)
		bookingRoutes.PUT("/:id", bookingHandler.Update)
		bookingRoutes.DELETE("/:id", bookingHandler.Delete)
		bookingRoutes.PUT("/:id/status", bookingHandler.SetStatus)
	}
}

// SetupItemRoutes sets up the dashboard's menu item routes.
func SetupItemRoutes(adminGroup *gin.RouterGroup, itemHandler *handlers.ItemHandler) {
	itemRoutes := adminGroup.Group("/items")
	{
		itemRoutes.GET("", itemHandler.List)
		itemRoutes.POST("/refresh", itemHandler.Refresh)
		itemRoutes.POST("", itemHandler.Create)
		itemRoutes.PUT("/:id", itemHandler.Update)
		itemRoutes.DELETE("/:id", itemHandler.Delete)
	}
}

// SetupGalleryRoutes sets up the dashboard's gallery routes.
func SetupGalleryRoutes(adminGroup *gin.RouterGroup, galleryHandler *handlers.GalleryHandler) {
	galleryRoutes := adminGroup.Group("/galleries")
	{
		galleryRoutes.GET("", galleryHandler.List)
		galleryRoutes.POST("/refresh", galleryHandler.Refresh)
		galleryRoutes.POST("", galleryHandler.Create)
		galleryRoutes.PUT("/:id", galleryHandler.Update)
		galleryRoutes.DELETE("/:id", galleryHandler.Delete)
		galleryRoutes.PUT("/:id/status", galleryHandler.SetStatus)
	}
}

// SetupWeeklyMenuRoutes sets up the dashboard's weekly menu routes.
func SetupWeeklyMenuRoutes(adminGroup *gin.RouterGroup, weeklyMenuHandler *handlers.WeeklyMenuHandler) {
	weeklyMenuRoutes := adminGroup.Group("/weekly_menu")
	{
		weeklyMenuRoutes.GET("", weeklyMenuHandler.List)
		weeklyMenuRoutes.POST("/refresh", weeklyMenuHandler.Refresh)
		weeklyMenuRoutes.POST("", weeklyMenuHandler.Create)
		weeklyMenuRoutes.PUT("/:id", weeklyMenuHandler.Update)
		weeklyMenuRoutes.DELETE("/:id", weeklyMenuHandler.Delete)
	}
}

// SetupNotificationRoutes sets up the dashboard's announcement routes.
func SetupNotificationRoutes(adminGroup *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	notificationRoutes := adminGroup.Group("/notifications")
	{
		notificationRoutes.GET("", notificationHandler.List)
		notificationRoutes.POST("/refresh", notificationHandler.Refresh)
		notificationRoutes.POST("", notificationHandler.Create)
		notificationRoutes.PUT("/:id", notificationHandler.Update)
		notificationRoutes.DELETE("/:id", notificationHandler.Delete)
		notificationRoutes.GET("/fullbooking", notificationHandler.FullBooking)
		notificationRoutes.POST("/fullbooking", notificationHandler.CreateFullBooking)
	}
}

// SetupRestaurantConfigRoutes sets up the dashboard's configuration routes.
func SetupRestaurantConfigRoutes(adminGroup *gin.RouterGroup, configHandler *handlers.RestaurantConfigHandler) {
	configRoutes := adminGroup.Group("/restaurant_config")
	{
		configRoutes.GET("", configHandler.List)
		configRoutes.POST("/refresh", configHandler.Refresh)
		configRoutes.POST("", configHandler.Create)
		configRoutes.PUT("/:id", configHandler.Update)
		configRoutes.DELETE("/:id", configHandler.Delete)
	}
}

// SetupUserRoutes sets up the dashboard's user management routes. Users are
// never created or edited here; accounts come from registration.
func SetupUserRoutes(adminGroup *gin.RouterGroup, userHandler *handlers.UserHandler, authHandler *handlers.AuthHandler) {
	userRoutes := adminGroup.Group("/users")
	{
		userRoutes.GET("", userHandler.List)
		userRoutes.POST("/refresh", userHandler.Refresh)
		userRoutes.DELETE("/:id", userHandler.Delete)
		userRoutes.GET("/me", authHandler.Me)
	}
}

// SetupUploadRoutes sets up the image upload passthrough.
func SetupUploadRoutes(adminGroup *gin.RouterGroup, uploadHandler *handlers.UploadHandler) {
	adminGroup.POST("/upload", uploadHandler.Upload)
}
