package models

// RestaurantConfig holds the public site's branding, opening hours and
// contact details. The backend keeps it as a collection even though in
// practice a single row is active.
type RestaurantConfig struct {
	ID                 int64  `json:"id"`
	RestaurantName     string `json:"restaurant_name" binding:"required"`
	RestaurantLogoURL  string `json:"restaurant_logo_url"`
	BreakfastFromTime  string `json:"breakfast_from_time"` // HH:MM
	BreakfastToTime    string `json:"breakfast_to_time"`
	LunchFromTime      string `json:"lunch_from_time"`
	LunchToTime        string `json:"lunch_to_time"`
	Location           string `json:"location"`
	ContactPhone1      string `json:"contact_phone_1"`
	ContactEmail1      string `json:"contact_email_1" binding:"omitempty,email"`
	OpeningDescription string `json:"opening_description"`
	Footer             string `json:"footer"`
}
