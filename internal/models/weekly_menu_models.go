package models

// MenuShift defines which meal of the day a weekly menu covers.
type MenuShift string

const (
	MenuShiftBreakfast MenuShift = "breakfast"
	MenuShiftLunch     MenuShift = "lunch"
	MenuShiftDinner    MenuShift = "dinner"
)

// IsValidMenuShift checks if the provided shift string is a valid MenuShift.
func IsValidMenuShift(shift string) bool {
	switch MenuShift(shift) {
	case MenuShiftBreakfast, MenuShiftLunch, MenuShiftDinner:
		return true
	default:
		return false
	}
}

// WeeklyMenu represents a dated menu sheet for one shift, with bilingual
// descriptions and an uploaded menu image.
type WeeklyMenu struct {
	ID                     int64     `json:"id"`
	MenuShift              MenuShift `json:"menu_shift" binding:"required,oneof=breakfast lunch dinner"`
	FromDate               string    `json:"from_date" binding:"required"` // YYYY-MM-DD
	ToDate                 string    `json:"to_date" binding:"required"`   // YYYY-MM-DD
	EnglishMenuDescription string    `json:"english_menu_description"`
	KhmerMenuDescription   string    `json:"khmer_menu_description"`
	ImagesURLs             string    `json:"images_urls"`
}
