package models

// ItemType defines the menu category an item belongs to.
type ItemType string

const (
	ItemTypeFood   ItemType = "food"
	ItemTypeDrink  ItemType = "drink"
	ItemTypeBakery ItemType = "bakery"
)

// IsValidItemType checks if the provided type string is a valid ItemType.
func IsValidItemType(t string) bool {
	switch ItemType(t) {
	case ItemTypeFood, ItemTypeDrink, ItemTypeBakery:
		return true
	default:
		return false
	}
}

// Item represents a menu item (food, drink or bakery).
type Item struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Type        ItemType `json:"type" binding:"required,oneof=food drink bakery"`
	Price       float64  `json:"price" binding:"min=0"`
	Discount    float64  `json:"discount" binding:"min=0"`
	Description string   `json:"description"`
	ImageURL    *string  `json:"image_url,omitempty"`
}
