package models

// NotifyType defines the kind of banner the public site shows.
type NotifyType string

const (
	NotifyTypeClosed NotifyType = "closed"
	NotifyTypeInfo   NotifyType = "info"
	NotifyTypeFull   NotifyType = "full"
)

// IsValidNotifyType checks if the provided type string is a valid NotifyType.
func IsValidNotifyType(t string) bool {
	switch NotifyType(t) {
	case NotifyTypeClosed, NotifyTypeInfo, NotifyTypeFull:
		return true
	default:
		return false
	}
}

// Notification represents a dated announcement (closed day, info banner,
// or a fully-booked notice).
type Notification struct {
	ID          int64      `json:"id"`
	NotifyType  NotifyType `json:"notify_type" binding:"required,oneof=closed info full"`
	NotifyDate  string     `json:"notify_date" binding:"required"` // YYYY-MM-DD
	Description string     `json:"description" binding:"required"`
}
