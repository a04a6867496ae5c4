package handlers

import (
	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/models"
)

// UserHandler exposes the registered-users manager. Users are only listed
// and deleted from the dashboard; accounts come from registration, so the
// inherited Create/Update handlers are never routed.
type UserHandler struct {
	crudHandlers[models.User]
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *manager.Manager[models.User]) *UserHandler {
	return &UserHandler{crudHandlers: newCRUD(users)}
}
