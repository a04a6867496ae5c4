package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/pkg/utils"
)

// crudHandlers binds one list manager to the gateway's common route shape:
// list (served from the mirror), refresh, create, update, delete. Resource
// handlers embed it and add their specific actions on top.
type crudHandlers[T any] struct {
	mgr *manager.Manager[T]
}

func newCRUD[T any](mgr *manager.Manager[T]) crudHandlers[T] {
	return crudHandlers[T]{mgr: mgr}
}

// ensureLoaded performs the initial full fetch on the first request after
// boot. Every later read is mirror-only; a genuinely empty backend
// collection counts as loaded and is not refetched.
func (h crudHandlers[T]) ensureLoaded(c *gin.Context) bool {
	if h.mgr.Loaded() {
		return true
	}
	if err := h.mgr.Load(c.Request.Context()); err != nil {
		respondActionError(c, err)
		return false
	}
	return true
}

// List serves the filtered, paginated page computed from the local mirror.
func (h crudHandlers[T]) List(c *gin.Context) {
	if !h.ensureLoaded(c) {
		return
	}
	c.JSON(http.StatusOK, h.mgr.View(parseQuery(c)))
}

// Refresh refetches the whole collection from the backend.
func (h crudHandlers[T]) Refresh(c *gin.Context) {
	if err := h.mgr.Load(c.Request.Context()); err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.mgr.View(parseQuery(c)))
}

// Create validates the draft and dispatches a create, returning the
// server's canonical record. The draft stays request-scoped: it is handed to
// the dispatcher directly, never staged in the shared edit session, so
// concurrent requests cannot submit each other's payloads.
func (h crudHandlers[T]) Create(c *gin.Context) {
	var draft T
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.LogError(err, "create "+h.mgr.Name()+": failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	saved, err := h.mgr.SubmitNew(c.Request.Context(), draft, nil)
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// Update dispatches the request's draft as an update of the record,
// returning the server's canonical record.
func (h crudHandlers[T]) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !h.ensureLoaded(c) {
		return
	}

	var draft T
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.LogError(err, "update "+h.mgr.Name()+": failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid request payload.", err.Error()))
		return
	}

	saved, err := h.mgr.SubmitUpdate(c.Request.Context(), id, draft, nil)
	if err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Delete removes the record. The dashboard passes ?confirm=true after the
// operator accepted the confirmation dialog; without it nothing is dispatched.
func (h crudHandlers[T]) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	prompts := manager.StaticPrompter{Confirmed: confirmed(c)}
	if err := h.mgr.Delete(c.Request.Context(), prompts, id); err != nil {
		respondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.mgr.Name() + " deleted"})
}
