package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pse_restaurant_admin/internal/api"
	"pse_restaurant_admin/internal/manager"
	"pse_restaurant_admin/internal/view"
	"pse_restaurant_admin/pkg/utils"
)

// parseQuery reads the list filter state from query parameters.
func parseQuery(c *gin.Context) view.Query {
	return view.Query{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Date:   c.Query("date"),
		Page:   utils.StrToIntDefault(c.Query("page"), 1),
	}
}

// pathID parses the :id path parameter, responding 400 on malformed input.
func pathID(c *gin.Context) (int64, bool) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Invalid id in path.", err.Error()))
		return 0, false
	}
	return id, true
}

// respondActionError translates dispatcher and backend failures into the
// gateway's error envelope. Unauthorized responses carry a login redirect
// hint for the dashboard.
func respondActionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized,
			utils.ErrCodeUnauthorized, "Backend rejected the session token.", err.Error()).
			WithRedirect("/login"))
	case errors.Is(err, api.ErrNotFound), errors.Is(err, manager.ErrNotInMirror):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound,
			utils.ErrCodeNotFound, "Record not found.", err.Error()))
	case errors.Is(err, api.ErrValidationRejected), errors.Is(err, manager.ErrDraftInvalid):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeValidationFailed, "Validation failed.", err.Error()))
	case errors.Is(err, manager.ErrAborted):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest,
			utils.ErrCodeAborted, "Action requires confirmation.", err.Error()))
	case errors.Is(err, manager.ErrSubmitInFlight), errors.Is(err, manager.ErrActionInFlight),
		errors.Is(err, manager.ErrInvalidTransition):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict,
			utils.ErrCodeConflict, "Conflicting action.", err.Error()))
	case errors.Is(err, api.ErrNetworkFailure):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway,
			utils.ErrCodeUpstreamUnavailable, "Backend unavailable.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError,
			utils.ErrCodeInternalServerError, "Unexpected error.", err.Error()))
	}
}

// confirmed reads the explicit delete confirmation flag the dashboard sends
// after the operator accepted the browser dialog.
func confirmed(c *gin.Context) bool {
	return c.Query("confirm") == "true"
}
