package handlers

import (
	"errors"
	"net/http"

	"meditrip/services/booking"
	"meditrip/services/catalog"
	"meditrip/services/integration"
	"meditrip/services/storage"
	"meditrip/services/user"
	"meditrip/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	BookingSvc booking.BookingService
	CatalogSvc catalog.CatalogService
	UserSvc    user.UserService
	WeatherSvc *integration.WeatherService
	RatesSvc   *integration.ExchangeService
	StorageSvc storage.StorageService
}

// respondServiceError maps service-layer error types to HTTP statuses with
// the normalized error body. Errors raised inside a repository transaction
// arrive wrapped, so the mapping unwraps with errors.As.
func respondServiceError(c *gin.Context, err error) {
	var (
		vErr    *booking.ValidationError
		nfErr   *booking.NotFoundError
		authErr *booking.AuthorizationError
	)
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
	case errors.As(err, &nfErr):
		utils.JSONError(c, http.StatusNotFound, nfErr.Message, "")
	case errors.As(err, &authErr):
		utils.JSONError(c, http.StatusForbidden, authErr.Message, "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
