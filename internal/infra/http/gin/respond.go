package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"venuebook/internal/app/handlers/bookingflow"
	"venuebook/internal/app/middleware"
	domainbooking "venuebook/internal/domain/booking"
	domainprofile "venuebook/internal/domain/profile"
	"venuebook/internal/domain/session"
	domainrange "venuebook/internal/domain/shared/daterange"
	domainvenue "venuebook/internal/domain/venue"
	"venuebook/internal/infra/catalog"
)

// respondError maps domain and transport errors onto HTTP statuses. Remote
// rejections keep their own status and verbatim message so the client sees
// exactly what the venue service said.
func respondError(c *gin.Context, err error) {
	var remote *catalog.RemoteError
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrManagerRequired),
		errors.Is(err, bookingflow.ErrNotVenueOwner),
		errors.Is(err, domainbooking.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domainvenue.ErrVenueNotFound),
		errors.Is(err, domainbooking.ErrBookingNotFound),
		errors.Is(err, domainprofile.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, middleware.ErrActionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainbooking.ErrUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainrange.ErrInvalidRange),
		errors.Is(err, domainbooking.ErrZeroNights),
		errors.Is(err, domainbooking.ErrInvalidGuestCount),
		errors.Is(err, domainbooking.ErrNotEditable),
		errors.Is(err, domainbooking.ErrInvalidState):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &remote):
		status := remote.Status
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": remote.Message})
	case errors.Is(err, catalog.ErrFetchFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
