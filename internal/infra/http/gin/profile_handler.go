package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"venuebook/internal/app/commands"
	"venuebook/internal/app/dto"
	"venuebook/internal/app/handlers/bookingflow"
	"venuebook/internal/app/handlers/dashboard"
	"venuebook/internal/app/queries"
)

// ProfileHandler serves the customer and manager dashboards.
type ProfileHandler struct {
	Queries queries.Bus
}

func (h ProfileHandler) Dashboard(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	result, err := queries.Ask[dashboard.CustomerBookingsQuery, dto.CustomerDashboard](c.Request.Context(), h.Queries, dashboard.CustomerBookingsQuery{Session: sess})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h ProfileHandler) ManagerOverview(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	result, err := queries.Ask[dashboard.ManagerOverviewQuery, dto.ManagerOverview](c.Request.Context(), h.Queries, dashboard.ManagerOverviewQuery{Session: sess})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ ProfileHTTP = ProfileHandler{}

// ManagerHandler handles venue administration.
type ManagerHandler struct {
	Commands commands.Bus
}

func (h ManagerHandler) DeleteVenue(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	cmd := bookingflow.DeleteVenueCommand{
		Session: sess,
		VenueID: c.Param("id"),
	}
	result, err := commands.Dispatch[bookingflow.DeleteVenueCommand, *bookingflow.DeleteVenueResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ ManagerHTTP = ManagerHandler{}
