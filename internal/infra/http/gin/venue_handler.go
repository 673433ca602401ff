package ginserver

import (
	"net/http"
	"strconv"
	"strings"

	gin "github.com/gin-gonic/gin"

	"venuebook/internal/app/dto"
	catalogapp "venuebook/internal/app/handlers/catalog"
	"venuebook/internal/app/queries"
	domainvenue "venuebook/internal/domain/venue"
)

// VenueHandler wires catalog queries to HTTP.
type VenueHandler struct {
	Queries queries.Bus
}

// Search serves both retrieval modes: a non-empty q switches to free-text
// search and every browse parameter is ignored, mirroring the remote
// service's own asymmetry.
func (h VenueHandler) Search(c *gin.Context) {
	state := queryStateFromRequest(c)
	result, err := queries.Ask[catalogapp.SearchVenuesQuery, dto.VenuePage](c.Request.Context(), h.Queries, catalogapp.SearchVenuesQuery{State: state})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h VenueHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "venue id is required"})
		return
	}
	result, err := queries.Ask[catalogapp.GetVenueQuery, dto.VenueDetail](c.Request.Context(), h.Queries, catalogapp.GetVenueQuery{VenueID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func queryStateFromRequest(c *gin.Context) domainvenue.QueryState {
	state := domainvenue.NewQueryState()
	state.Query = strings.TrimSpace(c.Query("q"))
	state.Page = parseInt(c.Query("page"), 1)
	state.PageSize = parseInt(c.Query("pageSize"), domainvenue.DefaultPageSize)
	state.Guests = parseInt(c.Query("guests"), 1)
	if sort := c.Query("sort"); sort != "" {
		state.Sort = domainvenue.SortField(sort)
	}
	if order := c.Query("order"); order != "" {
		state.Order = domainvenue.SortOrder(order)
	}
	state.Amenities = domainvenue.Amenities{
		Wifi:      boolQuery(c, "wifi"),
		Parking:   boolQuery(c, "parking"),
		Breakfast: boolQuery(c, "breakfast"),
		Pets:      boolQuery(c, "pets"),
	}
	return state.Normalized()
}

func boolQuery(c *gin.Context, key string) bool {
	return strings.EqualFold(c.Query(key), "true")
}

func parseInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

var _ VenueHTTP = VenueHandler{}
