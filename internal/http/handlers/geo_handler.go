// README: Geo proxy handlers (search, reverse, distance).
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DHARAV-9/EzySafar/internal/modules/geo"
	"github.com/DHARAV-9/EzySafar/internal/types"
)

type GeoHandler struct {
	geo *geo.Service
}

func NewGeoHandler(svc *geo.Service) *GeoHandler {
	return &GeoHandler{geo: svc}
}

func (h *GeoHandler) Search(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	places, err := h.geo.Search(c.Request.Context(), query, limit)
	if err != nil {
		writeGeoError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"results": places})
}

func (h *GeoHandler) Reverse(c *gin.Context) {
	pt, ok := pointFromQuery(c, "lat", "lng")
	if !ok {
		return
	}
	name, err := h.geo.Reverse(c.Request.Context(), pt)
	if err != nil {
		writeGeoError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"displayName": name})
}

func (h *GeoHandler) Distance(c *gin.Context) {
	from, ok := pointFromQuery(c, "from_lat", "from_lng")
	if !ok {
		return
	}
	to, ok := pointFromQuery(c, "to_lat", "to_lng")
	if !ok {
		return
	}
	km, err := h.geo.DistanceKm(c.Request.Context(), from, to)
	if err != nil {
		writeGeoError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"distanceKm": km})
}

func pointFromQuery(c *gin.Context, latKey, lngKey string) (types.Point, bool) {
	lat, latErr := strconv.ParseFloat(c.Query(latKey), 64)
	lng, lngErr := strconv.ParseFloat(c.Query(lngKey), 64)
	if latErr != nil || lngErr != nil {
		writeError(c, http.StatusBadRequest, "invalid coordinates")
		return types.Point{}, false
	}
	return types.Point{Lat: lat, Lng: lng}, true
}
