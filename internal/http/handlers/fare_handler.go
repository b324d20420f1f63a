// README: Fare handlers: pure estimate and the full compare flow.
package handlers

import (
	"math"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/DHARAV-9/EzySafar/internal/modules/account"
	"github.com/DHARAV-9/EzySafar/internal/modules/fare"
	"github.com/DHARAV-9/EzySafar/internal/modules/geo"
)

type FareHandler struct {
	fares *fare.Service
	geo   *geo.Service
}

func NewFareHandler(fares *fare.Service, geoSvc *geo.Service) *FareHandler {
	return &FareHandler{fares: fares, geo: geoSvc}
}

type estimateReq struct {
	DistanceKm float64 `json:"distanceKm"`
}

func (h *FareHandler) Estimate(c *gin.Context) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.DistanceKm < 0 || math.IsNaN(req.DistanceKm) || math.IsInf(req.DistanceKm, 0) {
		writeError(c, http.StatusBadRequest, "distanceKm must be a non-negative number")
		return
	}
	writeJSON(c, http.StatusOK, h.fares.Estimate(req.DistanceKm))
}

type compareReq struct {
	Pickup  account.Location `json:"pickup"`
	Dropoff account.Location `json:"dropoff"`
}

type bookingLinks struct {
	Uber string `json:"uber"`
	Ola  string `json:"ola"`
}

// Compare resolves the route distance for a pickup/dropoff pair, prices all
// options, and attaches the per-platform deep links the client opens on
// selection.
func (h *FareHandler) Compare(c *gin.Context) {
	var req compareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Pickup.Name == "" || req.Dropoff.Name == "" {
		writeError(c, http.StatusBadRequest, "pickup and dropoff are required")
		return
	}

	km, err := h.geo.DistanceKm(c.Request.Context(), req.Pickup.Coordinates, req.Dropoff.Coordinates)
	if err != nil {
		writeGeoError(c, err)
		return
	}
	result := h.fares.Estimate(km)

	pickup := url.QueryEscape(req.Pickup.Name)
	dropoff := url.QueryEscape(req.Dropoff.Name)
	writeJSON(c, http.StatusOK, gin.H{
		"distanceKm": km,
		"allFares":   result.AllFares,
		"cheapest":   result.Cheapest,
		"bookingLinks": bookingLinks{
			Uber: "https://m.uber.com/ul/?action=setPickup&pickup=" + pickup + "&dropoff=" + dropoff,
			Ola:  "https://book.olacabs.com/?pickup=" + pickup + "&dropoff=" + dropoff,
		},
	})
}
