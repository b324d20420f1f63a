// README: Optional AI ride-recommendation handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DHARAV-9/EzySafar/internal/ai"
)

type AssistHandler struct {
	advisor ai.Advisor
}

// NewAssistHandler accepts a nil advisor; the endpoint then reports itself
// disabled.
func NewAssistHandler(advisor ai.Advisor) *AssistHandler {
	return &AssistHandler{advisor: advisor}
}

type recommendReq struct {
	Pickup  string            `json:"pickup"`
	Dropoff string            `json:"dropoff"`
	Quotes  []ai.QuoteSummary `json:"quotes"`
}

func (h *AssistHandler) Recommend(c *gin.Context) {
	if h.advisor == nil {
		writeError(c, http.StatusServiceUnavailable, "assistant disabled")
		return
	}
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Pickup == "" || req.Dropoff == "" || len(req.Quotes) == 0 {
		writeError(c, http.StatusBadRequest, "pickup, dropoff, and quotes are required")
		return
	}

	advice, err := h.advisor.RecommendRide(c.Request.Context(), req.Pickup, req.Dropoff, req.Quotes)
	if err != nil {
		writeError(c, http.StatusBadGateway, "assistant unavailable, please try again")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"recommendedType": advice.RecommendedType,
		"reason":          advice.Reason,
	})
}
