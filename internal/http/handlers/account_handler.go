// README: Account handlers for register, login, and search-history append.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DHARAV-9/EzySafar/internal/modules/account"
	"github.com/DHARAV-9/EzySafar/internal/types"
)

type AccountHandler struct {
	account *account.Service
}

func NewAccountHandler(svc *account.Service) *AccountHandler {
	return &AccountHandler{account: svc}
}

type registerReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, profile, err := h.account.Register(c.Request.Context(), account.RegisterCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	})
	if err != nil {
		writeAccountError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  id,
		"user":    profile,
	})
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, profile, err := h.account.Login(c.Request.Context(), req.Email, req.Password)
	// Login reports an unknown email as a plain 400, not 404.
	if errors.Is(err, account.ErrNotFound) {
		writeError(c, http.StatusBadRequest, "User not found")
		return
	}
	if err != nil {
		writeAccountError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"userId":  id,
		"user":    profile,
	})
}

type searchHistoryReq struct {
	UserID          string           `json:"userId"`
	PickupLocation  account.Location `json:"pickupLocation"`
	DropoffLocation account.Location `json:"dropoffLocation"`
	SelectedRide    string           `json:"selectedRide"`
	FareAmount      float64          `json:"fareAmount"`
}

func (h *AccountHandler) AppendSearchHistory(c *gin.Context) {
	var req searchHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	history, err := h.account.AppendSearch(c.Request.Context(), account.AppendSearchCommand{
		UserID:          types.ID(req.UserID),
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		SelectedRide:    req.SelectedRide,
		FareAmount:      req.FareAmount,
	})
	if err != nil {
		writeAccountError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{
		"message":       "Search history saved successfully",
		"searchHistory": history,
	})
}
