package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cabin-backend/services"
	"cabin-backend/utils"
)

type GuestController struct {
	Registry *services.GuestRegistry
}

func NewGuestController(registry *services.GuestRegistry) *GuestController {
	return &GuestController{Registry: registry}
}

// ListGuests handles GET /api/guests, the guest directory.
func (gc *GuestController) ListGuests(c *gin.Context) {
	guests, err := gc.Registry.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// GetGuestByPhone handles GET /api/guests/by-phone?phone=...
func (gc *GuestController) GetGuestByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.JSONError(c, http.StatusBadRequest, "phone query parameter is required")
		return
	}

	guest, err := gc.Registry.ByPhone(c.Request.Context(), phone)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "guest not found")
			return
		}
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}
