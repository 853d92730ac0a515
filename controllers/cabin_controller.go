package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"cabin-backend/middleware"
	"cabin-backend/models"
	"cabin-backend/services"
	"cabin-backend/utils"
)

// CabinPayload is the inventory write shape shared by create and update.
type CabinPayload struct {
	Name          string          `json:"name" binding:"required"`
	PricePerNight decimal.Decimal `json:"pricePerNight" binding:"required"`
	MaxGuests     int             `json:"maxGuests" binding:"required"`
	Amenities     []string        `json:"amenities"`
}

type CabinController struct {
	CabinSvc *services.CabinService
}

func NewCabinController(svc *services.CabinService) *CabinController {
	return &CabinController{CabinSvc: svc}
}

func (p CabinPayload) toModel() (*models.Cabin, error) {
	cabin := &models.Cabin{
		Name:          p.Name,
		PricePerNight: p.PricePerNight,
		MaxGuests:     p.MaxGuests,
	}
	if len(p.Amenities) > 0 {
		raw, err := json.Marshal(p.Amenities)
		if err != nil {
			return nil, err
		}
		cabin.Amenities = datatypes.JSON(raw)
	}
	return cabin, nil
}

// ListCabins handles GET /api/cabins, the active inventory.
func (cc *CabinController) ListCabins(c *gin.Context) {
	cabins, err := cc.CabinSvc.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cabins)
}

// GetCabin handles GET /api/cabins/:id.
func (cc *CabinController) GetCabin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid cabin id")
		return
	}
	cabin, err := cc.CabinSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cabin)
}

// CreateCabin handles POST /api/cabins.
func (cc *CabinController) CreateCabin(c *gin.Context) {
	var payload CabinPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	cabin, err := payload.toModel()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid amenities: "+err.Error())
		return
	}
	if err := cc.CabinSvc.Create(c.Request.Context(), middleware.SessionFrom(c), cabin); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, cabin)
}

// UpdateCabin handles PUT /api/cabins/:id.
func (cc *CabinController) UpdateCabin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid cabin id")
		return
	}
	var payload CabinPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	cabin, err := payload.toModel()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid amenities: "+err.Error())
		return
	}
	cabin.ID = id
	if err := cc.CabinSvc.Update(c.Request.Context(), middleware.SessionFrom(c), cabin); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, cabin)
}

// DeactivateCabin handles DELETE /api/cabins/:id. The cabin stays in the
// database with its booking history; it just leaves the booking screens.
func (cc *CabinController) DeactivateCabin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid cabin id")
		return
	}
	if err := cc.CabinSvc.Deactivate(c.Request.Context(), middleware.SessionFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deactivated": id})
}
