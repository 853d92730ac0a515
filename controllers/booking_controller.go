package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cabin-backend/middleware"
	"cabin-backend/models"
	"cabin-backend/services"
	"cabin-backend/utils"
)

const dateLayout = "2006-01-02"

// CreateBookingPayload is one booking submission from the UI or API layer.
type CreateBookingPayload struct {
	CabinID     uint   `json:"cabinId" binding:"required"`
	GuestName   string `json:"guestName"`
	GuestPhone  string `json:"guestPhone"`
	GuestEmail  string `json:"guestEmail"`
	CheckIn     string `json:"checkIn" binding:"required"`
	CheckOut    string `json:"checkOut" binding:"required"`
	SelfService bool   `json:"selfService"`
}

// UpdateBookingPayload changes an existing booking's dates.
type UpdateBookingPayload struct {
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

type BookingController struct {
	BookingSvc      *services.BookingService
	AvailabilitySvc *services.AvailabilityService
}

func NewBookingController(bookingSvc *services.BookingService, availabilitySvc *services.AvailabilityService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, AvailabilitySvc: availabilitySvc}
}

func parseDate(raw string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	checkIn, okIn := parseDate(payload.CheckIn)
	checkOut, okOut := parseDate(payload.CheckOut)
	if !okIn || !okOut {
		utils.JSONError(c, http.StatusBadRequest, "dates must be in YYYY-MM-DD format")
		return
	}

	result, err := bc.BookingSvc.Create(c.Request.Context(), middleware.SessionFrom(c), services.CreateBookingRequest{
		CabinID:      payload.CabinID,
		GuestName:    payload.GuestName,
		GuestPhone:   payload.GuestPhone,
		GuestEmail:   payload.GuestEmail,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		SelfService:  payload.SelfService,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, result)
}

// UpdateBooking handles PUT /api/bookings/:id.
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	var payload UpdateBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	checkIn, okIn := parseDate(payload.CheckIn)
	checkOut, okOut := parseDate(payload.CheckOut)
	if !okIn || !okOut {
		utils.JSONError(c, http.StatusBadRequest, "dates must be in YYYY-MM-DD format")
		return
	}

	result, err := bc.BookingSvc.Update(c.Request.Context(), middleware.SessionFrom(c), id, services.UpdateBookingRequest{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}

// CancelBooking handles DELETE /api/bookings/:id, a soft delete.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	if err := bc.BookingSvc.Cancel(c.Request.Context(), middleware.SessionFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": id})
}

// GetBooking handles GET /api/bookings/:id.
func (bc *BookingController) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := bc.BookingSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// ListBookings handles GET /api/bookings?status=active.
func (bc *BookingController) ListBookings(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))
	bookings, err := bc.BookingSvc.List(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// BookingCounts handles GET /api/bookings/counts.
func (bc *BookingController) BookingCounts(c *gin.Context) {
	counts, err := bc.BookingSvc.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, counts)
}

// CheckAvailability handles
// GET /api/cabins/:id/availability?check_in=...&check_out=...&exclude_booking_id=...
func (bc *BookingController) CheckAvailability(c *gin.Context) {
	cabinID, ok := pathID(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid cabin id")
		return
	}

	checkIn, okIn := parseDate(c.Query("check_in"))
	checkOut, okOut := parseDate(c.Query("check_out"))
	if !okIn || !okOut {
		utils.JSONError(c, http.StatusBadRequest, "check_in and check_out must be in YYYY-MM-DD format")
		return
	}

	var excludeID uint
	if raw := c.Query("exclude_booking_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid exclude_booking_id")
			return
		}
		excludeID = uint(parsed)
	}

	result, err := bc.AvailabilitySvc.Check(c.Request.Context(), cabinID, checkIn, checkOut, excludeID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, result)
}
