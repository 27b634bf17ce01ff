package handlers

import (
	"net/http"

	"meditrip/services/booking"
	"meditrip/utils"

	"github.com/gin-gonic/gin"
)

type orderRequest struct {
	OrderID string `json:"orderId"`
}

type fixOrderRequest struct {
	OrderID       string `json:"orderId"`
	AddMedicalFee bool   `json:"addMedicalFee"`
}

// FixReturnFlightHandler reconciles the return flight's connecting segments.
// POST /api/bookings/fix-return-flight
func (h *HandlerBundle) FixReturnFlightHandler(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.BookingSvc.FixReturnFlight(c.Request.Context(), req.OrderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// FixOrderHandler repairs the hotel window and optionally the missing
// consultation fee.
// POST /api/bookings/fix-order
func (h *HandlerBundle) FixOrderHandler(c *gin.Context) {
	var req fixOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.BookingSvc.FixOrder(c.Request.Context(), req.OrderID, req.AddMedicalFee)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// VerifyFlightsHandler runs the read-only flight verification.
// POST /api/bookings/verify-flights
func (h *HandlerBundle) VerifyFlightsHandler(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.BookingSvc.VerifyFlights(c.Request.Context(), req.OrderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

// GetItineraryHandler lists an order's itinerary items sorted by start date.
// GET /api/bookings/itinerary?orderId=
func (h *HandlerBundle) GetItineraryHandler(c *gin.Context) {
	items, err := h.BookingSvc.GetItinerary(c.Request.Context(), c.Query("orderId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "itinerary": items})
}

// ConfirmReservationHandler records a provider booking confirmation.
// POST /api/bookings/reservations
func (h *HandlerBundle) ConfirmReservationHandler(c *gin.Context) {
	var req booking.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	reservation, err := h.BookingSvc.ConfirmReservation(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "reservation": reservation})
}

// GetReservationsHandler lists the provider confirmations of an order.
// GET /api/bookings/reservations?orderId=
func (h *HandlerBundle) GetReservationsHandler(c *gin.Context) {
	reservations, err := h.BookingSvc.ListReservations(c.Request.Context(), c.Query("orderId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}
