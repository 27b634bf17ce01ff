package handlers

import (
	"net/http"

	"meditrip/models"
	"meditrip/utils"

	"github.com/gin-gonic/gin"
)

// ProcessPaymentHandler charges the order total and confirms the order.
// POST /api/bookings/payment
func (h *HandlerBundle) ProcessPaymentHandler(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.UserID == "" {
		req.UserID = c.GetString("userID")
	}

	invoice, err := h.BookingSvc.ProcessPayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}
