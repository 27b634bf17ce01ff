package handlers

import (
	"net/http"

	"meditrip/services/booking"
	"meditrip/utils"

	"github.com/gin-gonic/gin"
)

type adjustmentDecisionRequest struct {
	AdjustmentID string `json:"adjustmentId" binding:"required"`
	Action       string `json:"action" binding:"required"`
	Reason       string `json:"reason"`
}

// DecideAdjustmentHandler approves or rejects one pending plan adjustment.
// POST /api/orders/:orderId/approve-adjustment
func (h *HandlerBundle) DecideAdjustmentHandler(c *gin.Context) {
	var req adjustmentDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.BookingSvc.DecideAdjustment(c.Request.Context(), booking.AdjustmentDecision{
		OrderID:      c.Param("orderId"),
		AdjustmentID: req.AdjustmentID,
		Action:       req.Action,
		Reason:       req.Reason,
		UserID:       c.GetString("userID"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

type adjustmentProposalRequest struct {
	Type         string `json:"type" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
	CurrentValue string `json:"currentValue"`
	NewValue     string `json:"newValue"`
}

// ProposeAdjustmentHandler records a plan-change request with a price
// estimate.
// POST /api/orders/:orderId/adjust-plan
func (h *HandlerBundle) ProposeAdjustmentHandler(c *gin.Context) {
	var req adjustmentProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := h.BookingSvc.ProposeAdjustment(c.Request.Context(), booking.AdjustmentProposal{
		OrderID:      c.Param("orderId"),
		UserID:       c.GetString("userID"),
		Type:         req.Type,
		Reason:       req.Reason,
		CurrentValue: req.CurrentValue,
		NewValue:     req.NewValue,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": result})
}
