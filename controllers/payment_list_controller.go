package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartlink-edu/campus-payments/utils"
)

// getPayments returns the payment history, newest first.
func (h *RelayHandler) getPayments(c *gin.Context) {
	payments, err := h.store.ListPayments()
	if err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		writeError(c, utils.StoreError("Failed to fetch payments", err))
		return
	}
	utils.LogDebug("Retrieved %d payment records", len(payments))

	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

// getFeeItems returns outstanding dues ordered by due date.
func (h *RelayHandler) getFeeItems(c *gin.Context) {
	feeItems, err := h.store.ListFeeItems()
	if err != nil {
		utils.LogError("Failed to fetch fee items: %v", err)
		writeError(c, utils.StoreError("Failed to fetch fee items", err))
		return
	}
	utils.LogDebug("Retrieved %d fee items", len(feeItems))

	c.JSON(http.StatusOK, gin.H{"fee_items": feeItems})
}
