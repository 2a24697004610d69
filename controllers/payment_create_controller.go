package controllers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartlink-edu/campus-payments/middleware"
	"github.com/smartlink-edu/campus-payments/models"
	"github.com/smartlink-edu/campus-payments/services"
	"github.com/smartlink-edu/campus-payments/utils"
)

// createOrder registers a Razorpay order and persists the matching pending
// payment record. The record is only written after the gateway call succeeds,
// so a gateway failure leaves nothing behind.
func (h *RelayHandler) createOrder(c *gin.Context, req *relayRequest) {
	utils.LogInfo("createOrder called for student %q", req.StudentName)

	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		utils.LogError("Rejected create_order with amount %v", req.Amount)
		writeError(c, utils.ValidationError("Amount must be a positive number", nil))
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	// Razorpay expects the amount in paise, rounded half-up from rupees.
	amountPaise := int64(math.Round(req.Amount * 100))

	receipt := req.Receipt
	if receipt == "" {
		receipt = "receipt_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	order, err := h.gateway.CreateOrder(amountPaise, currency, receipt)
	if err != nil {
		utils.LogError("Failed to create Razorpay order (receipt %s): %v", receipt, err)
		writeError(c, err)
		return
	}
	orderID := fmt.Sprintf("%v", order["id"])
	utils.LogDebug("Created Razorpay order %s for %d paise", orderID, amountPaise)

	// Anonymous callers get a generated id; authenticated ones carry their
	// token identity.
	userID := uuid.NewString()
	if v, ok := c.Get(middleware.UserIDKey); ok {
		if id, ok := v.(string); ok && id != "" {
			userID = id
		}
	}

	payment := models.Payment{
		UserID:          userID,
		StudentName:     req.StudentName,
		Description:     req.Description,
		Amount:          req.Amount,
		Currency:        currency,
		RazorpayOrderID: orderID,
		FeeItemID:       req.FeeItemID,
		Status:          models.PaymentStatusPending,
	}
	if err := h.store.CreatePayment(&payment); err != nil {
		utils.LogError("Failed to store payment record for order %s: %v", orderID, err)
		writeError(c, utils.StoreError("Failed to store payment record", err))
		return
	}
	utils.LogInfo("Created payment record %s for Razorpay order %s", payment.ID, orderID)

	h.events.PublishPaymentEvent(services.EventPaymentCreated, &payment)

	c.JSON(http.StatusOK, gin.H{
		"order":      order,
		"payment_id": payment.ID,
		"key_id":     h.razorpayKeyID,
	})
}
