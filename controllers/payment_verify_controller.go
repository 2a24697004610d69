package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartlink-edu/campus-payments/models"
	"github.com/smartlink-edu/campus-payments/services"
	"github.com/smartlink-edu/campus-payments/store"
	"github.com/smartlink-edu/campus-payments/utils"
)

// verifyPayment recomputes the checkout signature and settles the payment
// record. A signature mismatch is a reported outcome, not a server error: the
// record moves to failed and the client gets success=false with a 400.
func (h *RelayHandler) verifyPayment(c *gin.Context, req *relayRequest) {
	utils.LogInfo("verifyPayment called for payment record %s", req.PaymentID)

	if req.PaymentID == "" || req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		writeError(c, utils.ValidationError("razorpay_order_id, razorpay_payment_id, razorpay_signature and payment_id are required", nil))
		return
	}

	payment, err := h.store.PaymentByID(req.PaymentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.LogError("Payment record %s not found", req.PaymentID)
			writeError(c, utils.NotFoundError("Payment record not found", nil))
			return
		}
		utils.LogError("Failed to load payment record %s: %v", req.PaymentID, err)
		writeError(c, utils.StoreError("Failed to load payment record", err))
		return
	}

	// Re-verifying an already completed payment with the same provider
	// payment id is a no-op success, so client retries never double-process.
	if payment.Status == models.PaymentStatusCompleted {
		if payment.RazorpayPaymentID == req.RazorpayPaymentID {
			utils.LogInfo("Payment %s already verified, returning no-op success", payment.ID)
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Payment verified successfully",
			})
			return
		}
		utils.LogError("Payment %s already completed with a different provider payment id", payment.ID)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment already processed",
		})
		return
	}

	if !utils.VerifyRazorpaySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, h.razorpayKeySecret) {
		utils.LogError("Signature verification failed for payment %s (order %s)", payment.ID, req.RazorpayOrderID)

		if _, err := h.store.FailPayment(payment.ID); err != nil {
			utils.LogError("Failed to mark payment %s as failed: %v", payment.ID, err)
			writeError(c, utils.StoreError("Failed to update payment status", err))
			return
		}
		payment.Status = models.PaymentStatusFailed
		h.events.PublishPaymentEvent(services.EventPaymentFailed, payment)

		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment verification failed",
		})
		return
	}
	utils.LogDebug("Signature verified for payment %s (order %s)", payment.ID, req.RazorpayOrderID)

	updated, err := h.store.CompletePayment(payment.ID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		utils.LogError("Failed to complete payment %s: %v", payment.ID, err)
		writeError(c, utils.StoreError("Failed to update payment status", err))
		return
	}
	if !updated {
		// Lost the race or the record already reached a terminal state.
		current, err := h.store.PaymentByID(payment.ID)
		if err == nil && current.Status == models.PaymentStatusCompleted && current.RazorpayPaymentID == req.RazorpayPaymentID {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Payment verified successfully",
			})
			return
		}
		utils.LogError("Payment %s is no longer pending, refusing to re-verify", payment.ID)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment already processed",
		})
		return
	}
	utils.LogInfo("Payment %s completed (Razorpay payment %s)", payment.ID, req.RazorpayPaymentID)

	payment.Status = models.PaymentStatusCompleted
	payment.RazorpayPaymentID = req.RazorpayPaymentID
	payment.RazorpaySignature = req.RazorpaySignature

	// The relay is the single writer of payment-derived state: settle the
	// referenced fee item here rather than trusting the UI to do it.
	if payment.FeeItemID != "" {
		if err := h.store.MarkFeeItemPaid(payment.FeeItemID); err != nil {
			utils.LogError("Failed to mark fee item %s paid for payment %s: %v", payment.FeeItemID, payment.ID, err)
		} else {
			utils.LogInfo("Marked fee item %s as paid", payment.FeeItemID)
		}
	}

	h.events.PublishPaymentEvent(services.EventPaymentCompleted, payment)

	if h.mailer != nil {
		go func(p models.Payment) {
			if err := h.mailer.SendPaymentReceived(&p); err != nil {
				utils.LogError("Failed to send payment notification for %s: %v", p.ID, err)
			}
		}(*payment)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified successfully",
	})
}
