package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartlink-edu/campus-payments/services"
	"github.com/smartlink-edu/campus-payments/store"
	"github.com/smartlink-edu/campus-payments/utils"
)

// Relay actions accepted on the razorpay-payment endpoint.
const (
	ActionCreateOrder   = "create_order"
	ActionVerifyPayment = "verify_payment"
	ActionGetPayments   = "get_payments"
	ActionGetFeeItems   = "get_fee_items"
)

// relayRequest is the tagged request body: an action plus the union of the
// per-action payload fields. Field names follow the legacy edge function so
// the dashboard client keeps working unchanged.
type relayRequest struct {
	Action string `json:"action"`

	// create_order
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Receipt     string  `json:"receipt"`
	StudentName string  `json:"student_name"`
	Description string  `json:"description"`
	FeeItemID   string  `json:"fee_item_id"`

	// verify_payment
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
	PaymentID         string `json:"payment_id"`
}

// RelayHandler serves the payment relay: order creation, signature
// verification and the payment/fee listings the dashboard reads.
type RelayHandler struct {
	store             store.PaymentStore
	gateway           services.OrderGateway
	razorpayKeyID     string
	razorpayKeySecret string
	events            *services.EventPublisher
	mailer            *services.Mailer
}

// NewRelayHandler wires the relay. events and mailer may be nil, which
// disables those side channels.
func NewRelayHandler(st store.PaymentStore, gateway services.OrderGateway, keyID, keySecret string, events *services.EventPublisher, mailer *services.Mailer) *RelayHandler {
	return &RelayHandler{
		store:             st,
		gateway:           gateway,
		razorpayKeyID:     keyID,
		razorpayKeySecret: keySecret,
		events:            events,
		mailer:            mailer,
	}
}

// HandleRelay dispatches on the action tag.
// POST /functions/v1/razorpay-payment
func (h *RelayHandler) HandleRelay(c *gin.Context) {
	var req relayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid relay request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	switch req.Action {
	case ActionCreateOrder:
		h.createOrder(c, &req)
	case ActionVerifyPayment:
		h.verifyPayment(c, &req)
	case ActionGetPayments:
		h.getPayments(c)
	case ActionGetFeeItems:
		h.getFeeItems(c)
	default:
		utils.LogError("Unknown relay action: %q", req.Action)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}

// HandlePreflight answers the CORS preflight with an empty 200. The CORS
// middleware has already attached the allow headers.
func (h *RelayHandler) HandlePreflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// writeError maps an AppError (or anything else) to the relay's flat error
// shape without leaking internals to the client.
func writeError(c *gin.Context, err error) {
	if appErr := utils.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
