package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// RazorpaySignature computes the checkout signature Razorpay sends back after
// a payment: HMAC-SHA256 over "<order_id>|<payment_id>" keyed with the key
// secret, hex encoded. The "|" separator is part of Razorpay's algorithm.
func RazorpaySignature(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyRazorpaySignature reports whether signature matches the expected
// value for the given order and payment ids. The comparison is constant time
// so the check cannot be probed byte by byte.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	expected := RazorpaySignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
