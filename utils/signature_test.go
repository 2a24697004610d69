package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRazorpaySignatureMatchesReferenceAlgorithm(t *testing.T) {
	secret := "test_secret"
	orderID := "order_IluGWxBm9U8zJ8"
	paymentID := "pay_IluGWxBm9U8zJ8"

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(h.Sum(nil))

	assert.Equal(t, expected, RazorpaySignature(orderID, paymentID, secret))
	assert.True(t, VerifyRazorpaySignature(orderID, paymentID, expected, secret))
}

func TestVerifyRazorpaySignatureRejectsMutations(t *testing.T) {
	secret := "test_secret"
	valid := RazorpaySignature("order_abc", "pay_def", secret)

	// Flip a single bit in every byte position of the hex signature.
	raw, err := hex.DecodeString(valid)
	require.NoError(t, err)
	for i := range raw {
		mutated := make([]byte, len(raw))
		copy(mutated, raw)
		mutated[i] ^= 0x01
		assert.False(t, VerifyRazorpaySignature("order_abc", "pay_def", hex.EncodeToString(mutated), secret),
			"mutation at byte %d should not verify", i)
	}
}

func TestVerifyRazorpaySignatureRejectsWrongInputs(t *testing.T) {
	secret := "test_secret"
	valid := RazorpaySignature("order_abc", "pay_def", secret)

	assert.False(t, VerifyRazorpaySignature("order_abc", "pay_other", valid, secret))
	assert.False(t, VerifyRazorpaySignature("order_other", "pay_def", valid, secret))
	assert.False(t, VerifyRazorpaySignature("order_abc", "pay_def", valid, "other_secret"))
	assert.False(t, VerifyRazorpaySignature("order_abc", "pay_def", "", secret))
}
