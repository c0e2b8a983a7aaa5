package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Sign is hex(HMAC-SHA256(secret, orderID + "|" + paymentID)), the gateway's checkout signature.
func Sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidSignature compares in constant time.
func ValidSignature(secret, orderID, paymentID, signature string) bool {
	want := Sign(secret, orderID, paymentID)
	return hmac.Equal([]byte(want), []byte(signature))
}
