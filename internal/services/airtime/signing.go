package airtime

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// CalculateHMAC512 returns the lowercase hex HMAC-SHA-512 of data keyed with
// key. The result is always 128 characters long.
func CalculateHMAC512(data, key string) string {
	mac := hmac.New(sha512.New, []byte(key))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMAC512 reports whether signature is the HMAC-SHA-512 of data under key.
func VerifyHMAC512(data, key, signature string) bool {
	expected := CalculateHMAC512(data, key)
	return hmac.Equal([]byte(expected), []byte(signature))
}
