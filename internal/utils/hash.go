package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Used for CSRF token signing: the token body is signed with the server's
// CSRF key and the signature travels with the token.
//
// Parameters:
//
//	data    - string to be hashed
//	hashKey - secret key used for the HMAC operation
//
// Returns:
//
//	string - hex-encoded HMAC-SHA256 digest
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// ValidMAC reports whether signature is a valid hex-encoded HMAC-SHA256
// digest of data under hashKey. Comparison is constant-time.
func ValidMAC(data string, signature string, hashKey string) bool {
	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	return hmac.Equal(sig, hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
