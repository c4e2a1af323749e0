// Package invite generates and validates partner invite tokens.
package invite

import (
	"math/rand"
	"regexp"
)

const (
	tokenLength   = 12
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9]{12}$`)

// GenerateToken returns a 12-character alphanumeric token. The source is
// deliberately non-cryptographic: tokens gate a join flow, not a secret,
// and single-use enforcement lives on the transaction row.
func GenerateToken() string {
	buf := make([]byte, tokenLength)
	for i := range buf {
		buf[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(buf)
}

// BuildURL builds the join link the creator shares with their counterparty.
func BuildURL(baseURL, token string) string {
	return baseURL + "/join?token=" + token
}

// ValidTokenFormat reports whether token is exactly 12 alphanumeric
// characters. It says nothing about whether the token exists or is unclaimed.
func ValidTokenFormat(token string) bool {
	return tokenPattern.MatchString(token)
}
