package utils

import (
	"math/rand"
	"strings"
)

const idSuffixLength = 8

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewTournamentID builds the storage key for a tournament: the sanitized
// name followed by an 8 character random alphanumeric suffix.
func NewTournamentID(name string) string {
	return SanitizeName(name) + "-" + randomSuffix(idSuffixLength)
}

// SanitizeName collapses whitespace runs in a trimmed name to underscores.
func SanitizeName(name string) string {
	return strings.Join(strings.Fields(strings.TrimSpace(name)), "_")
}

func randomSuffix(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}
