package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const walletSuffixRange = 1000000

// GenerateWalletNumber returns a 10 digit wallet number: the current year
// followed by six random digits.
func GenerateWalletNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(walletSuffixRange))
	if err != nil {
		return "", fmt.Errorf("failed to generate wallet number: %w", err)
	}
	return fmt.Sprintf("%04d%06d", time.Now().Year()%10000, n.Int64()), nil
}
