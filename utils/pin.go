package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GeneratePin returns a six-digit code sampled uniformly from
// 100000-999999.
func GeneratePin() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand only fails when the platform source is broken;
		// nothing sensible to do but stop.
		panic(fmt.Sprintf("pin generation: %v", err))
	}
	return fmt.Sprintf("%06d", n.Int64()+100000)
}
