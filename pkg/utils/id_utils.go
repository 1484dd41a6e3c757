package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID returns a random record identifier. Records are created on the
// terminal before the durable store ever sees them, so identifiers must be
// generated client-side. The first four characters double as the short
// correlation fragment printed on receipts and embedded in revenue and
// stock-movement rows.
func GenerateID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure is not recoverable in any useful way here
		panic(err)
	}
	return hex.EncodeToString(buf)
}
