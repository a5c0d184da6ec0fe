package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderID produces a human-readable order identifier of the form
// ORD-YYYYMMDD-HHMMSS-XX, where XX is a random base-36 suffix that
// disambiguates same-second orders. Collisions are possible; the unique index
// on orders.orderId backstops them and the insert surfaces a ConflictError.
func NewOrderID(now time.Time) string {
	var b [2]byte
	_, _ = rand.Read(b[:])

	return fmt.Sprintf("ORD-%s-%c%c",
		now.Format("20060102-150405"),
		orderIDAlphabet[int(b[0])%len(orderIDAlphabet)],
		orderIDAlphabet[int(b[1])%len(orderIDAlphabet)],
	)
}
