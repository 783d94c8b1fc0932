package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewBookingID returns a reference of the form BK<ms-timestamp>-<9 base36 chars>.
// Uniqueness is probabilistic; the unique index on bookings.booking_id is the
// only hard guarantee, and a collision fails the whole request.
func NewBookingID() string {
	var buf [9]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing means the process is in a bad state anyway
		panic(err)
	}
	for i, b := range buf {
		buf[i] = base36[int(b)%len(base36)]
	}
	return fmt.Sprintf("BK%d-%s", time.Now().UnixMilli(), buf[:])
}
