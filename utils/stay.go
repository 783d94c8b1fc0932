package utils

import (
	"math"
	"time"
)

// Nights is the whole-night count between check-in and check-out, rounded up.
// May be zero or negative for inverted ranges; callers clamp.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// StayTotal prices a stay at nights × nightly price, zero when the range
// yields no positive night count.
func StayTotal(checkIn, checkOut time.Time, price float64) float64 {
	n := Nights(checkIn, checkOut)
	if n <= 0 {
		return 0
	}
	return float64(n) * price
}
