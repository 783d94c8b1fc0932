package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"two nights", "2024-01-10", "2024-01-12", 2},
		{"one night", "2024-01-10", "2024-01-11", 1},
		{"same day", "2024-01-10", "2024-01-10", 0},
		{"inverted", "2024-01-12", "2024-01-10", -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(date(tt.checkIn), date(tt.checkOut)))
		})
	}
}

func TestNightsRoundsPartialDaysUp(t *testing.T) {
	checkIn := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, Nights(checkIn, checkOut))
}

func TestStayTotal(t *testing.T) {
	assert.Equal(t, 160.0, StayTotal(date("2024-01-10"), date("2024-01-12"), 80))
	assert.Equal(t, 80.0, StayTotal(date("2024-01-10"), date("2024-01-11"), 80))
}

func TestStayTotalClampsToZero(t *testing.T) {
	assert.Equal(t, 0.0, StayTotal(date("2024-01-10"), date("2024-01-10"), 80))
	assert.Equal(t, 0.0, StayTotal(date("2024-01-12"), date("2024-01-10"), 80))
}
