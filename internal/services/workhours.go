package services

import (
	"math"
	"time"
)

const clockLayout = "15:04"

// ComputeWorkingHours derives elapsed hours between two same-day wall-clock
// times, rounded to two decimals. A check-out earlier than the check-in
// yields a negative figure rather than an error; the calculator does not
// validate ordering. Unparseable input yields nil so the surrounding write
// can still proceed without an hours figure.
func ComputeWorkingHours(checkIn, checkOut string) *float64 {
	in, err := time.Parse(clockLayout, checkIn)
	if err != nil {
		return nil
	}
	out, err := time.Parse(clockLayout, checkOut)
	if err != nil {
		return nil
	}

	hours := round2(out.Sub(in).Hours())
	return &hours
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
