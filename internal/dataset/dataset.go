// Package dataset generates synthetic daily sales data and persists it as
// CSV, Arrow IPC, or SQLite. Samples come from a normal distribution and are
// clamped at zero; negative sales do not make sense.
package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Record is one day of generated sales.
type Record struct {
	Date    time.Time
	Weekday time.Weekday
	Sales   float64
}

// Generate produces one Record per day starting at start, with sales drawn
// from N(mean, stddev) and clamped to >= 0. Dates increase strictly by one
// day. A zero seed draws from the wall clock.
func Generate(start time.Time, days int, mean, stddev float64, seed int64) ([]Record, error) {
	if start.IsZero() {
		return nil, fmt.Errorf("start date is required")
	}
	if days <= 0 {
		return nil, fmt.Errorf("days must be positive, got %d", days)
	}
	if stddev < 0 {
		return nil, fmt.Errorf("standard deviation must be non-negative, got %g", stddev)
	}
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(stddev) || math.IsInf(stddev, 0) {
		return nil, fmt.Errorf("mean and standard deviation must be finite")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	records := make([]Record, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		sales := rng.NormFloat64()*stddev + mean
		if sales < 0 {
			sales = 0
		}
		records[i] = Record{Date: date, Weekday: date.Weekday(), Sales: sales}
	}
	return records, nil
}
