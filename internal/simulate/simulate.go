// Package simulate produces Monte Carlo trajectories of cumulative monthly
// sales and scores them against a target amount.
//
// A trajectory walks day by day from a starting date to the end of that
// calendar month, drawing each day's sales from a normal distribution and
// accumulating. Weekend days (Saturday and Sunday) optionally scale the mean
// by a multiplier. Runs are independent, so iterations fan out across a
// bounded worker pool with per-worker random state.
package simulate

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"
)

// Trajectory is one simulated run's cumulative sales, one value per day.
// The first element is always 0 (nothing sold before day one); the last is
// the month's total.
type Trajectory []float64

// Final returns the trajectory's last cumulative value.
func (tr Trajectory) Final() float64 {
	return tr[len(tr)-1]
}

// Batch holds all trajectories produced by one Run call, along with the
// parameters they share.
type Batch struct {
	Params       Params
	Trajectories []Trajectory
}

// Params configures a simulation run.
type Params struct {
	// Mean is the mean of daily sales.
	Mean float64

	// StdDev is the standard deviation of daily sales. Must be >= 0.
	StdDev float64

	// Start is the first simulated day. The run covers Start through the
	// end of Start's calendar month.
	Start time.Time

	// Iterations is the number of independent trajectories to produce.
	Iterations int

	// WeekendMultiplier scales the mean on Saturdays and Sundays.
	// 1 means no weekend effect, 0.5 halves the mean, 1.5 raises it 50%.
	WeekendMultiplier float64

	// Seed seeds the random source. 0 draws a seed from the wall clock.
	// For a fixed seed and worker count, results are deterministic.
	Seed int64

	// Workers bounds the worker pool. <= 0 uses runtime.NumCPU();
	// 1 runs iterations sequentially.
	Workers int
}

func (p Params) validate() error {
	if p.Start.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if p.Iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", p.Iterations)
	}
	if p.StdDev < 0 {
		return fmt.Errorf("standard deviation must be non-negative, got %g", p.StdDev)
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"mean", p.Mean},
		{"stddev", p.StdDev},
		{"weekend multiplier", p.WeekendMultiplier},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%s must be finite, got %g", v.name, v.value)
		}
	}
	return nil
}

// DaysRemaining returns the number of simulated days: Start through the last
// day of Start's month, inclusive. Each trajectory has DaysRemaining()+1
// elements, counting the leading 0.
func (p Params) DaysRemaining() int {
	days := 0
	for d := p.Start; sameMonth(d, p.Start); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// Run executes the Monte Carlo simulation and returns one trajectory per
// iteration. It is a pure function of the parameters and the seed: no global
// random state is touched.
func Run(params Params) (*Batch, error) {
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation parameters: %w", err)
	}

	workers := params.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > params.Iterations {
		workers = params.Iterations
	}

	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	trajectories := make([]Trajectory, params.Iterations)

	// Each worker owns a contiguous slice of the iteration range and its own
	// rand.Rand, so no locking and no cross-run state.
	per := params.Iterations / workers
	extra := params.Iterations % workers

	var wg sync.WaitGroup
	start := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < extra {
			count++
		}
		lo, hi := start, start+count
		start = hi

		wg.Add(1)
		go func(workerID, lo, hi int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(workerID)))
			for i := lo; i < hi; i++ {
				trajectories[i] = simulateMonth(rng, params)
			}
		}(w, lo, hi)
	}
	wg.Wait()

	return &Batch{Params: params, Trajectories: trajectories}, nil
}

// simulateMonth produces a single cumulative trajectory from params.Start to
// the end of that month.
func simulateMonth(rng *rand.Rand, params Params) Trajectory {
	traj := make(Trajectory, 0, params.DaysRemaining()+1)
	traj = append(traj, 0)

	cumulative := 0.0
	for d := params.Start; sameMonth(d, params.Start); d = d.AddDate(0, 0, 1) {
		mean := params.Mean
		if isWeekend(d) {
			mean *= params.WeekendMultiplier
		}
		cumulative += rng.NormFloat64()*params.StdDev + mean
		traj = append(traj, cumulative)
	}
	return traj
}

// isWeekend reports whether d falls on a Saturday or Sunday. This is the
// documented weekend convention for the multiplier.
func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func sameMonth(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Year() == b.Year()
}
