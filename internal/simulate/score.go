package simulate

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyBatch is returned by Score and Summarize when the batch contains
// no trajectories. An empty batch is a caller bug, never a 0% result.
var ErrEmptyBatch = errors.New("simulation batch is empty")

// Score returns the fraction of trajectories whose final cumulative value
// meets or exceeds target. The result is in [0, 1] and is non-increasing as
// target grows.
func Score(batch *Batch, target float64) (float64, error) {
	if batch == nil || len(batch.Trajectories) == 0 {
		return 0, ErrEmptyBatch
	}

	met := 0
	for _, tr := range batch.Trajectories {
		if tr.Final() >= target {
			met++
		}
	}
	return float64(met) / float64(len(batch.Trajectories)), nil
}

// Summary aggregates the distribution of final monthly totals across a batch.
type Summary struct {
	Iterations int     `json:"iterations"`
	Mean       float64 `json:"mean"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	P5         float64 `json:"p5"`
	P50        float64 `json:"p50"`
	P95        float64 `json:"p95"`
}

// Summarize computes summary statistics over the batch's final totals.
func Summarize(batch *Batch) (Summary, error) {
	if batch == nil || len(batch.Trajectories) == 0 {
		return Summary{}, ErrEmptyBatch
	}

	finals := make([]float64, len(batch.Trajectories))
	sum := 0.0
	for i, tr := range batch.Trajectories {
		finals[i] = tr.Final()
		sum += finals[i]
	}
	sort.Float64s(finals)

	return Summary{
		Iterations: len(finals),
		Mean:       sum / float64(len(finals)),
		Min:        finals[0],
		Max:        finals[len(finals)-1],
		P5:         percentile(finals, 0.05),
		P50:        percentile(finals, 0.50),
		P95:        percentile(finals, 0.95),
	}, nil
}

// percentile returns the p-quantile of sorted values using nearest-rank
// interpolation.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
