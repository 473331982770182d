package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit is every set logged for one exercise on one training day on one date.
type Unit struct {
	Day      Day
	Exercise string
	Date     time.Time
	Sets     []SetRecord
}

// MaxWeight is the working weight of the unit. The maximum guards against a
// stray lighter row such as a warm-up.
func (u Unit) MaxWeight() decimal.Decimal {
	max := decimal.Zero
	for i, s := range u.Sets {
		if i == 0 || s.Weight.GreaterThan(max) {
			max = s.Weight
		}
	}
	return max
}

func (u Unit) TotalReps() int {
	total := 0
	for _, s := range u.Sets {
		total += s.Reps
	}
	return total
}

func (u Unit) Reps() []int {
	reps := make([]int, 0, len(u.Sets))
	for _, s := range u.Sets {
		reps = append(reps, s.Reps)
	}
	return reps
}

// RPEs returns the recorded exertion ratings, skipping unrated sets.
func (u Unit) RPEs() []float64 {
	var rpes []float64
	for _, s := range u.Sets {
		if s.RPE > 0 {
			rpes = append(rpes, s.RPE)
		}
	}
	return rpes
}
