// Package plan holds the training plan catalog: which exercises belong to
// each training day, their rep bands, load steps and set targets.
package plan

import (
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultSetsMain  = 3
	DefaultSetsOther = 2
)

// DefaultFallback coaches exercises that are neither in the catalog nor
// covered by a caller-supplied fallback spec.
var DefaultFallback = domain.ExerciseSpec{
	Name:            "",
	RepRangeLow:     8,
	RepRangeHigh:    12,
	WeightIncrement: decimal.RequireFromString("2.5"),
	Category:        domain.CategoryMain,
}

// Catalog is the caller-supplied plan table.
type Catalog struct {
	Days           map[domain.Day][]domain.ExerciseSpec
	SetsByCategory map[domain.Category]int
}

// Entry is one exercise together with the day it is planned on.
type Entry struct {
	Day  domain.Day
	Spec domain.ExerciseSpec
}

// Exercises returns the day's exercises in display order.
func (c *Catalog) Exercises(day domain.Day) []domain.ExerciseSpec {
	if c == nil {
		return nil
	}
	return c.Days[day]
}

// AllEntries walks both training days in order.
func (c *Catalog) AllEntries() []Entry {
	var entries []Entry
	for _, day := range domain.Days {
		for _, spec := range c.Exercises(day) {
			entries = append(entries, Entry{Day: day, Spec: spec})
		}
	}
	return entries
}

// Lookup finds an exercise by exact name within a day.
func (c *Catalog) Lookup(day domain.Day, name string) (domain.ExerciseSpec, bool) {
	for _, spec := range c.Exercises(day) {
		if spec.Name == name {
			return spec, true
		}
	}
	return domain.ExerciseSpec{}, false
}

// Resolve returns the catalog spec for name, else fallback, else DefaultFallback.
// The returned spec always carries the queried name.
func (c *Catalog) Resolve(day domain.Day, name string, fallback *domain.ExerciseSpec) domain.ExerciseSpec {
	if spec, ok := c.Lookup(day, name); ok {
		return spec
	}
	spec := DefaultFallback
	if fallback != nil {
		spec = *fallback
	}
	spec.Name = name
	return spec
}

// SetsTarget is the number of working sets for a category.
func (c *Catalog) SetsTarget(category domain.Category) int {
	if c != nil {
		if n, ok := c.SetsByCategory[category]; ok && n > 0 {
			return n
		}
	}
	if category == domain.CategoryMain {
		return DefaultSetsMain
	}
	return DefaultSetsOther
}
