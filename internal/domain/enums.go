package domain

import (
	"fmt"
	"strings"
)

// Day identifies a training day of the two-day split.
type Day string

const (
	DayA Day = "A"
	DayB Day = "B"
)

// Days lists the training days in display order.
var Days = []Day{DayA, DayB}

func (d Day) Valid() bool {
	return d == DayA || d == DayB
}

func (d Day) String() string {
	return string(d)
}

// ParseDay accepts "A"/"B" in any case.
func ParseDay(s string) (Day, error) {
	d := Day(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("invalid training day %q (expected A or B)", s)
	}
	return d, nil
}

// Category determines how many working sets an exercise gets.
type Category string

const (
	CategoryMain      Category = "main"
	CategoryIsolation Category = "isolation"
	CategoryCore      Category = "core"
	CategoryPrehab    Category = "prehab"
)

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[Category]bool{
	CategoryMain: true, CategoryIsolation: true, CategoryCore: true, CategoryPrehab: true,
}

// ParseCategory accepts the canonical names plus the short "iso" alias.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "iso" {
		c = CategoryIsolation
	}
	if !ValidCategories[c] {
		return "", fmt.Errorf("invalid category %q", s)
	}
	return c, nil
}

// Mode tags which kind of progression the next session should attempt.
type Mode string

const (
	ModeStart     Mode = "start"
	ModeAddWeight Mode = "add_weight"
	ModeAddRep    Mode = "add_rep"
)

// Rule names the precedence branch that produced a recommendation.
type Rule string

const (
	RuleNoHistory    Rule = "no_history"
	RuleTopOfRange   Rule = "top_of_range"
	RuleRPECeiling   Rule = "rpe_ceiling"
	RuleBelowRange   Rule = "below_range"
	RuleNearTop      Rule = "near_top"
	RuleKeepBuilding Rule = "keep_building"
)
