package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ExerciseSpec is one row of the plan catalog.
type ExerciseSpec struct {
	Name            string
	RepRangeLow     int
	RepRangeHigh    int
	WeightIncrement decimal.Decimal
	Category        Category
}

func (s ExerciseSpec) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if s.RepRangeLow <= 0 {
		errs = append(errs, fmt.Errorf("rep range low must be positive, got %d", s.RepRangeLow))
	}
	if s.RepRangeHigh < s.RepRangeLow {
		errs = append(errs, fmt.Errorf("rep range %d-%d is inverted", s.RepRangeLow, s.RepRangeHigh))
	}
	if !s.WeightIncrement.IsPositive() {
		errs = append(errs, fmt.Errorf("weight increment must be positive, got %s", s.WeightIncrement))
	}
	if !ValidCategories[s.Category] {
		errs = append(errs, fmt.Errorf("invalid category %q", s.Category))
	}
	return errors.Join(errs...)
}
