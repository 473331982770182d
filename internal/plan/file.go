package plan

import (
	"fmt"
	"os"
	"sort"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File is the on-disk plan format. JSON files parse too, since JSON is YAML.
type File struct {
	Sets map[string]int            `yaml:"sets,omitempty"`
	Days map[string][]ExerciseFile `yaml:"days"`
}

// ExerciseFile is one exercise entry in a plan file.
type ExerciseFile struct {
	Name      string `yaml:"name"`
	RepLow    int    `yaml:"rep_low"`
	RepHigh   int    `yaml:"rep_high"`
	Increment string `yaml:"increment"`
	Category  string `yaml:"category"`
}

// Load reads, validates and converts a plan file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	return Parse(data)
}

// Parse converts plan file contents into a Catalog.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing plan file: %w", err)
	}
	if errs := Validate(&f); len(errs) > 0 {
		return nil, fmt.Errorf("invalid plan: %w", errs[0])
	}
	return f.Catalog()
}

// Validate checks the plan file and returns every problem found.
func Validate(f *File) []error {
	var errs []error

	if len(f.Days) == 0 {
		errs = append(errs, fmt.Errorf("days: at least one training day is required"))
	}

	for _, key := range sortedKeys(f.Days) {
		day, err := domain.ParseDay(key)
		if err != nil {
			errs = append(errs, fmt.Errorf("days.%s: %w", key, err))
			continue
		}
		seen := make(map[string]bool)
		for i, ex := range f.Days[key] {
			prefix := fmt.Sprintf("days.%s[%d]", day, i)
			if seen[ex.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate exercise %q", prefix, ex.Name))
			}
			seen[ex.Name] = true

			spec, err := ex.spec()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
				continue
			}
			if err := spec.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
			}
		}
	}

	for _, key := range sortedKeys(f.Sets) {
		if _, err := domain.ParseCategory(key); err != nil {
			errs = append(errs, fmt.Errorf("sets.%s: %w", key, err))
			continue
		}
		if f.Sets[key] <= 0 {
			errs = append(errs, fmt.Errorf("sets.%s: must be positive, got %d", key, f.Sets[key]))
		}
	}

	return errs
}

// Catalog converts a validated plan file.
func (f *File) Catalog() (*Catalog, error) {
	c := &Catalog{
		Days:           make(map[domain.Day][]domain.ExerciseSpec),
		SetsByCategory: make(map[domain.Category]int),
	}
	for key, exercises := range f.Days {
		day, err := domain.ParseDay(key)
		if err != nil {
			return nil, err
		}
		for _, ex := range exercises {
			spec, err := ex.spec()
			if err != nil {
				return nil, fmt.Errorf("exercise %q: %w", ex.Name, err)
			}
			c.Days[day] = append(c.Days[day], spec)
		}
	}
	for key, n := range f.Sets {
		cat, err := domain.ParseCategory(key)
		if err != nil {
			return nil, err
		}
		c.SetsByCategory[cat] = n
	}
	return c, nil
}

// ToFile is the inverse of Catalog, used to print the active plan.
func (c *Catalog) ToFile() *File {
	f := &File{
		Sets: make(map[string]int),
		Days: make(map[string][]ExerciseFile),
	}
	for cat, n := range c.SetsByCategory {
		f.Sets[string(cat)] = n
	}
	for _, e := range c.AllEntries() {
		f.Days[string(e.Day)] = append(f.Days[string(e.Day)], ExerciseFile{
			Name:      e.Spec.Name,
			RepLow:    e.Spec.RepRangeLow,
			RepHigh:   e.Spec.RepRangeHigh,
			Increment: e.Spec.WeightIncrement.String(),
			Category:  string(e.Spec.Category),
		})
	}
	return f
}

// Marshal renders the catalog in the plan file format.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(c.ToFile())
}

func (ex ExerciseFile) spec() (domain.ExerciseSpec, error) {
	cat, err := domain.ParseCategory(ex.Category)
	if err != nil {
		return domain.ExerciseSpec{}, err
	}
	inc, err := decimal.NewFromString(ex.Increment)
	if err != nil {
		return domain.ExerciseSpec{}, fmt.Errorf("invalid increment %q", ex.Increment)
	}
	return domain.ExerciseSpec{
		Name:            ex.Name,
		RepRangeLow:     ex.RepLow,
		RepRangeHigh:    ex.RepHigh,
		WeightIncrement: inc,
		Category:        cat,
	}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
