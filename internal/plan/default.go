package plan

import (
	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/shopspring/decimal"
)

func spec(name string, low, high int, inc string, cat domain.Category) domain.ExerciseSpec {
	return domain.ExerciseSpec{
		Name:            name,
		RepRangeLow:     low,
		RepRangeHigh:    high,
		WeightIncrement: decimal.RequireFromString(inc),
		Category:        cat,
	}
}

// Default returns the built-in push (A) / pull-and-legs (B) plan.
func Default() *Catalog {
	return &Catalog{
		Days: map[domain.Day][]domain.ExerciseSpec{
			domain.DayA: {
				spec("Incline Press DB/BB", 6, 10, "2.5", domain.CategoryMain),
				spec("Plate-Loaded Press", 8, 10, "2.5", domain.CategoryMain),
				spec("Shoulder Press", 8, 10, "2.5", domain.CategoryMain),
				spec("Single-Arm Cable Lateral Raise", 12, 15, "1.0", domain.CategoryIsolation),
				spec("Fly (Cable/Machine)", 12, 15, "1.0", domain.CategoryIsolation),
				spec("Rope Triceps Pushdown", 12, 15, "1.0", domain.CategoryIsolation),
				spec("Overhead Rope Triceps Extension", 12, 15, "1.0", domain.CategoryIsolation),
				spec("Ab Machine", 15, 15, "1.0", domain.CategoryCore),
			},
			domain.DayB: {
				spec("Close Neutral-Grip Lat Pulldown", 8, 12, "2.5", domain.CategoryMain),
				spec("Close-Grip Cable Row", 8, 12, "2.5", domain.CategoryMain),
				spec("Chest-Supported Machine Row", 10, 12, "2.5", domain.CategoryMain),
				spec("Leg Press", 10, 12, "5.0", domain.CategoryMain),
				spec("Leg Extension", 12, 15, "2.0", domain.CategoryIsolation),
				spec("Lying Leg Curl", 12, 15, "2.0", domain.CategoryIsolation),
				spec("Rope Cable Curl", 10, 12, "1.0", domain.CategoryIsolation),
				spec("DB Hammer Curl", 12, 15, "1.0", domain.CategoryIsolation),
				spec("Cable Face Pull", 12, 15, "0.5", domain.CategoryPrehab),
			},
		},
		SetsByCategory: map[domain.Category]int{
			domain.CategoryMain:      DefaultSetsMain,
			domain.CategoryIsolation: DefaultSetsOther,
			domain.CategoryCore:      DefaultSetsOther,
			domain.CategoryPrehab:    DefaultSetsOther,
		},
	}
}
