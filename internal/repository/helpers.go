package repository

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/shopspring/decimal"
)

// timestampLayout is fixed width so created_at sorts as text, including sets
// logged within the same second. Stored values are read back with
// time.RFC3339Nano, which also accepts rows written without a fraction.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func parseWeight(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	w, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing weight %q: %w", s, err)
	}
	return w, nil
}

// sortLog orders records the way ListAll promises.
func sortLog(records []domain.SetRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Exercise != b.Exercise {
			return a.Exercise < b.Exercise
		}
		return a.SetNumber < b.SetNumber
	})
}

// sortRecent orders records newest first.
func sortRecent(records []domain.SetRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.SetNumber > b.SetNumber
	})
}

func limitRecords(records []domain.SetRecord, limit int) []domain.SetRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
