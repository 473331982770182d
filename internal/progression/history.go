package progression

import (
	"sort"
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
)

// RecentUnits groups the log's records for (day, exercise) by calendar date
// and returns at most n units, most recent first. n <= 0 returns all units.
func RecentUnits(log []domain.SetRecord, day domain.Day, exercise string, n int) []domain.Unit {
	byDate := make(map[time.Time][]domain.SetRecord)
	for _, r := range log {
		if r.Day != day || r.Exercise != exercise {
			continue
		}
		d := domain.CalendarDate(r.Date)
		byDate[d] = append(byDate[d], r)
	}

	dates := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	if n > 0 && len(dates) > n {
		dates = dates[:n]
	}

	units := make([]domain.Unit, 0, len(dates))
	for _, d := range dates {
		sets := byDate[d]
		sort.SliceStable(sets, func(i, j int) bool { return sets[i].SetNumber < sets[j].SetNumber })
		units = append(units, domain.Unit{Day: day, Exercise: exercise, Date: d, Sets: sets})
	}
	return units
}

// LastUnit returns the most recent unit for (day, exercise).
func LastUnit(log []domain.SetRecord, day domain.Day, exercise string) (domain.Unit, bool) {
	units := RecentUnits(log, day, exercise, 1)
	if len(units) == 0 {
		return domain.Unit{}, false
	}
	return units[0], true
}
