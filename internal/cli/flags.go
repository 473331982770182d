package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/repcoach/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// dayValue is a pflag.Value accepting A or B in any case.
type dayValue struct {
	day *domain.Day
}

var _ pflag.Value = dayValue{}

func (v dayValue) String() string {
	if v.day == nil {
		return ""
	}
	return string(*v.day)
}

func (v dayValue) Set(s string) error {
	d, err := domain.ParseDay(s)
	if err != nil {
		return err
	}
	*v.day = d
	return nil
}

func (dayValue) Type() string { return "day" }

// addDayFlag registers --day/-d. A required flag has no default.
func addDayFlag(cmd *cobra.Command, day *domain.Day, required bool) {
	cmd.Flags().VarP(dayValue{day: day}, "day", "d", "Training day (A or B)")
	_ = cmd.RegisterFlagCompletionFunc("day", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"A", "B"}, cobra.ShellCompDirectiveNoFileComp
	})
	if required {
		_ = cmd.MarkFlagRequired("day")
	}
}

// resolveDate parses an optional YYYY-MM-DD flag value, defaulting to now.
func resolveDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return domain.CalendarDate(now), nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, err
	}
	return d, nil
}

// parseSubstitutions turns repeated "Planned=Substitute" flags into a map.
func parseSubstitutions(values []string) (map[string]string, error) {
	subs := make(map[string]string, len(values))
	for _, v := range values {
		from, to, ok := strings.Cut(v, "=")
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("invalid substitution %q (expected Planned=Substitute)", v)
		}
		subs[from] = to
	}
	return subs, nil
}
