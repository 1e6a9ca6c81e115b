package stats

import (
	"sort"
	"time"
)

// calcStreaks computes the longest and current daily commit streaks
// from a set of active-day keys. A streak is a run of consecutive
// calendar days with at least one commit. The current streak is zero
// unless the most recent active day is today or yesterday relative to
// the supplied reference time.
func calcStreaks(days map[string]struct{}, now time.Time) (longest, current int) {
	if len(days) == 0 {
		return 0, 0
	}

	dates := make([]time.Time, 0, len(days))
	for day := range days {
		d, err := time.Parse(dateLayout, day)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0, 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest = 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}

	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	last := dates[len(dates)-1].Format(dateLayout)
	if last == today || last == yesterday {
		current = 1
		for i := len(dates) - 2; i >= 0; i-- {
			if dates[i+1].Sub(dates[i]) != 24*time.Hour {
				break
			}
			current++
		}
	}
	return longest, current
}
