package stats

import "time"

// Report is the read-only view of one developer's contribution derived
// at finalize time. CommitPercentage is relative to the project-wide
// commit total, which is why reports only exist after Finalize.
type Report struct {
	Developer    string
	Commits      int
	FilesChanged int
	Additions    int
	Deletions    int

	// Impact
	NetLines          int     // additions - deletions, may be negative
	CodeChurn         int     // additions + deletions
	ImpactRatio       float64 // net / churn; 0 when churn is 0
	CommitPercentage  float64
	AvgFilesPerCommit float64
	AvgLinesPerCommit float64

	// Cadence
	ActiveDays          int
	ActiveWeeks         int
	CommitsPerActiveDay float64
	PeakHour            int // 0-23, smallest hour wins ties
	MostActiveWeekday   time.Weekday
	LongestStreak       int // consecutive active days
	CurrentStreak       int // run ending today or yesterday
}

// report derives the final metrics for one developer. An accumulator
// only exists after at least one commit, so commits >= 1 and
// activeDays >= 1 hold here; churn is the one divisor that can be zero.
func (d *developerStats) report(name string, totalCommits int, now time.Time) Report {
	churn := d.additions + d.deletions
	net := d.additions - d.deletions

	r := Report{
		Developer:         name,
		Commits:           d.commits,
		FilesChanged:      d.filesChanged,
		Additions:         d.additions,
		Deletions:         d.deletions,
		NetLines:          net,
		CodeChurn:         churn,
		CommitPercentage:  float64(d.commits) / float64(totalCommits) * 100,
		AvgFilesPerCommit: float64(d.filesChanged) / float64(d.commits),
		AvgLinesPerCommit: float64(churn) / float64(d.commits),
		ActiveDays:        len(d.activeDays),
		ActiveWeeks:       len(d.activeWeeks),
		PeakHour:          argmax(d.hourHist[:]),
		MostActiveWeekday: time.Weekday(argmax(d.weekdayHist[:])),
	}

	if churn > 0 {
		r.ImpactRatio = float64(net) / float64(churn)
	}
	r.CommitsPerActiveDay = float64(d.commits) / float64(len(d.activeDays))
	r.LongestStreak, r.CurrentStreak = calcStreaks(d.activeDays, now)
	return r
}

// argmax returns the index of the largest count. Ties go to the
// smallest index, which keeps peak-hour and weekday picks reproducible.
func argmax(hist []int) int {
	best := 0
	for i, count := range hist {
		if count > hist[best] {
			best = i
		}
	}
	return best
}
