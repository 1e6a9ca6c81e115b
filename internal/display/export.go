package display

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gitpulse/internal/stats"
)

func writeJSON(w io.Writer, reports []stats.Report, totalCommits int) error {
	summary := jsonSummary{
		TotalCommits: totalCommits,
		Developers:   make([]jsonReport, 0, len(reports)),
	}

	for _, r := range reports {
		summary.Developers = append(summary.Developers, jsonReport{
			Developer:           r.Developer,
			Commits:             r.Commits,
			CommitPercentage:    r.CommitPercentage,
			FilesChanged:        r.FilesChanged,
			Additions:           r.Additions,
			Deletions:           r.Deletions,
			NetLines:            r.NetLines,
			CodeChurn:           r.CodeChurn,
			ImpactRatio:         r.ImpactRatio,
			AvgFilesPerCommit:   r.AvgFilesPerCommit,
			AvgLinesPerCommit:   r.AvgLinesPerCommit,
			ActiveDays:          r.ActiveDays,
			ActiveWeeks:         r.ActiveWeeks,
			CommitsPerActiveDay: r.CommitsPerActiveDay,
			PeakHour:            r.PeakHour,
			MostActiveWeekday:   r.MostActiveWeekday.String(),
			LongestStreak:       r.LongestStreak,
			CurrentStreak:       r.CurrentStreak,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

func writeCSV(w io.Writer, reports []stats.Report) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	headers := []string{
		"developer",
		"commits",
		"commit_percentage",
		"files_changed",
		"additions",
		"deletions",
		"net_lines",
		"code_churn",
		"impact_ratio",
		"avg_files_per_commit",
		"avg_lines_per_commit",
		"active_days",
		"active_weeks",
		"commits_per_active_day",
		"peak_hour",
		"most_active_weekday",
		"longest_streak",
		"current_streak",
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, r := range reports {
		row := []string{
			r.Developer,
			fmt.Sprintf("%d", r.Commits),
			fmt.Sprintf("%.1f", r.CommitPercentage),
			fmt.Sprintf("%d", r.FilesChanged),
			fmt.Sprintf("%d", r.Additions),
			fmt.Sprintf("%d", r.Deletions),
			fmt.Sprintf("%d", r.NetLines),
			fmt.Sprintf("%d", r.CodeChurn),
			fmt.Sprintf("%.2f", r.ImpactRatio),
			fmt.Sprintf("%.1f", r.AvgFilesPerCommit),
			fmt.Sprintf("%.1f", r.AvgLinesPerCommit),
			fmt.Sprintf("%d", r.ActiveDays),
			fmt.Sprintf("%d", r.ActiveWeeks),
			fmt.Sprintf("%.1f", r.CommitsPerActiveDay),
			fmt.Sprintf("%d", r.PeakHour),
			r.MostActiveWeekday.String(),
			fmt.Sprintf("%d", r.LongestStreak),
			fmt.Sprintf("%d", r.CurrentStreak),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
