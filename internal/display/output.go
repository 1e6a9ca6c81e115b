package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gitpulse/internal/stats"
)

var headerColor = color.New(color.Bold, color.FgCyan)

// Render writes the contribution reports in the requested format.
// Formatting only; every number comes straight from the reports.
func Render(w io.Writer, reports []stats.Report, totalCommits int, format string) error {
	switch format {
	case "json":
		return writeJSON(w, reports, totalCommits)
	case "csv":
		return writeCSV(w, reports)
	default:
		renderText(reports, totalCommits)
		return nil
	}
}

func renderText(reports []stats.Report, totalCommits int) {
	fmt.Println()
	headerColor.Println("Developer Contribution Analysis")
	fmt.Println(strings.Repeat("=", 60))

	if len(reports) == 0 {
		color.Yellow("No commits found.")
		return
	}

	for _, r := range reports {
		fmt.Println()
		color.HiYellow("Developer: %s", r.Developer)
		fmt.Println(strings.Repeat("-", 50))

		fmt.Println("Basic Metrics:")
		fmt.Printf("  %s %d (%.1f%% of all commits)\n", color.WhiteString("Total commits:    "), r.Commits, r.CommitPercentage)
		fmt.Printf("  %s %d\n", color.WhiteString("Files changed:    "), r.FilesChanged)
		fmt.Printf("  %s %d\n", color.WhiteString("Lines added:      "), r.Additions)
		fmt.Printf("  %s %d\n", color.WhiteString("Lines deleted:    "), r.Deletions)
		fmt.Printf("  %s %d\n", color.WhiteString("Net lines:        "), r.NetLines)

		fmt.Println("\nStreak Metrics:")
		fmt.Printf("  %s %d days\n", color.WhiteString("Longest streak:   "), r.LongestStreak)
		fmt.Printf("  %s %d days\n", color.WhiteString("Current streak:   "), r.CurrentStreak)
		fmt.Printf("  %s %d\n", color.WhiteString("Active weeks:     "), r.ActiveWeeks)
		fmt.Printf("  %s %s\n", color.WhiteString("Most active day:  "), r.MostActiveWeekday)

		fmt.Println("\nImpact Metrics:")
		fmt.Printf("  %s %.1f\n", color.WhiteString("Avg files/commit: "), r.AvgFilesPerCommit)
		fmt.Printf("  %s %.1f\n", color.WhiteString("Avg lines/commit: "), r.AvgLinesPerCommit)
		fmt.Printf("  %s %d lines\n", color.WhiteString("Code churn:       "), r.CodeChurn)
		fmt.Printf("  %s %.2f\n", color.WhiteString("Impact ratio:     "), r.ImpactRatio)

		fmt.Println("\nActivity Metrics:")
		fmt.Printf("  %s %d\n", color.WhiteString("Active days:      "), r.ActiveDays)
		fmt.Printf("  %s %.1f\n", color.WhiteString("Commits/day:      "), r.CommitsPerActiveDay)
		fmt.Printf("  %s %02d:00\n", color.WhiteString("Peak commit hour: "), r.PeakHour)
	}

	fmt.Println()
	color.HiCyan("Total commits: %d across %d developers", totalCommits, len(reports))
}
