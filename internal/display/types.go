package display

// JSON output shapes. Field names track the report metrics, not the
// internal accumulator layout.

type jsonReport struct {
	Developer           string  `json:"developer"`
	Commits             int     `json:"commits"`
	CommitPercentage    float64 `json:"commit_percentage"`
	FilesChanged        int     `json:"files_changed"`
	Additions           int     `json:"additions"`
	Deletions           int     `json:"deletions"`
	NetLines            int     `json:"net_lines"`
	CodeChurn           int     `json:"code_churn"`
	ImpactRatio         float64 `json:"impact_ratio"`
	AvgFilesPerCommit   float64 `json:"avg_files_per_commit"`
	AvgLinesPerCommit   float64 `json:"avg_lines_per_commit"`
	ActiveDays          int     `json:"active_days"`
	ActiveWeeks         int     `json:"active_weeks"`
	CommitsPerActiveDay float64 `json:"commits_per_active_day"`
	PeakHour            int     `json:"peak_hour"`
	MostActiveWeekday   string  `json:"most_active_weekday"`
	LongestStreak       int     `json:"longest_streak"`
	CurrentStreak       int     `json:"current_streak"`
}

type jsonSummary struct {
	TotalCommits int          `json:"total_commits"`
	Developers   []jsonReport `json:"developers"`
}
