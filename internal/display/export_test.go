package display

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitpulse/internal/stats"
)

func sampleReports() []stats.Report {
	return []stats.Report{
		{
			Developer:           "alice",
			Commits:             2,
			CommitPercentage:    66.7,
			FilesChanged:        3,
			Additions:           55,
			Deletions:           10,
			NetLines:            45,
			CodeChurn:           65,
			ImpactRatio:         0.69,
			AvgFilesPerCommit:   1.5,
			AvgLinesPerCommit:   32.5,
			ActiveDays:          1,
			ActiveWeeks:         1,
			CommitsPerActiveDay: 2,
			PeakHour:            10,
			MostActiveWeekday:   time.Tuesday,
			LongestStreak:       1,
		},
		{
			Developer:        "bob",
			Commits:          1,
			CommitPercentage: 33.3,
			FilesChanged:     1,
			Additions:        20,
			Deletions:        20,
			CodeChurn:        40,
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleReports(), 3))

	var summary struct {
		TotalCommits int `json:"total_commits"`
		Developers   []struct {
			Developer         string  `json:"developer"`
			Commits           int     `json:"commits"`
			NetLines          int     `json:"net_lines"`
			PeakHour          int     `json:"peak_hour"`
			MostActiveWeekday string  `json:"most_active_weekday"`
			ImpactRatio       float64 `json:"impact_ratio"`
		} `json:"developers"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &summary))

	assert.Equal(t, 3, summary.TotalCommits)
	require.Len(t, summary.Developers, 2)
	assert.Equal(t, "alice", summary.Developers[0].Developer)
	assert.Equal(t, 45, summary.Developers[0].NetLines)
	assert.Equal(t, 10, summary.Developers[0].PeakHour)
	assert.Equal(t, "Tuesday", summary.Developers[0].MostActiveWeekday)
	assert.Equal(t, 0.0, summary.Developers[1].ImpactRatio)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSV(&buf, sampleReports()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two developers

	assert.Equal(t, "developer", rows[0][0])
	assert.Equal(t, "alice", rows[1][0])
	assert.Equal(t, "2", rows[1][1])
	assert.Equal(t, "bob", rows[2][0])
	assert.Len(t, rows[1], len(rows[0]))
}

func TestRenderEmptyFormatDefaultsToText(t *testing.T) {
	// Config validation rejects unknown formats before Render; an unset
	// format renders as text without error.
	var buf bytes.Buffer
	assert.NoError(t, Render(&buf, nil, 0, ""))
}
