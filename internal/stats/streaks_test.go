package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func daySet(days ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

func TestCalcStreaks(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

	testCases := []struct {
		name            string
		days            []string
		expectedLongest int
		expectedCurrent int
	}{
		{
			name: "no days",
		},
		{
			name:            "single old day",
			days:            []string{"2024-01-05"},
			expectedLongest: 1,
			expectedCurrent: 0,
		},
		{
			name:            "run broken by gap",
			days:            []string{"2024-02-01", "2024-02-02", "2024-02-03", "2024-02-07"},
			expectedLongest: 3,
			expectedCurrent: 0,
		},
		{
			name:            "run ending today",
			days:            []string{"2024-03-08", "2024-03-09", "2024-03-10"},
			expectedLongest: 3,
			expectedCurrent: 3,
		},
		{
			name:            "run ending yesterday still counts",
			days:            []string{"2024-03-08", "2024-03-09"},
			expectedLongest: 2,
			expectedCurrent: 2,
		},
		{
			name:            "old run longer than current",
			days:            []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-03-10"},
			expectedLongest: 4,
			expectedCurrent: 1,
		},
		{
			name:            "current streak stops at gap",
			days:            []string{"2024-03-05", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10"},
			expectedLongest: 4,
			expectedCurrent: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			longest, current := calcStreaks(daySet(tc.days...), now)
			assert.Equal(t, tc.expectedLongest, longest, "longest streak")
			assert.Equal(t, tc.expectedCurrent, current, "current streak")
		})
	}
}
