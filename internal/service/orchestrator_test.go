package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitpulse/internal/config"
	"gitpulse/internal/identity"
	"gitpulse/internal/models"
	"gitpulse/internal/stats"
)

func TestSplitSlug(t *testing.T) {
	owner, repo, err := splitSlug("torvalds/linux")
	require.NoError(t, err)
	assert.Equal(t, "torvalds", owner)
	assert.Equal(t, "linux", repo)

	for _, bad := range []string{"", "linux", "a/b/c", "/linux", "torvalds/"} {
		_, _, err := splitSlug(bad)
		assert.Error(t, err, "slug %q", bad)
	}
}

func TestIngestBestEffortSkipsInvalidRecords(t *testing.T) {
	o := NewOrchestrator(&config.AppConfig{BestEffort: true}, identity.NewResolver(nil))
	agg := stats.New(identity.NewResolver(nil))

	good := models.Commit{
		AuthorName: "alice",
		Date:       time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
		Additions:  1,
	}
	bad := good
	bad.AuthorName = ""

	require.NoError(t, o.ingest(agg, good))
	require.NoError(t, o.ingest(agg, bad)) // skipped, not fatal
	assert.Equal(t, 1, agg.Total())
}

func TestIngestStrictFailsOnInvalidRecord(t *testing.T) {
	o := NewOrchestrator(&config.AppConfig{}, identity.NewResolver(nil))
	agg := stats.New(identity.NewResolver(nil))

	bad := models.Commit{Date: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)}
	err := o.ingest(agg, bad)

	var invalid *models.InvalidCommitError
	assert.ErrorAs(t, err, &invalid)
}

func TestIngestContractViolationNeverSkipped(t *testing.T) {
	o := NewOrchestrator(&config.AppConfig{BestEffort: true}, identity.NewResolver(nil))
	agg := stats.New(identity.NewResolver(nil))

	_, err := agg.Finalize()
	require.NoError(t, err)

	commit := models.Commit{
		AuthorName: "alice",
		Date:       time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
	}
	assert.ErrorIs(t, o.ingest(agg, commit), stats.ErrIngestAfterFinalize)
}
