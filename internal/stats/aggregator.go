// Package stats folds commit records into per-developer contribution
// statistics and derives the report metrics from the accumulated state.
package stats

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gitpulse/internal/identity"
	"gitpulse/internal/models"
)

const dateLayout = "2006-01-02"

var (
	// ErrIngestAfterFinalize is returned when Ingest is called on a
	// finalized aggregator. This is a programming error, not a data error.
	ErrIngestAfterFinalize = errors.New("stats: ingest after finalize")

	// ErrFinalizeAfterFinalize is returned when Finalize is called twice.
	ErrFinalizeAfterFinalize = errors.New("stats: aggregator already finalized")
)

// developerStats is the running accumulator for one canonical developer.
// Created lazily on the first commit seen for that developer.
type developerStats struct {
	commits      int
	filesChanged int // sum of per-commit file counts, not deduplicated
	additions    int
	deletions    int
	activeDays   map[string]struct{} // calendar dates, local time
	activeWeeks  map[string]struct{} // ISO year-week keys
	hourHist     [24]int
	weekdayHist  [7]int // time.Weekday order, Sunday first
}

// Aggregator folds commits into per-developer accumulators and a
// project-wide total. It has two phases: ingesting, then finalized.
// Finalize is the single irreversible transition between them.
//
// Not safe for concurrent use. Callers that fetch commits in parallel
// must serialize Ingest calls onto one goroutine.
type Aggregator struct {
	resolver  *identity.Resolver
	devs      map[string]*developerStats
	total     int
	finalized bool
}

func New(resolver *identity.Resolver) *Aggregator {
	return &Aggregator{
		resolver: resolver,
		devs:     make(map[string]*developerStats),
	}
}

// Ingest folds one commit into the accumulator of its resolved author.
// Malformed records are rejected with *models.InvalidCommitError before
// any accumulator is touched.
func (a *Aggregator) Ingest(commit models.Commit) error {
	if a.finalized {
		return ErrIngestAfterFinalize
	}
	if err := commit.Validate(); err != nil {
		return err
	}

	name := a.resolver.Resolve(commit.AuthorName)
	dev, ok := a.devs[name]
	if !ok {
		dev = &developerStats{
			activeDays:  make(map[string]struct{}),
			activeWeeks: make(map[string]struct{}),
		}
		a.devs[name] = dev
	}

	dev.commits++
	dev.filesChanged += len(commit.Files)
	dev.additions += commit.Additions
	dev.deletions += commit.Deletions
	dev.activeDays[commit.Date.Format(dateLayout)] = struct{}{}
	dev.hourHist[commit.Date.Hour()]++
	dev.weekdayHist[int(commit.Date.Weekday())]++

	year, week := commit.Date.ISOWeek()
	dev.activeWeeks[fmt.Sprintf("%d-W%02d", year, week)] = struct{}{}

	a.total++
	return nil
}

// Total returns the project-wide commit count ingested so far.
func (a *Aggregator) Total() int {
	return a.total
}

// Finalize computes the derived metrics and returns one report per
// developer, ordered by descending commit count with ties broken by
// ascending developer name. Zero ingested commits yields an empty
// slice without error. The aggregator accepts no further Ingest calls
// afterwards.
func (a *Aggregator) Finalize() ([]Report, error) {
	if a.finalized {
		return nil, ErrFinalizeAfterFinalize
	}
	a.finalized = true

	now := time.Now()
	reports := make([]Report, 0, len(a.devs))
	for name, dev := range a.devs {
		reports = append(reports, dev.report(name, a.total, now))
	}

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].Commits != reports[j].Commits {
			return reports[i].Commits > reports[j].Commits
		}
		return reports[i].Developer < reports[j].Developer
	})
	return reports, nil
}
