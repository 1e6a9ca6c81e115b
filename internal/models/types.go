package models

import (
	"fmt"
	"time"
)

// Commit is a single commit record as produced by a commit source.
// Sources handle branch and date filtering; the aggregator consumes
// commits in whatever order they arrive.
type Commit struct {
	Hash        string
	AuthorName  string
	AuthorEmail string
	Date        time.Time
	Files       []string
	Additions   int
	Deletions   int
}

// InvalidCommitError marks a commit record that is malformed enough to
// taint an aggregation run. It carries the offending record.
type InvalidCommitError struct {
	Commit Commit
	Reason string
}

func (e *InvalidCommitError) Error() string {
	name := e.Commit.Hash
	if name == "" {
		name = "unknown"
	}
	return fmt.Sprintf("invalid commit %s: %s", name, e.Reason)
}

// Validate checks the record at the ingestion boundary. Sources are
// expected to produce only valid commits; this is the fail-fast guard.
func (c Commit) Validate() error {
	if c.AuthorName == "" {
		return &InvalidCommitError{Commit: c, Reason: "missing author"}
	}
	if c.Date.IsZero() {
		return &InvalidCommitError{Commit: c, Reason: "missing timestamp"}
	}
	if c.Additions < 0 || c.Deletions < 0 {
		return &InvalidCommitError{Commit: c, Reason: "negative line counts"}
	}
	return nil
}
