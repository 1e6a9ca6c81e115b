package gitsrc

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"

	"gitpulse/internal/models"
)

// ParseCommits turns a line stream from `git log --numstat` with our
// pretty format into commit records. A header line begins with the
// record separator; any numstat lines that follow belong to that
// commit until the next header.
func ParseCommits(lines iter.Seq2[string, error]) iter.Seq2[models.Commit, error] {
	return func(yield func(models.Commit, error) bool) {
		var current *models.Commit

		for line, err := range lines {
			if err != nil {
				yield(models.Commit{}, fmt.Errorf("error reading git log output: %w", err))
				return
			}

			if strings.HasPrefix(line, recordSep) {
				if current != nil && !yield(*current, nil) {
					return
				}
				commit, perr := parseHeader(strings.TrimPrefix(line, recordSep))
				if perr != nil {
					yield(models.Commit{}, perr)
					return
				}
				current = &commit
				continue
			}

			if current == nil || strings.TrimSpace(line) == "" {
				continue
			}

			if perr := parseNumstat(current, line); perr != nil {
				yield(*current, perr)
				return
			}
		}

		if current != nil {
			yield(*current, nil)
		}
	}
}

func parseHeader(line string) (models.Commit, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != 4 {
		return models.Commit{}, fmt.Errorf("malformed commit header: %q", line)
	}

	date, err := time.Parse(time.RFC3339, parts[3])
	if err != nil {
		return models.Commit{}, fmt.Errorf("error parsing commit %s date: %w", parts[0], err)
	}

	return models.Commit{
		Hash:        parts[0],
		AuthorName:  parts[1],
		AuthorEmail: parts[2],
		Date:        date,
	}, nil
}

// parseNumstat folds one `added<TAB>deleted<TAB>path` line into the
// commit. Binary files show "-" for both counts and still count as a
// changed file with zero line churn.
func parseNumstat(commit *models.Commit, line string) error {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) != 3 {
		return fmt.Errorf("malformed numstat line for commit %s: %q", commit.Hash, line)
	}

	added, err := parseCount(parts[0])
	if err != nil {
		return fmt.Errorf("malformed numstat line for commit %s: %q", commit.Hash, line)
	}
	deleted, err := parseCount(parts[1])
	if err != nil {
		return fmt.Errorf("malformed numstat line for commit %s: %q", commit.Hash, line)
	}

	commit.Files = append(commit.Files, parts[2])
	commit.Additions += added
	commit.Deletions += deleted
	return nil
}

func parseCount(s string) (int, error) {
	if s == "-" { // binary file
		return 0, nil
	}
	return strconv.Atoi(s)
}
