// Package gitsrc streams commit records out of a local repository by
// invoking git as a subprocess and parsing its log output. No libgit2
// bindings; plain `git log --numstat` with a machine-friendly format.
package gitsrc

import (
	"bufio"
	"context"
	"fmt"
	"iter"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"

	"gitpulse/internal/models"
)

// Field and record separators for the log pretty format. Unit/record
// separator control characters cannot appear in author names or hashes.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"
)

// prettyFormat: record separator, hash, author name, author email,
// strict ISO-8601 author date.
const prettyFormat = "%x1e%H%x1f%an%x1f%ae%x1f%aI"

// Options selects which slice of history to stream. Zero values mean
// no restriction (all branches' default HEAD history, no date window).
type Options struct {
	RepoPath string
	Branch   string
	Since    string // passed to git verbatim, e.g. "2024-01-01"
	Until    string
}

// Commits streams the repository history as commit records. Merge
// commits are skipped. The returned closer must be called to reap the
// subprocess; it reports the subprocess exit error, if any. Canceling
// the context kills git mid-stream.
func Commits(ctx context.Context, opts Options) (iter.Seq2[models.Commit, error], func() error, error) {
	args := []string{
		"log",
		"--no-merges",
		"--numstat",
		"--date=iso-strict",
		"--pretty=format:" + prettyFormat,
	}
	if opts.Since != "" {
		args = append(args, "--since="+opts.Since)
	}
	if opts.Until != "" {
		args = append(args, "--until="+opts.Until)
	}
	if opts.Branch != "" {
		args = append(args, opts.Branch)
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = opts.RepoPath

	var stderr strings.Builder
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("error opening git stdout: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"repo": opts.RepoPath,
		"args": args,
	}).Debug("running git log")

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("error running git: %w", err)
	}

	lines := func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}

	closer := func() error {
		if err := cmd.Wait(); err != nil {
			msg := strings.TrimSpace(stderr.String())
			if msg != "" {
				return fmt.Errorf("git log failed: %s: %w", msg, err)
			}
			return fmt.Errorf("git log failed: %w", err)
		}
		return nil
	}

	return ParseCommits(lines), closer, nil
}
