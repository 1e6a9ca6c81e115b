package github

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/go-github/v57/github"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"gitpulse/internal/models"
)

// FetchCommits retrieves the commit history of one repository branch,
// including per-commit file and line stats. The commit list endpoint
// does not carry stats, so each commit is fetched again individually;
// those detail requests run concurrently behind a semaphore while the
// result slice is assembled by index, so the caller still receives
// commits in history order.
//
// On error the partial result fetched so far is returned alongside it,
// for callers that opt into best-effort aggregation.
func FetchCommits(ctx context.Context, client *github.Client, owner, repo string, cfg Config) ([]models.Commit, error) {
	refs, err := listCommits(ctx, client, owner, repo, cfg)
	if err != nil {
		return nil, err
	}
	if len(refs) == 0 {
		return nil, nil
	}

	logrus.WithFields(logrus.Fields{
		"repo":    owner + "/" + repo,
		"commits": len(refs),
	}).Debug("fetching commit details")

	commits := make([]models.Commit, len(refs))
	errs := make([]error, len(refs))

	var bar *progressbar.ProgressBar
	if cfg.ShowProgress {
		bar = progressbar.NewOptions(len(refs),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowCount(),
			progressbar.OptionSetDescription("[cyan]Counting contributions[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	sem := make(chan bool, cfg.MaxConcurrentRequests)
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(i int, sha string) {
			defer wg.Done()
			sem <- true
			defer func() { <-sem }()

			commits[i], errs[i] = fetchCommitDetail(ctx, client, owner, repo, sha)
			if bar != nil {
				bar.Add(1)
			}
		}(i, ref.GetSHA())
	}

	wg.Wait()
	if bar != nil {
		bar.Finish()
	}

	for i, err := range errs {
		if err != nil {
			// Hand back everything fetched before the failure.
			return commits[:i], err
		}
	}
	return commits, nil
}

// listCommits pages through the commit list for a branch, skipping
// merge commits.
func listCommits(ctx context.Context, client *github.Client, owner, repo string, cfg Config) ([]*github.RepositoryCommit, error) {
	var refs []*github.RepositoryCommit
	opt := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: cfg.PerPage},
	}
	if cfg.Branch != "" {
		opt.SHA = cfg.Branch
	}
	if cfg.Since != nil {
		opt.Since = *cfg.Since
	}
	if cfg.Until != nil {
		opt.Until = *cfg.Until
	}

	for {
		commits, resp, err := client.Repositories.ListCommits(ctx, owner, repo, opt)
		if err != nil {
			if resp != nil && resp.StatusCode == 409 {
				// Empty repository
				return nil, nil
			}
			if resp != nil && resp.StatusCode == 404 {
				return nil, fmt.Errorf("repository %s/%s not found or access denied", owner, repo)
			}
			return nil, fmt.Errorf("error fetching commits: %w", err)
		}

		for _, commit := range commits {
			if len(commit.Parents) > 1 {
				continue
			}
			refs = append(refs, commit)
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return refs, nil
}

func fetchCommitDetail(ctx context.Context, client *github.Client, owner, repo, sha string) (models.Commit, error) {
	commit, _, err := client.Repositories.GetCommit(ctx, owner, repo, sha, nil)
	if err != nil {
		return models.Commit{}, fmt.Errorf("failed to fetch commit %s: %w", sha, err)
	}
	if commit.Commit == nil || commit.Commit.Author == nil {
		return models.Commit{}, fmt.Errorf("commit %s has no author information", sha)
	}

	record := models.Commit{
		Hash:        commit.GetSHA(),
		AuthorName:  commit.Commit.Author.GetName(),
		AuthorEmail: commit.Commit.Author.GetEmail(),
		Date:        commit.Commit.Author.GetDate().Time,
	}
	for _, file := range commit.Files {
		record.Files = append(record.Files, file.GetFilename())
		record.Additions += file.GetAdditions()
		record.Deletions += file.GetDeletions()
	}
	return record, nil
}
