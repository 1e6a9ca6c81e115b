package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"gitpulse/internal/config"
	"gitpulse/internal/display"
	"gitpulse/internal/github"
	"gitpulse/internal/gitsrc"
	"gitpulse/internal/identity"
	"gitpulse/internal/models"
	"gitpulse/internal/stats"
)

// Orchestrator wires a commit source into the aggregator and hands the
// finalized reports to the display layer. Ingestion happens on the
// calling goroutine only; the GitHub source parallelizes fetching
// internally but delivers an already-ordered slice.
type Orchestrator struct {
	config   *config.AppConfig
	resolver *identity.Resolver
}

func NewOrchestrator(cfg *config.AppConfig, resolver *identity.Resolver) *Orchestrator {
	return &Orchestrator{
		config:   cfg,
		resolver: resolver,
	}
}

func (o *Orchestrator) Run(ctx context.Context) error {
	agg := stats.New(o.resolver)

	var srcErr error
	if o.config.GitHub {
		srcErr = o.ingestGitHub(ctx, agg)
	} else {
		srcErr = o.ingestLocal(ctx, agg)
	}
	if srcErr != nil {
		// Contract violations always propagate.
		if errors.Is(srcErr, stats.ErrIngestAfterFinalize) {
			return srcErr
		}
		if !o.config.BestEffort {
			return srcErr
		}
		logrus.WithError(srcErr).Warn("continuing with partial history")
	}

	reports, err := agg.Finalize()
	if err != nil {
		return err
	}

	return display.Render(os.Stdout, reports, agg.Total(), o.config.Format)
}

// ingest folds one commit, applying the best-effort policy to malformed
// records: skipped with a warning instead of tainting the run.
func (o *Orchestrator) ingest(agg *stats.Aggregator, commit models.Commit) error {
	err := agg.Ingest(commit)
	if err == nil {
		return nil
	}

	var invalid *models.InvalidCommitError
	if errors.As(err, &invalid) && o.config.BestEffort {
		logrus.WithField("commit", invalid.Commit.Hash).Warn("skipping invalid commit record")
		return nil
	}
	return err
}

func (o *Orchestrator) ingestLocal(ctx context.Context, agg *stats.Aggregator) (err error) {
	commits, closer, err := gitsrc.Commits(ctx, gitsrc.Options{
		RepoPath: o.config.Target,
		Branch:   o.config.Branch,
		Since:    o.config.Since,
		Until:    o.config.Until,
	})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	for commit, err := range commits {
		if err != nil {
			return err
		}
		if err := o.ingest(agg, commit); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) ingestGitHub(ctx context.Context, agg *stats.Aggregator) error {
	owner, repo, err := splitSlug(o.config.Target)
	if err != nil {
		return err
	}

	client := github.NewClient(o.config.Token)
	if o.config.Token != "" {
		if err := github.ValidateToken(ctx, client); err != nil {
			return err
		}
	}

	cfg := github.DefaultConfig()
	cfg.Branch = o.config.Branch
	cfg.Since = o.config.SinceTime()
	cfg.Until = o.config.UntilTime()
	cfg.ShowProgress = o.config.Format == "" || o.config.Format == "text"

	commits, fetchErr := github.FetchCommits(ctx, client, owner, repo, cfg)
	for _, commit := range commits {
		if err := o.ingest(agg, commit); err != nil {
			return err
		}
	}
	return fetchErr
}

func splitSlug(slug string) (owner, repo string, err error) {
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("expected owner/repo, got %q", slug)
	}
	return parts[0], parts[1], nil
}
