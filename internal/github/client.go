package github

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/urfave/cli/v2"
	"golang.org/x/oauth2"
)

// NewClient returns a GitHub API client, authenticated when a token is
// supplied.
func NewClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(tc)
}

// Token resolves a personal access token from the --token flag, the
// GITPULSE_GITHUB_TOKEN environment variable, or the saved token file,
// in that order. A token passed via flag is saved for future runs.
func Token(c *cli.Context) string {
	if token := c.String("token"); token != "" {
		saveToken(token)
		return token
	}

	if token := os.Getenv("GITPULSE_GITHUB_TOKEN"); token != "" {
		return token
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(configDir, "gitpulse", "token"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func saveToken(token string) {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		return
	}
	configPath := filepath.Join(configDir, "gitpulse")
	if err := os.MkdirAll(configPath, 0700); err != nil {
		return
	}
	os.WriteFile(filepath.Join(configPath, "token"), []byte(token), 0600)
}

// ValidateToken checks that the client's token is usable. Rate-limited
// responses are treated as valid to avoid blocking the run.
func ValidateToken(ctx context.Context, client *github.Client) error {
	_, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case 401:
				return fmt.Errorf("invalid GitHub token")
			case 403:
				return nil
			}
		}
		return fmt.Errorf("error validating token: %w", err)
	}
	return nil
}
