package cli

import (
	"github.com/urfave/cli/v2"

	"gitpulse/internal/utils"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options] <repo-path | owner/repo>

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

func NewApp(action cli.ActionFunc) *cli.App {
	cli.AppHelpTemplate = helpTemplate

	return &cli.App{
		Name:    "gitpulse",
		Usage:   "Analyze per-developer contribution statistics for a git repository",
		Version: "v" + utils.GetVersion(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "github",
				Aliases: []string{"g"},
				Usage:   "Treat the target as an owner/repo GitHub slug",
			},
			&cli.StringFlag{
				Name:    "branch",
				Aliases: []string{"b"},
				Usage:   "Branch to analyze (default branch when unset)",
			},
			&cli.StringFlag{
				Name:  "since",
				Usage: "Only count commits on or after this date (YYYY-MM-DD)",
			},
			&cli.StringFlag{
				Name:  "until",
				Usage: "Only count commits on or before this date (YYYY-MM-DD)",
			},
			&cli.StringFlag{
				Name:    "aliases",
				Aliases: []string{"A"},
				Usage:   "JSON file mapping author aliases to canonical names",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "Output format (text, json, csv)",
			},
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "GitHub personal access token",
				EnvVars: []string{"GITPULSE_GITHUB_TOKEN"},
			},
			&cli.BoolFlag{
				Name:  "best-effort",
				Usage: "Report partial statistics when retrieval fails mid-stream",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Action:    action,
		ArgsUsage: "<repo-path | owner/repo>",
	}
}
