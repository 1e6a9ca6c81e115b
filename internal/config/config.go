package config

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

const dateLayout = "2006-01-02"

// AppConfig is the parsed run configuration. Target is a local
// repository path, or an owner/repo slug when GitHub is set.
type AppConfig struct {
	Target     string
	GitHub     bool
	Branch     string
	Since      string
	Until      string
	AliasFile  string
	Format     string
	BestEffort bool
	Verbose    bool
	Token      string
}

// ParseConfig reads the run configuration from the CLI context.
func ParseConfig(c *cli.Context) (*AppConfig, error) {
	if c.NArg() == 0 {
		return nil, cli.ShowAppHelp(c)
	}

	cfg := &AppConfig{
		Target:     c.Args().First(),
		GitHub:     c.Bool("github"),
		Branch:     c.String("branch"),
		Since:      c.String("since"),
		Until:      c.String("until"),
		AliasFile:  c.String("aliases"),
		Format:     c.String("format"),
		BestEffort: c.Bool("best-effort"),
		Verbose:    c.Bool("verbose"),
	}

	switch cfg.Format {
	case "", "text", "json", "csv":
	default:
		return nil, fmt.Errorf("unknown output format: %s", cfg.Format)
	}

	for _, date := range []string{cfg.Since, cfg.Until} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, date); err != nil {
			return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
		}
	}

	return cfg, nil
}

// SinceTime returns the parsed since date, or nil when unset.
func (cfg *AppConfig) SinceTime() *time.Time {
	return parseDate(cfg.Since)
}

// UntilTime returns the parsed until date, or nil when unset.
func (cfg *AppConfig) UntilTime() *time.Time {
	return parseDate(cfg.Until)
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
