package main

import (
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	ucli "github.com/urfave/cli/v2"

	"gitpulse/internal/art"
	"gitpulse/internal/cli"
	"gitpulse/internal/config"
	"gitpulse/internal/github"
	"gitpulse/internal/identity"
	"gitpulse/internal/service"
)

func runApp(c *ucli.Context) error {
	cfg, err := config.ParseConfig(c)
	if err != nil || cfg == nil {
		return err
	}

	if cfg.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	aliases, err := config.LoadAliases(cfg.AliasFile)
	if err != nil {
		return err
	}
	resolver := identity.NewResolver(aliases)

	if cfg.GitHub {
		cfg.Token = github.Token(c)
	}

	// Interrupt aborts retrieval; with --best-effort the partial
	// history already ingested is still reported.
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	return service.NewOrchestrator(cfg, resolver).Run(ctx)
}

func main() {
	godotenv.Load()
	log.SetFlags(0)

	app := cli.NewApp(runApp)
	app.Before = func(c *ucli.Context) error {
		if !c.Bool("help") && !c.Bool("version") {
			art.PrintLogo()
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
