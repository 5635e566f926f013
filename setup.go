package main

import (
	"context"

	"github.com/FlagBrew/local-pokedex/internal/funtranslations"
	"github.com/FlagBrew/local-pokedex/internal/gui"
	"github.com/FlagBrew/local-pokedex/internal/metrics"
	"github.com/FlagBrew/local-pokedex/internal/pokeapi"
	"github.com/FlagBrew/local-pokedex/internal/pokedex"
	"github.com/FlagBrew/local-pokedex/internal/utils"
	"github.com/apex/log"
)

func setup() context.Context {
	cli.Parse()
	logger = cli.Logger

	ctx := log.NewContext(context.Background(), logger)
	cfg = utils.Setup(ctx, cli.Flags)

	if cfg.FancyScreen && cli.Flags.Mode != utils.ModeDocker {
		app = gui.New(cfg, false)
		cli.Logger = utils.NewLogger(log.InfoLevel, cli.Debug, app.GetLogOutput())
		logger = cli.Logger
		ctx = log.NewContext(ctx, logger)
	}

	timeout := cfg.Upstream.Timeout()
	stats = metrics.New()
	svc = pokedex.NewService(
		pokeapi.NewClient(cfg.Upstream.PokeAPIBaseURL, nil, timeout),
		funtranslations.NewClient(cfg.Upstream.TranslationBaseURL, nil, timeout),
		stats,
	)

	logger.WithFields(log.Fields{
		"pokeapi":      cfg.Upstream.PokeAPIBaseURL,
		"translations": cfg.Upstream.TranslationBaseURL,
		"timeout":      timeout,
	}).Info("upstream clients configured")

	return ctx
}
