package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/FlagBrew/local-pokedex/internal/gui"
	"github.com/FlagBrew/local-pokedex/internal/metrics"
	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/FlagBrew/local-pokedex/internal/pokedex"
	"github.com/FlagBrew/local-pokedex/internal/utils"
	"github.com/apex/log"
	"github.com/lrstanley/chix"
	"github.com/lrstanley/clix"
)

var (
	cli    = &clix.CLI[models.Flags]{}
	logger log.Interface
	cfg    *models.Config
	svc    *pokedex.Service
	stats  *metrics.Metrics
	app    *gui.Gui
)

// errScreenClosed stops the server when the dashboard is closed by the user.
var errScreenClosed = errors.New("dashboard closed")

func main() {
	ctx := setup()

	var runners []chix.Runner
	if app != nil {
		runners = append(runners, dashboardRunner(app))
	}

	logger.Infof("Starting HTTP server on %s:%d", cfg.HTTP.ListeningAddr, cfg.HTTP.Port)
	err := chix.RunContext(ctx, httpServer(ctx), runners...)

	if app != nil {
		// The log pane is gone once the screen stops.
		logger = utils.NewLogger(log.InfoLevel, cli.Debug, os.Stderr)
	}

	if isCleanStop(err) {
		logger.Info("local pokedex stopped")
		return
	}

	logger.WithError(err).Error("local pokedex stopped unexpectedly")
	os.Exit(1)
}

// dashboardRunner runs the fancy screen next to the HTTP server and closes it
// when the server shuts down.
func dashboardRunner(g *gui.Gui) chix.Runner {
	return func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			g.Stop()
		}()

		if err := g.Start(); err != nil {
			return err
		}

		if ctx.Err() != nil {
			return nil
		}
		return errScreenClosed
	}
}

// isCleanStop reports whether err is an expected way for the server to end:
// no error, a cancelled context, a termination signal, or the dashboard
// being closed.
func isCleanStop(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, errScreenClosed) {
		return true
	}
	return strings.Contains(err.Error(), "received signal")
}
