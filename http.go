package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/FlagBrew/local-pokedex/internal/handlers/pokemon"
	"github.com/FlagBrew/local-pokedex/internal/metrics"
	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lrstanley/chix"
)

func httpServer(ctx context.Context) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.ListeningAddr, cfg.HTTP.Port),
		Handler: newRouter(logger, svc, stats, cli.Debug),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
		// Some sane defaults.
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}

func newRouter(l log.Interface, s pokemon.Service, m *metrics.Metrics, debug bool) chi.Router {
	r := chi.NewRouter()

	r.Use(
		chix.UseContextIP,
		middleware.RequestID,
		chix.UseStructuredLogger(l),
		chix.UseDebug(debug),
		chix.UseRecoverer,
		middleware.Compress(5),
		middleware.Maybe(middleware.StripSlashes, func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, "/debug/")
		}),
	)

	if debug {
		r.Mount("/debug", middleware.Profiler())
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		chix.JSON(w, r, http.StatusOK, chix.M{"status": "ok"})
	})
	r.Handle("/metrics", m.Handler())
	r.Route("/pokemon", pokemon.NewHandler(s).Route)

	return r
}
