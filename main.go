package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	cli "github.com/jawher/mow.cli"
	"github.com/rs/zerolog"

	"github.com/douglaspoa/wordpress-react/internal/api"
	"github.com/douglaspoa/wordpress-react/internal/config"
	"github.com/douglaspoa/wordpress-react/internal/content"
	"github.com/douglaspoa/wordpress-react/internal/content/store"
	"github.com/douglaspoa/wordpress-react/internal/logging"
	http "github.com/douglaspoa/wordpress-react/internal/server"
)

func main() {
	cfg := config.FromEnv()

	app := cli.App("wordpress-content", "Normalized read access to a WordPress REST content API")
	endpoint := app.String(cli.StringOpt{
		Name:   "cms-endpoint",
		Value:  cfg.CMSEndpoint,
		Desc:   "WordPress REST base URL",
		EnvVar: "CMS_ENDPOINT",
	})
	timeout := app.String(cli.StringOpt{
		Name:   "http-timeout",
		Value:  cfg.HTTPTimeout.String(),
		Desc:   "timeout for upstream requests",
		EnvVar: "HTTP_TIMEOUT",
	})
	logLevel := app.String(cli.StringOpt{Name: "log-level", Value: cfg.LogLevel, Desc: "log level", EnvVar: "LOG_LEVEL"})
	logFormat := app.String(cli.StringOpt{Name: "log-format", Value: cfg.LogFormat, Desc: "json or console", EnvVar: "LOG_FORMAT"})

	apply := func() {
		cfg.CMSEndpoint = *endpoint
		if d, err := time.ParseDuration(*timeout); err == nil {
			cfg.HTTPTimeout = d
		}
		cfg.LogLevel = *logLevel
		cfg.LogFormat = *logFormat
	}

	app.Action = func() {
		apply()
		log := logging.New(cfg.LogLevel, cfg.LogFormat, nil)
		if err := serve(cfg, log); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}

	app.Command("serve", "serve normalized content over HTTP", func(cmd *cli.Cmd) {
		addr := cmd.String(cli.StringOpt{Name: "listen", Value: cfg.ListenAddr, Desc: "listen address", EnvVar: "HTTP_LISTEN_ADDR"})
		cmd.Action = func() {
			apply()
			cfg.ListenAddr = *addr
			log := logging.New(cfg.LogLevel, cfg.LogFormat, nil)
			if err := serve(cfg, log); err != nil {
				log.Fatal().Err(err).Msg("server stopped")
			}
		}
	})

	app.Command("fetch", "run one content query and print the normalized JSON", func(cmd *cli.Cmd) {
		cmd.Spec = "OP [ARG]"
		op := cmd.StringArg("OP", "", "global|posts|post|related|author|author-posts")
		arg := cmd.StringArg("ARG", "", "slug, or author id for author-posts")
		cmd.Action = func() {
			apply()
			log := logging.New(cfg.LogLevel, cfg.LogFormat, nil)
			if err := fetch(cfg, log, *op, *arg); err != nil {
				log.Error().Err(err).Msg("fetch")
				cli.Exit(1)
			}
		}
	})

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func build(ctx context.Context, cfg config.Config, log zerolog.Logger) (*api.API, func(), error) {
	fetcher, err := content.NewHTTPFetcher(cfg.CMSEndpoint, cfg.HTTPTimeout)
	if err != nil {
		return nil, nil, err
	}
	adapter := content.New(fetcher)

	cleanup := func() {}
	var sink content.FailureSink
	var failures content.FailureReader
	if cfg.SinkEnabled() {
		pg, err := store.New(ctx, cfg.BuildDSN())
		if err != nil {
			return nil, nil, fmt.Errorf("postgres init: %w", err)
		}
		sink, failures, cleanup = pg, pg, pg.Close
	}

	lenient := content.NewLenient(adapter, logging.ContentLogger{Log: log}, sink, time.Now)
	return api.New(adapter, lenient, failures), cleanup, nil
}

func serve(cfg config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	s := http.New(app, log, cfg.HTTPTimeout)
	log.Info().Str("addr", cfg.ListenAddr).Str("endpoint", cfg.CMSEndpoint).Msg("listening")
	return s.ListenAndServe(ctx, cfg.ListenAddr)
}

func fetch(cfg config.Config, log zerolog.Logger, op, arg string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	app, cleanup, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	l := app.Lenient()
	var out any
	switch op {
	case "global":
		out = l.GlobalData()
	case "posts":
		out = l.AllPosts(ctx)
	case "post":
		out = api.OrEmpty(l.Post(ctx, arg))
	case "related":
		out = l.RelatedPosts(ctx, arg)
	case "author":
		out = api.OrEmpty(l.Author(ctx, arg))
	case "author-posts":
		id, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid author id %q", arg)
		}
		out = l.AuthorPosts(ctx, id)
	default:
		return fmt.Errorf("unknown op %q", op)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
