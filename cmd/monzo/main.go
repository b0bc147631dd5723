// Command monzo reads balances, posts feed items and annotates transactions
// through the Monzo API.
//
// Usage:
//
//	monzo [-config file] [-env-file file] [-token token] [-base-url url] <command> [flags]
//
// Commands:
//
//	balance  -account <id>
//	feed     -account <id> -title <text> -image-url <url> [-url -body -background-color -body-color -title-color]
//	annotate -transaction <id> -meta key=value [-meta key=value ...]
//	version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/gomonzo/config"
	apperrors "github.com/kbukum/gomonzo/errors"
	"github.com/kbukum/gomonzo/logger"
	"github.com/kbukum/gomonzo/monzo"
	"github.com/kbukum/gomonzo/observability"
	"github.com/kbukum/gomonzo/version"
)

const shutdownTimeout = 5 * time.Second

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err != errUsage && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}

type command func(ctx context.Context, client *monzo.Client, args []string, out io.Writer) error

var commands = map[string]command{
	"balance":  runBalance,
	"feed":     runFeed,
	"annotate": runAnnotate,
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("monzo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "path to config.yml")
	envFile := fs.String("env-file", "", "path to a .env file")
	token := fs.String("token", "", "access token, overrides monzo.access_token")
	baseURL := fs.String("base-url", "", "API base URL, overrides monzo.base_url")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: monzo [flags] <balance|feed|annotate|version> [command flags]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	name, cmdArgs := fs.Arg(0), fs.Args()[1:]
	if name == "version" {
		_, err := fmt.Fprintln(stdout, version.Get())
		return err
	}
	cmd, ok := commands[name]
	if !ok {
		fs.Usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}

	var opts []config.LoaderOption
	if *configFile != "" {
		opts = append(opts, config.WithConfigFile(*configFile))
	}
	if *envFile != "" {
		opts = append(opts, config.WithEnvFile(*envFile))
	}

	var cfg Config
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return err
	}
	if *token != "" {
		cfg.Monzo.AccessToken = *token
	}
	if *baseURL != "" {
		cfg.Monzo.BaseURL = *baseURL
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.Logging.Writer = stderr
	if cfg.Logging.Output == "stdout" {
		cfg.Logging.Writer = stdout
	}
	log := logger.New(&cfg.Logging, cfg.Name)
	logger.SetGlobalLogger(log)

	metrics, shutdown, err := setupObservability(ctx, cfg.Observability)
	if err != nil {
		return err
	}
	defer shutdown(log)

	client, err := monzo.NewFromConfig(cfg.Monzo, monzo.WithLogger(log), monzo.WithMetrics(metrics))
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if err := cmd(ctx, client, cmdArgs, stdout); err != nil {
		log.Error("command failed", logger.Fields(logger.FieldOperation, name, logger.FieldError, err.Error()))
		return err
	}
	return nil
}

// setupObservability starts the OTLP exporters when enabled. Metrics is nil
// when exporting is off.
func setupObservability(ctx context.Context, cfg observability.Config) (*observability.Metrics, func(*logger.Logger), error) {
	noop := func(*logger.Logger) {}
	if !cfg.Enabled {
		return nil, noop, nil
	}

	tp, err := observability.InitTracer(ctx, cfg)
	if err != nil {
		return nil, noop, apperrors.InvalidConfig(err)
	}
	mp, err := observability.InitMeter(ctx, cfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, noop, apperrors.InvalidConfig(err)
	}
	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, noop, err
	}

	shutdown := func(log *logger.Logger) {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Warn("tracer shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
		if err := mp.Shutdown(ctx); err != nil {
			log.Warn("meter shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}
	return metrics, shutdown, nil
}
