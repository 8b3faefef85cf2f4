package app

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/hourclock/internal/config"
	"github.com/ayoisaiah/hourclock/internal/logger"
	"github.com/ayoisaiah/hourclock/internal/pathutil"
	"github.com/ayoisaiah/hourclock/internal/planner"
	"github.com/ayoisaiah/hourclock/internal/render"
	"github.com/ayoisaiah/hourclock/internal/ui"
	"github.com/ayoisaiah/hourclock/store"
)

// envFile is read from the working directory before the config file.
const envFile = ".env"

// env holds everything an action needs. Close releases the database lock
// and flushes the log file.
type env struct {
	cfg     *config.Config
	log     *slog.Logger
	db      *store.Client
	p       *planner.Planner
	closers []io.Closer
}

func (e *env) Close() error {
	var first error

	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// resolvePaths returns the config, database and log paths. Explicit
// --config and --db flags skip the XDG lookup, and the log then lives next
// to the database.
func resolvePaths(ctx *cli.Context) (configPath, dbPath, logPath string, err error) {
	configPath = ctx.String(configFlag.Name)
	dbPath = ctx.String(dbFlag.Name)

	if configPath == "" || dbPath == "" {
		if err = pathutil.Initialize(); err != nil {
			return "", "", "", err
		}

		if configPath == "" {
			configPath = pathutil.ConfigFilePath()
		}

		if dbPath == "" {
			dbPath = pathutil.DBFilePath()
			logPath = pathutil.LogFilePath()
		}
	}

	if logPath == "" {
		logPath = filepath.Join(filepath.Dir(dbPath), "log", "hourclock.log")
	}

	return configPath, dbPath, logPath, nil
}

// loadConfig reads the configuration in order of increasing precedence:
// config file, .env and environment, then command-line flags.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath, dbPath, logPath, err := resolvePaths(ctx)
	if err != nil {
		return nil, err
	}

	return config.New(
		config.WithEnvFile(envFile),
		config.WithViperConfig(configPath),
		config.WithSystemPaths(configPath, dbPath, logPath),
		config.WithCLIConfig(ctx),
	)
}

// setup loads the config, opens the log and the database, and builds the
// planner.
func setup(ctx *cli.Context) (*env, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.Settings.NoColor {
		disableStyling()
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	log, logCloser := logger.NewFile(cfg.System.LogPath, cfg.Settings.LogLevel)

	e := &env{
		cfg:     cfg,
		log:     log,
		closers: []io.Closer{logCloser},
	}

	db, err := store.NewClient(cfg.System.DBPath, store.WithLogger(log))
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	e.db = db
	e.closers = append(e.closers, db)

	p, err := planner.New(
		db,
		planner.WithLogger(log),
		planner.WithPlaceholderColor(cfg.Display.PlaceholderColor),
	)
	if err != nil {
		_ = e.Close()
		return nil, err
	}

	e.p = p

	log.Debug("hourclock started",
		slog.Any("args", ctx.Args().Slice()),
		slog.String("db", cfg.System.DBPath),
	)

	return e, nil
}

// chartOptions maps the display settings onto the renderer.
func chartOptions(cfg *config.Config) render.Options {
	opts := render.DefaultOptions()

	scale := func(v int) int {
		return v * cfg.Display.ChartSize / opts.Size
	}

	opts.LabelRadius = scale(opts.LabelRadius)
	opts.StrokeWidth = max(1, scale(opts.StrokeWidth))
	opts.Size = cfg.Display.ChartSize
	opts.InnerRadius = cfg.Display.InnerRadius
	opts.OuterRadius = cfg.Display.OuterRadius

	if opts.LabelRadius <= opts.InnerRadius || opts.LabelRadius >= opts.OuterRadius {
		opts.LabelRadius = (opts.InnerRadius + opts.OuterRadius*3) / 4
	}

	return opts
}
