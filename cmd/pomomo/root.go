package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	dg "github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/benjamonnguyen/pomomo-tui"
	"github.com/benjamonnguyen/pomomo-tui/app"
	"github.com/benjamonnguyen/pomomo-tui/controller"
	"github.com/benjamonnguyen/pomomo-tui/discordgo"
	"github.com/benjamonnguyen/pomomo-tui/history"
	"github.com/benjamonnguyen/pomomo-tui/sqlite"
	"github.com/benjamonnguyen/pomomo-tui/timer"
	"github.com/benjamonnguyen/pomomo-tui/tui"
)

type globalOptions struct {
	configPath string
	dbPath     string
	logFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&globalOptions{})
}

func newRootCmdWith(opts *globalOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           "pomomo",
		Short:         "Pomodoro timer for the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTimer(cmd, opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file (env: "+pomomo.ConfigPathKey+")")
	pf.StringVar(&opts.dbPath, "db", "", "path to the SQLite history database (env: "+pomomo.DatabaseURLKey+")")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	f := root.Flags()
	for _, o := range pomomo.DurationOptions {
		f.Int(o.Name, o.Default, o.Description)
	}
	f.Int(pomomo.IntervalsIntOption.Name, pomomo.IntervalsIntOption.Default, pomomo.IntervalsIntOption.Description)
	f.String(pomomo.FontOption, string(pomomo.DefaultFont), "clock font: sans-serif, serif or monospace")
	f.String(pomomo.ColourOption, string(pomomo.DefaultColour), "accent colour: red, cyan or violet")

	root.AddCommand(newHistoryCmd(opts))
	return root
}

// loadConfig layers changed flags over LoadConfig.
func loadConfig(cmd *cobra.Command, opts *globalOptions) (pomomo.Config, error) {
	cfg, err := pomomo.LoadConfig(opts.configPath)
	if err != nil {
		return pomomo.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.dbPath != "" {
		cfg.DatabaseURL = opts.dbPath
	}

	flags := cmd.Flags()
	durations := map[string]*int{
		pomomo.WorkOption:       &cfg.Durations.Work,
		pomomo.ShortBreakOption: &cfg.Durations.ShortBreak,
		pomomo.LongBreakOption:  &cfg.Durations.LongBreak,
	}
	for _, o := range pomomo.DurationOptions {
		if flags.Lookup(o.Name) == nil || !flags.Changed(o.Name) {
			continue
		}
		v, err := flags.GetInt(o.Name)
		if err != nil {
			return pomomo.Config{}, err
		}
		if err := o.Check(v); err != nil {
			return pomomo.Config{}, err
		}
		*durations[o.Name] = v
	}
	if flags.Lookup(pomomo.IntervalsOption) != nil && flags.Changed(pomomo.IntervalsOption) {
		v, err := flags.GetInt(pomomo.IntervalsOption)
		if err != nil {
			return pomomo.Config{}, err
		}
		if err := pomomo.IntervalsIntOption.Check(v); err != nil {
			return pomomo.Config{}, err
		}
		cfg.Intervals = v
	}
	if flags.Lookup(pomomo.FontOption) != nil && flags.Changed(pomomo.FontOption) {
		v, _ := flags.GetString(pomomo.FontOption)
		font, err := pomomo.ParseFont(v)
		if err != nil {
			return pomomo.Config{}, err
		}
		cfg.Theme.Font = font
	}
	if flags.Lookup(pomomo.ColourOption) != nil && flags.Changed(pomomo.ColourOption) {
		v, _ := flags.GetString(pomomo.ColourOption)
		colour, err := pomomo.ParseColour(v)
		if err != nil {
			return pomomo.Config{}, err
		}
		cfg.Theme.Colour = colour
	}
	return cfg, nil
}

// newLogger writes to logFile, or to fallback when no file is given.
func newLogger(opts *globalOptions, fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closer := func() error { return nil }
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    opts.verbose,
		Level:           log.InfoLevel,
	})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

func runTimer(cmd *cobra.Command, opts *globalOptions) error {
	topCtx, topCtxC := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer topCtxC()

	// logger; the tui owns the terminal
	logger, closeLog, err := newLogger(opts, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint

	// config
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	// db
	logger.Info("opening db", "url", cfg.DatabaseURL)
	db, err := sqlite.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close() //nolint

	tx, dbGetter := txStdLib.NewTransactor(db, txStdLib.NestedTransactionsSavepoints)
	intervalRepo := sqlite.NewIntervalRepo(dbGetter, logger)

	var notifiers []history.Notifier
	if cfg.DiscordEnabled() {
		cl, err := dg.New("")
		if err != nil {
			return fmt.Errorf("failed to create discord client: %w", err)
		}
		cl.Client = &http.Client{Timeout: 20 * time.Second}
		cl.UserAgent = fmt.Sprintf("pomomo (%s, v%s)", RepoURL, Version)
		notifiers = append(notifiers, discordgo.NewWebhookNotifier(cl, cfg.DiscordWebhookID, cfg.DiscordWebhookToken, logger))
		logger.Info("discord webhook enabled")
	}
	recorder := history.NewRecorder(intervalRepo, tx, logger, notifiers...)

	var wg sync.WaitGroup
	recorderCtx, recorderCtxC := context.WithCancel(context.Background())
	wg.Add(1)
	go func() {
		defer wg.Done()
		recorder.Run(recorderCtx)
	}()
	defer func() {
		recorderCtxC()
		wg.Wait()
		logger.Info("shutdown complete")
	}()

	// timer
	screen := tui.NewScreen()
	t := timer.New(cfg.Durations.Seconds(pomomo.WorkMode), timer.WithLogger(logger))
	ctrl := controller.New(t, screen, logger)
	a, err := app.New(ctrl, cfg.Durations, app.WithIntervals(cfg.Intervals), app.WithLogger(logger))
	if err != nil {
		return err
	}
	a.OnComplete(recorder.Handle)

	initCtx, initCtxC := context.WithTimeout(topCtx, 5*time.Second)
	defer initCtxC()
	if n, err := intervalRepo.CountIntervals(initCtx, pomomo.WorkMode, startOfDay(time.Now())); err != nil {
		logger.Warn("failed to restore completed pomodoros", "err", err)
	} else {
		a.RestoreCompleted(n)
	}

	if err := tui.Run(topCtx, tui.New(a, screen, cfg.Theme, logger)); err != nil {
		return err
	}
	if topCtx.Err() != nil {
		logger.Info("received shutdown signal")
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
