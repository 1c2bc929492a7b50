package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	txStdLib "github.com/Thiht/transactor/stdlib"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjamonnguyen/pomomo-tui"
	"github.com/benjamonnguyen/pomomo-tui/sqlite"
)

func TestLoadConfig_FlagsOverride(t *testing.T) {
	opts := &globalOptions{}
	cmd := newRootCmdWith(opts)
	require.NoError(t, cmd.ParseFlags([]string{
		"--work", "50",
		"--long", "30",
		"--intervals", "3",
		"--colour", "cyan",
		"--db", "other.db",
	}))

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, pomomo.Durations{Work: 50, ShortBreak: 5, LongBreak: 30}, cfg.Durations)
	assert.Equal(t, 3, cfg.Intervals)
	assert.Equal(t, pomomo.ColourCyan, cfg.Theme.Colour)
	assert.Equal(t, pomomo.DefaultFont, cfg.Theme.Font)
	assert.Equal(t, "other.db", cfg.DatabaseURL)
}

func TestLoadConfig_RejectsOutOfRangeFlag(t *testing.T) {
	opts := &globalOptions{}
	cmd := newRootCmdWith(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--short", "0"}))

	_, err := loadConfig(cmd, opts)
	assert.ErrorIs(t, err, pomomo.ErrInvalidDuration)
}

func TestLoadConfig_RejectsUnknownFont(t *testing.T) {
	opts := &globalOptions{}
	cmd := newRootCmdWith(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--font", "comic-sans"}))

	_, err := loadConfig(cmd, opts)
	assert.ErrorIs(t, err, pomomo.ErrInvalidTheme)
}

func TestHistoryCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pomomo.db")
	db, err := sqlite.Open(dbPath)
	require.NoError(t, err)
	_, dbGetter := txStdLib.NewTransactor(db, txStdLib.NestedTransactionsSavepoints)
	repo := sqlite.NewIntervalRepo(dbGetter, log.New(io.Discard))
	for _, m := range []pomomo.Mode{pomomo.WorkMode, pomomo.WorkMode, pomomo.ShortBreakMode} {
		_, err := repo.InsertInterval(context.Background(), pomomo.IntervalRecord{
			Mode:        m,
			Duration:    time.Minute,
			CompletedAt: time.Now().Add(-time.Hour),
		})
		require.NoError(t, err)
	}
	// too old for the default window
	_, err = repo.InsertInterval(context.Background(), pomomo.IntervalRecord{
		Mode:        pomomo.LongBreakMode,
		Duration:    time.Minute,
		CompletedAt: time.Now().Add(-48 * time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"history", "--db", dbPath, "--log-file", filepath.Join(t.TempDir(), "pomomo.log")})
	require.NoError(t, cmd.Execute())

	assert.Regexp(t, `Pomodoro\s+2`, out.String())
	assert.Regexp(t, `Short Break\s+1`, out.String())
	assert.Regexp(t, `Long Break\s+0`, out.String())
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("test", 3600)
	got := startOfDay(time.Date(2026, 3, 1, 17, 45, 12, 0, loc))
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, loc), got)
}
