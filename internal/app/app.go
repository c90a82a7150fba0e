package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/deskset/internal/calc"
	"github.com/five82/deskset/internal/config"
	"github.com/five82/deskset/internal/prefs"
	"github.com/five82/deskset/internal/timer"
	"github.com/five82/deskset/internal/ui"
)

// Options configure the deskset application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/deskset/prefs.toml
	Seconds    int    // countdown start; zero uses the configured value
}

// Run boots the deskset TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	initial := cfg.CountdownInitial
	if opts.Seconds > 0 {
		initial = time.Duration(opts.Seconds) * time.Second
	}

	tick := timer.Options{Tick: cfg.Tick}
	countdown := timer.NewCountdown(initial, tick)
	stopwatch := timer.NewStopwatch(tick)
	calculator := calc.New()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return ui.Run(ui.Options{
		Context:    ctx,
		Calculator: calculator,
		Countdown:  countdown,
		Stopwatch:  stopwatch,
		ThemeName:  userPrefs.Theme,
		StartTab:   userPrefs.Tab,
		PrefsPath:  prefsPath,
	})
}
