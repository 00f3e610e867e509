package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ontop/internal/audio"
	"github.com/vovakirdan/ontop/internal/audio/beepout"
	"github.com/vovakirdan/ontop/internal/level"
	"github.com/vovakirdan/ontop/internal/mode"
	"github.com/vovakirdan/ontop/internal/platform/gui"
	"github.com/vovakirdan/ontop/internal/platform/tui"
	"github.com/vovakirdan/ontop/internal/storage"
)

var flagGUI bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game on the title screen.

Controls:
  Left/Right, A/D  - Walk
  Space/Up         - Jump
  Click, F, Enter  - Throw the javelin (click aims, keys throw ahead)
  Right click, R   - Recall the javelin (Shift in the window)
  Esc/P            - Pause
  Ctrl+C           - Quit

Difficulty options:
  easy   - Slower monsters, higher jump
  normal - As configured
  hard   - Faster monsters, lower jump

Examples:
  ontop play
  ontop play --gui
  ontop play --difficulty easy
  ontop play --map ./maps/tower.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	logger, logFile, err := openLogger(flagLogPath)
	if err != nil {
		fatal("%v", err)
	}
	defer logFile.Close()

	env := &mode.Env{
		Config: cfg,
		Log:    logger,
		LoadLevel: func() (*level.Level, error) {
			return level.Open(cfg.Level.Path)
		},
	}

	volume := cfg.Audio.Volume
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		logger.Warn("could not open database, settings and runs will not be saved", "err", err)
	} else {
		defer store.Close()
		env.Store = store
		if volume, err = store.Volume(cfg.Audio.Volume); err != nil {
			logger.Warn("could not read stored volume", "err", err)
			volume = cfg.Audio.Volume
		}
	}

	env.Settings = audio.NewSettings(volume)
	env.Audio = beepout.Open(cfg.Audio, env.Settings, logger)
	defer env.Audio.Close()

	mgr := mode.NewManager(env)
	if err := mgr.Start(); err != nil {
		fatal("%v", err)
	}
	logger.Info("session started", "gui", flagGUI, "map", cfg.Level.Path, "volume", volume)

	if flagGUI {
		err = gui.Run(mgr, cfg, logger)
	} else {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.Run(mgr, cfg.Display, width, height)
	}

	if err != nil {
		logger.Error("session ended with error", "err", err)
		fatal("%v", err)
	}
	logger.Info("session ended")
}
