// ontop is a javelin platformer for the terminal and the desktop.
//
// Usage:
//
//	ontop                    - Play (same as "ontop play")
//	ontop play               - Play in the terminal, or in a window with --gui
//	ontop runs               - Browse the run log
//	ontop serve              - Start SSH server for remote play
//	ontop maps check <file>  - Validate a map file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--config <path>       - Use a custom config YAML
//	--db <path>           - Set database path (default: ~/.ontop/ontop.db)
//	--log <path>          - Log file, "-" for stderr (default: ~/.ontop/ontop.log)
//	--map <path>          - Play a custom map instead of the built-in one
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ontop/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDBPath     string
	flagLogPath    string
	flagMap        string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ontop",
	Short: "Get On Top Of It - climb Olympus with a javelin",
	Long: `Get On Top Of It is a platformer where your only tool is a javelin.
Throw it into a wall to make a ledge, recall it, and climb to the summit.

Available commands:
  play     - Play the game (default)
  runs     - Browse the run log
  serve    - Start SSH server for remote play
  maps     - Map tools

Examples:
  ontop
  ontop play --gui
  ontop play --map ./my-map.yaml --difficulty hard
  ontop serve --ssh :2222
  ontop runs`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ontop/ontop.db", "Path to settings and run log database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.ontop/ontop.log", `Log file ("-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Path to a map YAML (default: built-in Olympus)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	rootCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mapsCmd)
}

// loadConfig loads the game config and applies the command line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagMap != "" {
		cfg.Level.Path = flagMap
	}
	return cfg, nil
}

// openLogger builds the session logger. The terminal frontend owns the
// screen, so logs go to a file unless path is "-".
func openLogger(path string) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if path != "-" {
		expanded, err := config.ExpandHome(path)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ontop",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fatal prints an error and exits like the other commands do.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
