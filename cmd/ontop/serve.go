package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ontop/internal/level"
	"github.com/vovakirdan/ontop/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play in their terminal.

Each SSH connection gets its own game; sessions never interact. Sound is
off for remote players. Runs are recorded in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ontop/host_key

Examples:
  ontop serve                           # Listen on :23234 with auto-generated key
  ontop serve --ssh :2222               # Listen on port 2222
  ontop serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	game, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	// The server has no screen of its own; log to stderr unless told otherwise
	logPath := "-"
	if cmd.Flags().Changed("log") {
		logPath = flagLogPath
	}
	logger, logFile, err := openLogger(logPath)
	if err != nil {
		fatal("%v", err)
	}
	defer logFile.Close()

	// Fail early on a broken map instead of in every session
	if _, err := level.Open(game.Level.Path); err != nil {
		fatal("%v", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        game,
		LoadLevel: func() (*level.Level, error) {
			return level.Open(game.Level.Path)
		},
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting ontop SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}
