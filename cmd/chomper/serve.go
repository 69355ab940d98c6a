package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomper/internal/games/chomper"
	"github.com/vovakirdan/tui-chomper/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHDBPath   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

Each SSH connection gets its own session with a game picker menu. Remote
sessions always play solo (one keyboard per connection). Scores are stored
per-server, so all users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.chomper/host_key

A .env file in the working directory can override defaults when the flag
is not set: CHOMPER_SSH_ADDR, CHOMPER_HOST_KEY, CHOMPER_DB,
CHOMPER_IDLE_MINUTES.

Examples:
  chomper serve                           # Listen on :23234 with auto-generated key
  chomper serve --ssh :2222               # Listen on port 2222
  chomper serve --host-key ./my_host_key  # Use specific host key
  chomper serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.chomper/scores.db", "Path to scores database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

// applyServeEnv fills in flags the user did not set from the environment,
// reading a .env file first when one exists.
func applyServeEnv(cmd *cobra.Command) {
	//nolint:errcheck // A missing .env file is the common case
	godotenv.Load()

	if !cmd.Flags().Changed("ssh") {
		if v := os.Getenv("CHOMPER_SSH_ADDR"); v != "" {
			flagSSHAddr = v
		}
	}
	if !cmd.Flags().Changed("host-key") {
		if v := os.Getenv("CHOMPER_HOST_KEY"); v != "" {
			flagHostKey = v
		}
	}
	if !cmd.Flags().Changed("db") {
		if v := os.Getenv("CHOMPER_DB"); v != "" {
			flagSSHDBPath = v
		}
	}
	if !cmd.Flags().Changed("idle-timeout") {
		if v := os.Getenv("CHOMPER_IDLE_MINUTES"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				flagIdleTimeout = n
			}
		}
	}
}

func runServe(cmd *cobra.Command, _ []string) {
	applyServeEnv(cmd)

	// Remote sessions share one keyboard each; versus makes no sense there
	chomper.SetMode("solo")

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting chomper SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
