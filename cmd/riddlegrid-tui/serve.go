package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"riddlegrid/internal/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the riddle board SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection mounts its own board; progress is dropped when the
connection closes.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.riddlegrid/host_key

Examples:
  riddlegrid-tui serve                           # Listen on :23235
  riddlegrid-tui serve --ssh :2222               # Listen on port 2222
  riddlegrid-tui serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	d, err := loadDeck()
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Deck:        d,
	})
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting riddle board SSH server on %s\n", flagSSHAddr)
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	fmt.Fprintf(out, "%d board%s completed\n", server.Completions(), plural(server.Completions()))
	return nil
}

func plural(n int64) string {
	if n == 1 {
		return ""
	}
	return "s"
}
