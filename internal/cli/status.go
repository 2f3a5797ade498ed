package cli

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/0xMasayoshi/sumo/internal/config"
	"github.com/0xMasayoshi/sumo/internal/daemon"
	"github.com/0xMasayoshi/sumo/internal/shell"
)

const dialTimeout = 500 * time.Millisecond

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show shell and daemon status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

// statusReport is what `sumo status` prints.
type statusReport struct {
	DaemonPath   string
	DaemonArgs   []string
	DaemonFound  bool
	ShellRunning bool
	PortOpen     bool
}

func runStatus(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	spec, err := config.DaemonLaunchSpec(settings)
	if err != nil {
		return fmt.Errorf("failed to resolve daemon path: %w", err)
	}

	lockPath, err := config.GlobalLockFile()
	if err != nil {
		return err
	}
	running, err := shell.InstanceRunning(lockPath)
	if err != nil {
		return fmt.Errorf("failed to check shell lock: %w", err)
	}

	report := statusReport{
		DaemonPath:   spec.Path,
		DaemonArgs:   spec.Args,
		DaemonFound:  config.FileExists(spec.Path),
		ShellRunning: running,
		PortOpen:     portOpen("127.0.0.1", daemon.Port),
	}
	printStatus(cmd.OutOrStdout(), report)
	return nil
}

// portOpen reports whether something accepts TCP connections on host:port.
// Nothing is sent; the daemon's API is not part of the shell's contract.
func portOpen(host string, port int) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), dialTimeout)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

func printStatus(w io.Writer, r statusReport) {
	fmt.Fprintf(w, "  %s\n", styleBrand.Render("sumo"))
	fmt.Fprintf(w, "    %s     %s %s\n", styleLabel.Render("Daemon"), styleValue.Render(r.DaemonPath), found(r.DaemonFound))
	fmt.Fprintf(w, "    %s  %s\n", styleLabel.Render("Arguments"), styleValue.Render(strings.Join(r.DaemonArgs, " ")))
	fmt.Fprintf(w, "    %s      %s\n", styleLabel.Render("Shell"), yesNo(r.ShellRunning, "running", "not running"))
	fmt.Fprintf(w, "    %s  %s\n", styleLabel.Render("Port "+strconv.Itoa(daemon.Port)), yesNo(r.PortOpen, "accepting connections", "not reachable"))
	if !r.DaemonFound {
		fmt.Fprintf(w, "\n  %s\n", styleHint.Render("Set daemon.path in ~/.sumo/settings.yaml or SUMO_DAEMON_PATH to use another binary."))
	}
}

func found(ok bool) string {
	return yesNo(ok, "(found)", "(missing)")
}

func yesNo(ok bool, yes, no string) string {
	if ok {
		return styleSuccess.Render(yes)
	}
	return styleError.Render(no)
}
