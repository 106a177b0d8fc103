package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/lettergrade/internal/output"
	"github.com/blackwell-systems/lettergrade/internal/watcher"
)

var (
	watchFlagRole     string
	watchFlagCompany  string
	watchFlagInterval time.Duration
	watchFlagNotify   bool
	watchFlagQuiet    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-score a draft whenever it is saved",
	Long: `Watch polls a cover letter draft and re-scores it each time its content
changes. Score movements and red flags that appear or are resolved are
printed as alerts, and optionally sent as desktop notifications.

Examples:
  lettergrade watch draft.md                       # ctrl-c to stop
  lettergrade watch draft.md --role "AI Researcher"
  lettergrade watch draft.md --interval 500ms --notify`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchFlagRole, "role", "", "Target role")
	watchCmd.Flags().StringVar(&watchFlagCompany, "company", "", "Company the letter is addressed to")
	watchCmd.Flags().DurationVar(&watchFlagInterval, "interval", 0, "Poll interval (default: watch.interval from config, 2s)")
	watchCmd.Flags().BoolVar(&watchFlagNotify, "notify", false, "Send desktop notifications for warnings and critical alerts")
	watchCmd.Flags().BoolVar(&watchFlagQuiet, "quiet", false, "Suppress terminal output, only send notifications")
	rootCmd.AddCommand(watchCmd)
}

// minWatchInterval keeps polling from spinning on the file.
const minWatchInterval = 100 * time.Millisecond

func runWatch(cmd *cobra.Command, args []string) error {
	req := scoreRequest{Role: watchFlagRole, Company: watchFlagCompany}
	role, err := req.resolve()
	if err != nil {
		return err
	}

	env, err := loadEnv()
	if err != nil {
		return err
	}

	interval := env.cfg.Watch.Interval
	if watchFlagInterval != 0 {
		interval = watchFlagInterval
	}
	if interval < minWatchInterval {
		return fmt.Errorf("interval must be at least %s, got %s", minWatchInterval, interval)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	out := cmd.OutOrStdout()
	if !watchFlagQuiet {
		fmt.Fprintf(out, "lettergrade watching %s... (checking every %s)\n", args[0], interval)
	}

	alertFn := func(a watcher.Alert) {
		if watchFlagNotify && a.Level != watcher.LevelInfo {
			_ = watcher.Notify(a)
		}
		if !watchFlagQuiet {
			printAlert(out, a)
		}
	}

	w := watcher.New(args[0], env.engine, interval, alertFn)
	w.Role = role
	w.Company = req.Company
	w.MaxInputChars = env.cfg.MaxInputChars
	w.Logger = env.log

	err = w.Run(ctx)
	if err == context.Canceled {
		if !watchFlagQuiet {
			fmt.Fprintln(out, "stopped")
		}
		return nil
	}
	return err
}

// printAlert formats and prints an alert to the terminal.
func printAlert(w io.Writer, a watcher.Alert) {
	timestamp := a.Time.Format("15:04:05")
	title := a.Title
	if a.Delta != 0 {
		title += " " + output.TrendArrow(a.Delta)
	}
	fmt.Fprintf(w, "[%s] %s %s\n", timestamp, alertIcon(a.Level), title)
	if a.Message != "" {
		fmt.Fprintf(w, "           %s\n", output.StyleMuted.Render(a.Message))
	}
}

// alertIcon returns the terminal indicator for an alert level.
func alertIcon(level string) string {
	switch level {
	case watcher.LevelCritical:
		return output.StyleError.Render("\xe2\x9c\x97") // ballot x
	case watcher.LevelWarning:
		return output.StyleWarning.Render("!")
	case watcher.LevelInfo:
		return output.StyleSuccess.Render("\xe2\x9c\x93") // check mark
	default:
		return " "
	}
}
