package watcher

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Notify sends a desktop notification for the given alert. On macOS it uses
// osascript, on Linux it tries notify-send. If neither is available, it falls
// back to printing to stderr.
func Notify(alert Alert) error {
	switch runtime.GOOS {
	case "darwin":
		return notifyMacOS(alert)
	case "linux":
		return notifyLinux(alert)
	default:
		return notifyFallback(os.Stderr, alert)
	}
}

// notifyMacOS sends a notification via osascript on macOS.
func notifyMacOS(alert Alert) error {
	script := fmt.Sprintf(
		`display notification %q with title "lettergrade" subtitle %q`,
		alert.Message, alert.Title,
	)
	cmd := exec.Command("osascript", "-e", script)
	if err := cmd.Run(); err != nil {
		return notifyFallback(os.Stderr, alert)
	}
	return nil
}

// notifyLinux sends a notification via notify-send on Linux. Critical alerts
// use the critical urgency.
func notifyLinux(alert Alert) error {
	_, err := exec.LookPath("notify-send")
	if err != nil {
		return notifyFallback(os.Stderr, alert)
	}

	urgency := "normal"
	if alert.Level == LevelCritical {
		urgency = "critical"
	}
	title := fmt.Sprintf("lettergrade: %s", alert.Title)
	cmd := exec.Command("notify-send", "-u", urgency, title, alert.Message)
	if err := cmd.Run(); err != nil {
		return notifyFallback(os.Stderr, alert)
	}
	return nil
}

// notifyFallback writes the alert to w when no desktop notification system
// is available.
func notifyFallback(w io.Writer, alert Alert) error {
	_, err := fmt.Fprintf(w, "[%s] %s: %s\n", alert.Level, alert.Title, alert.Message)
	return err
}
