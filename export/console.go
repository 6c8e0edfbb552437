package export

import (
	"fmt"
	"io"
	"strings"

	"corp/patchaudit/core"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

func colorize(text, color string) string {
	return color + text + colorReset
}

// ConsoleSummary renders the per-target one-liners plus the run totals.
// Every degradation note collected during the run shows up here; nothing
// is swallowed silently.
func ConsoleSummary(w io.Writer, meta core.RunMetadata, reports []core.HostReport) {
	fmt.Fprintf(w, "%s %s  run %s\n", meta.Tool, meta.Version, meta.RunID)
	fmt.Fprintln(w, strings.Repeat("-", 70))

	for i := range reports {
		r := &reports[i]
		switch {
		case r.Failed():
			fmt.Fprintf(w, "[%s] %s  %s\n", colorize("FAIL", colorRed), r.Host, core.SafeS(r.Note))
		case r.Degraded():
			fmt.Fprintf(w, "[%s] %s  %s\n", colorize("WARN", colorYellow), r.Host, core.SafeS(r.Note))
		default:
			fmt.Fprintf(w, "[ %s ] %s  %s\n", colorize("OK", colorGreen), r.Host, hostLine(r))
		}
		if !r.Failed() {
			fmt.Fprintf(w, "       %s\n", hostDetail(r))
		}
	}

	s := core.Summarize(reports)
	fmt.Fprintln(w, strings.Repeat("-", 70))
	fmt.Fprintf(w, "targets: %d  collected: %d  failed: %d  degraded: %d\n",
		s.Targets, s.Collected, s.Failed, s.Degraded)
	fmt.Fprintf(w, "pending reboot: %d  missing updates: %d (%s critical)\n",
		s.PendingReboot, s.MissingTotal, colorize(fmt.Sprintf("%d", s.MissingCritical), colorCyan))
	if meta.Duration != "" {
		fmt.Fprintf(w, "duration: %s\n", meta.Duration)
	}
}

func hostLine(r *core.HostReport) string {
	return core.SafeS(r.OS.Caption)
}

func hostDetail(r *core.HostReport) string {
	parts := []string{
		"reboot_pending=" + nbool(r.PendingReboot),
		"missing=" + nint(r.Updates.MissingTotal),
		"critical=" + nint(r.Updates.MissingCritical),
		"aslr=" + nbool(r.Mitigations.ASLREnabled),
		"dep=" + nbool(r.Mitigations.DEPEnabled),
		"rdp=" + nbool(r.RDP.Enabled),
	}
	return strings.Join(parts, " ")
}

// ConsoleTop renders a ranked selection as a small table.
func ConsoleTop(w io.Writer, host string, sel core.TopNSelection) {
	if len(sel) == 0 {
		fmt.Fprintf(w, "%s: no missing updates, host is fully patched\n", host)
		return
	}
	fmt.Fprintf(w, "top %d missing updates for %s\n", len(sel), host)
	for i, u := range sel {
		reboot := ""
		if u.RebootRequired {
			reboot = " " + colorize("[reboot]", colorYellow)
		}
		sev := u.Severity
		if sev == "" {
			sev = "Unknown"
		}
		fmt.Fprintf(w, "%2d. %-10s %-9s %s%s\n", i+1, u.KB, sev, u.Title, reboot)
	}
}

// null-aware render: unobserved prints as "?"
func nbool(p *bool) string {
	if p == nil {
		return "?"
	}
	return fmt.Sprintf("%t", *p)
}

func nint(p *int) string {
	if p == nil {
		return "?"
	}
	return fmt.Sprintf("%d", *p)
}
