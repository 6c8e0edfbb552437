//go:build windows
// +build windows

package probe

import (
	"context"
	"strings"

	"corp/patchaudit/core"
)

// Collect runs the full probe set against the current host. Each probe is
// fail-soft: a dead data source leaves its portion of the report null and
// appends a one-line note; the remaining probes still run. The remote/local
// distinction is the executor's business, not ours.
func Collect(ctx context.Context) core.HostReport {
	var rep core.HostReport
	var notes []string

	if osID, err := collectOS(); err != nil {
		notes = append(notes, "os identity: "+err.Error())
	} else {
		rep.OS = osID
	}

	rep.PendingReboot = core.Bool(AnyIndicator(pendingRebootIndicators()...))

	rep.Mitigations = collectMitigations()

	rep.SMB = collectSMB()
	rep.RDP = collectRDP()
	rep.Hotfix = collectHotfix()

	if ctx.Err() == nil {
		// the WUA search is the slow probe, skip it once cancelled
		posture, note := collectUpdates()
		rep.Updates = posture
		if note != nil {
			notes = append(notes, *note)
		}
	} else {
		notes = append(notes, "cancelled before update query")
	}

	if len(notes) > 0 {
		rep.Note = core.Str(strings.Join(notes, "; "))
	}
	rep.Stamp()
	return rep
}
