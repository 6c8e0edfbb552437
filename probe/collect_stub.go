//go:build !windows
// +build !windows

package probe

import (
	"context"

	"corp/patchaudit/core"
)

// Collect on a non-windows build has no local probe surface. Remote targets
// are still auditable through the remote execution channel; a local target
// gets the all-null failed shape with an explanatory note.
func Collect(_ context.Context) core.HostReport {
	return core.FailedReport("", "local probes require a windows build; only remote targets can be audited from this platform")
}
