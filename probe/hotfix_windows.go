//go:build windows
// +build windows

package probe

import (
	"sort"
	"time"

	"github.com/yusufpapurcu/wmi"

	"corp/patchaudit/core"
)

// wmi class: Win32_QuickFixEngineering
type qfe struct {
	HotFixID    *string // e.g. "KB5030219"
	InstalledOn *string // date string, format varies by locale
}

// collectHotfix enumerates the installed-hotfix inventory and keeps the
// count plus the newest KB. Best effort: an unreachable WMI service yields
// an empty snapshot, not an error.
func collectHotfix() core.HotfixSnapshot {
	var items []qfe
	if err := wmi.QueryNamespace(
		"SELECT HotFixID, InstalledOn FROM Win32_QuickFixEngineering",
		&items, `root\cimv2`,
	); err != nil {
		return core.HotfixSnapshot{}
	}

	type entry struct {
		ID  string
		TS  time.Time
		Raw string
	}

	// parse dates as far as possible (Windows emits several formats)
	parseDate := func(s string) time.Time {
		layouts := []string{
			"1/2/2006", "01/02/2006", "2006-01-02",
			"02 Jan 2006", "Jan 02, 2006",
		}
		for _, l := range layouts {
			if t, err := time.Parse(l, s); err == nil {
				return t
			}
		}
		return time.Time{}
	}

	list := make([]entry, 0, len(items))
	for _, it := range items {
		e := entry{ID: core.SafeS(it.HotFixID), Raw: core.SafeS(it.InstalledOn)}
		e.TS = parseDate(e.Raw)
		list = append(list, e)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].TS.After(list[j].TS) })

	snap := core.HotfixSnapshot{Count: core.Int(len(list))}
	if len(list) > 0 {
		snap.LatestKB = core.Str(list[0].ID)
		if !list[0].TS.IsZero() {
			snap.LatestDate = core.Str(list[0].TS.Format("2006-01-02"))
		} else if list[0].Raw != "" {
			snap.LatestDate = core.Str(list[0].Raw)
		}
	}
	return snap
}
