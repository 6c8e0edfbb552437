// Package prioritize ranks a host's missing-update catalog into a stable
// top-N selection by severity and reboot urgency.
package prioritize

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"corp/patchaudit/core"
)

// N is the fixed selection size.
const N = 10

// ErrNoCatalog marks the "could not determine" case: the catalog itself was
// never obtained (update module absent). Distinct from an empty catalog,
// which simply means the host is fully patched.
var ErrNoCatalog = errors.New("missing-update catalog could not be determined")

// SeverityRank maps a vendor severity label to an urgency rank, lower =
// more urgent. Matching is case-sensitive substring on purpose: the vendor
// emits fixed labels, anything else counts as unknown.
func SeverityRank(label string) int {
	switch {
	case strings.Contains(label, "Critical"):
		return 1
	case strings.Contains(label, "Important"):
		return 2
	case strings.Contains(label, "Moderate"):
		return 3
	case strings.Contains(label, "Low"):
		return 4
	default:
		return 5
	}
}

// IsSecurityUpdate is the title heuristic for security relevance.
func IsSecurityUpdate(title string) bool {
	return strings.Contains(title, "Security")
}

// Annotate fills the derived fields (severity rank, security flag) on a
// catalog in place and returns it.
func Annotate(catalog []core.MissingUpdate) []core.MissingUpdate {
	for i := range catalog {
		catalog[i].SeverityRank = SeverityRank(catalog[i].Severity)
		catalog[i].IsSecurityUpdate = IsSecurityUpdate(catalog[i].Title)
	}
	return catalog
}

// reboot-required entries sort before the rest within a severity rank
func rebootKey(u core.MissingUpdate) int {
	if u.RebootRequired {
		return 0
	}
	return 1
}

// Top selects the N most urgent entries: ascending by (severity rank,
// reboot urgency, title). The title tie-break makes the ordering total, so
// two runs over the same catalog always agree. The input is never mutated.
//
// A nil catalog returns ErrNoCatalog; an empty one returns an empty
// selection (fully patched).
func Top(catalog []core.MissingUpdate) (core.TopNSelection, error) {
	if catalog == nil {
		return nil, ErrNoCatalog
	}

	sorted := make([]core.MissingUpdate, len(catalog))
	copy(sorted, catalog)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		ra, rb := SeverityRank(a.Severity), SeverityRank(b.Severity)
		if ra != rb {
			return ra < rb
		}
		if rebootKey(a) != rebootKey(b) {
			return rebootKey(a) < rebootKey(b)
		}
		return a.Title < b.Title
	})

	if len(sorted) > N {
		sorted = sorted[:N]
	}
	return core.TopNSelection(sorted), nil
}
