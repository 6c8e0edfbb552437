package probe

import (
	"fmt"
	"regexp"

	"corp/patchaudit/core"
)

// sampleTitleMax caps the per-host title sample on the report.
const sampleTitleMax = 5

var kbPattern = regexp.MustCompile(`KB\d{5,7}`)

// The two degradation notes stay distinct on purpose: an absent update
// module and a failing query call for different operator remediation.

func moduleMissingNote(cause error) string {
	return fmt.Sprintf("update module not found: %v", cause)
}

func queryFailedNote(cause error) string {
	return fmt.Sprintf("update module installed but query failed: %v", cause)
}

// ExtractKB picks the KB identifier from the structured article IDs when
// present, otherwise parses it out of the title. Empty when neither yields.
func ExtractKB(articleIDs []string, title string) string {
	for _, id := range articleIDs {
		if id == "" {
			continue
		}
		if kbPattern.MatchString(id) {
			return kbPattern.FindString(id)
		}
		// WUA reports bare numbers here
		return "KB" + id
	}
	return kbPattern.FindString(title)
}

// Summarize counts the catalog: total, critical-severity, and
// security-severity (the Important/Moderate union).
func Summarize(catalog []core.MissingUpdate) (total, critical, security int) {
	total = len(catalog)
	for _, u := range catalog {
		switch u.SeverityRank {
		case 1:
			critical++
		case 2, 3:
			security++
		}
	}
	return total, critical, security
}

// SampleTitles returns at most max titles for operator orientation.
func SampleTitles(catalog []core.MissingUpdate, max int) []string {
	if len(catalog) == 0 {
		return nil
	}
	if len(catalog) < max {
		max = len(catalog)
	}
	out := make([]string, 0, max)
	for _, u := range catalog[:max] {
		out = append(out, u.Title)
	}
	return out
}
