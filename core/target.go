package core

import "strings"

// Credential is an opaque handle the caller owns. The core only passes it
// through to the remote execution channel; it is never persisted or
// serialized into any output.
type Credential struct {
	Username string `json:"-"`
	Secret   string `json:"-"`
}

// Target identifies one host to audit.
type Target struct {
	Host       string
	Credential *Credential
}

// ParseTargets builds the target list from raw host identifiers.
// Blank/whitespace-only entries are dropped; duplicates and relative order
// are kept as-is (every entry is collected independently).
func ParseTargets(hosts []string, cred *Credential) []Target {
	out := make([]Target, 0, len(hosts))
	for _, h := range hosts {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		out = append(out, Target{Host: h, Credential: cred})
	}
	return out
}

// IsLocal reports whether the target resolves to the machine we run on.
// localHost is resolved once at process start and passed in explicitly so
// the comparison stays testable without touching the environment.
func (t Target) IsLocal(localHost string) bool {
	h := strings.TrimSpace(t.Host)
	if h == "." {
		return true
	}
	return strings.EqualFold(h, "localhost") || (localHost != "" && strings.EqualFold(h, localHost))
}
