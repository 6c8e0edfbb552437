package core

import "time"

// Every data field on a HostReport is independently nullable: nil means
// "not observed", which must never be conflated with false/zero.

// OSIdentity is the identity slice of the platform inventory.
type OSIdentity struct {
	Caption  *string    `json:"caption"`
	Version  *string    `json:"version"`
	Build    *string    `json:"build"`
	LastBoot *time.Time `json:"last_boot"`
}

// MissingUpdate is one entry of the not-yet-installed update catalog.
type MissingUpdate struct {
	KB               string    `json:"kb"`
	Title            string    `json:"title"`
	Severity         string    `json:"severity"` // vendor label, may be empty
	SeverityRank     int       `json:"severity_rank"`
	IsSecurityUpdate bool      `json:"is_security_update"`
	Category         string    `json:"category"`
	RebootRequired   bool      `json:"reboot_required"`
	Downloaded       bool      `json:"downloaded"`
	Installed        bool      `json:"installed"`
	SizeBytes        int64     `json:"size_bytes"`
	LastChanged      time.Time `json:"last_changed"`
}

// TopNSelection is the ranked head of one host's catalog, most urgent first.
type TopNSelection []MissingUpdate

// UpdatePosture summarizes the missing-update catalog for one host.
// Counts are nil when the update module was absent or the query failed;
// Catalog is nil in the same cases and empty when the host is fully patched.
type UpdatePosture struct {
	MissingTotal    *int            `json:"missing_total"`
	MissingCritical *int            `json:"missing_critical"`
	MissingSecurity *int            `json:"missing_security"`
	SampleTitles    []string        `json:"sample_titles,omitempty"` // at most 5, operator orientation only
	Catalog         []MissingUpdate `json:"catalog,omitempty"`
}

// MitigationState carries the system-wide ASLR/DEP posture. Note is the
// shared diagnostic set when the mitigation query interface itself is
// unavailable on the host.
type MitigationState struct {
	ASLREnabled *bool   `json:"aslr_enabled"`
	ASLRDetail  *string `json:"aslr_detail"`
	DEPEnabled  *bool   `json:"dep_enabled"`
	DEPDetail   *string `json:"dep_detail"`
	Note        *string `json:"note,omitempty"`
}

// SMBSigning holds the four independent signing switches.
type SMBSigning struct {
	ServerRequire *bool `json:"server_require"`
	ServerEnable  *bool `json:"server_enable"`
	ClientRequire *bool `json:"client_require"`
	ClientEnable  *bool `json:"client_enable"`
}

// RDPState holds the remote desktop switches.
type RDPState struct {
	Enabled     *bool `json:"enabled"`
	NLARequired *bool `json:"nla_required"`
}

// HotfixSnapshot summarizes the installed-hotfix inventory (QFE).
type HotfixSnapshot struct {
	Count      *int    `json:"count"`
	LatestKB   *string `json:"latest_kb"`
	LatestDate *string `json:"latest_date"`
}

// HostReport is the one record produced per target per run. It is immutable
// once emitted by the executor.
type HostReport struct {
	Host          string          `json:"host"`
	OS            OSIdentity      `json:"os"`
	PendingReboot *bool           `json:"pending_reboot"`
	Updates       UpdatePosture   `json:"updates"`
	Mitigations   MitigationState `json:"mitigations"`
	SMB           SMBSigning      `json:"smb_signing"`
	RDP           RDPState        `json:"rdp"`
	Hotfix        HotfixSnapshot  `json:"hotfix"`
	TopMissing    TopNSelection   `json:"top_missing,omitempty"`
	GeneratedAt   time.Time       `json:"generated_at"`
	Note          *string         `json:"note,omitempty"`
}

// Stamp sets the generation timestamp: UTC, second precision.
func (r *HostReport) Stamp() {
	r.GeneratedAt = time.Now().UTC().Truncate(time.Second)
}

// Degraded reports whether any collection degradation was noted.
func (r *HostReport) Degraded() bool {
	return r.Note != nil && *r.Note != ""
}

// FailedReport builds the all-null placeholder a target still gets when its
// collection fails entirely. The timestamp is taken at the moment of failure.
func FailedReport(host, note string) HostReport {
	r := HostReport{Host: host, Note: &note}
	r.Stamp()
	return r
}
