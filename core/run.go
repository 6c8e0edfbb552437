package core

import (
	"time"

	"github.com/google/uuid"
)

// RunMetadata describes one audit run.
type RunMetadata struct {
	Tool      string    `json:"tool"`
	Version   string    `json:"version"`
	RunID     string    `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
	LocalHost string    `json:"local_host,omitempty"`
}

// NewRunMetadata stamps a fresh run with a UUID and start time.
func NewRunMetadata(tool, version, localHost string) RunMetadata {
	return RunMetadata{
		Tool:      tool,
		Version:   version,
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC().Truncate(time.Second),
		LocalHost: localHost,
	}
}

// Finish records the elapsed wall-clock time.
func (m *RunMetadata) Finish() {
	m.Duration = time.Since(m.StartedAt).Round(time.Second).String()
}

// RunSummary is the aggregate view rendered at the end of a run.
type RunSummary struct {
	Targets         int `json:"targets"`
	Collected       int `json:"collected"`
	Failed          int `json:"failed"`
	Degraded        int `json:"degraded"`
	PendingReboot   int `json:"pending_reboot"`
	MissingTotal    int `json:"missing_total"`
	MissingCritical int `json:"missing_critical"`
}

// Summarize folds the report sequence into run-level counters. A report
// counts as failed when every data field is null and a note is present.
func Summarize(reports []HostReport) RunSummary {
	s := RunSummary{Targets: len(reports)}
	for i := range reports {
		r := &reports[i]
		if r.Failed() {
			s.Failed++
			continue
		}
		s.Collected++
		if r.Degraded() {
			s.Degraded++
		}
		if SafeB(r.PendingReboot) {
			s.PendingReboot++
		}
		if r.Updates.MissingTotal != nil {
			s.MissingTotal += *r.Updates.MissingTotal
		}
		if r.Updates.MissingCritical != nil {
			s.MissingCritical += *r.Updates.MissingCritical
		}
	}
	return s
}

// Failed reports whether the collection for this host failed entirely
// (no data observed at all, note populated).
func (r *HostReport) Failed() bool {
	return r.Note != nil &&
		r.OS.Caption == nil && r.OS.Version == nil && r.OS.Build == nil &&
		r.PendingReboot == nil &&
		r.Updates.MissingTotal == nil &&
		r.Mitigations.ASLREnabled == nil && r.Mitigations.DEPEnabled == nil &&
		r.SMB.ServerRequire == nil && r.SMB.ServerEnable == nil &&
		r.SMB.ClientRequire == nil && r.SMB.ClientEnable == nil &&
		r.RDP.Enabled == nil && r.RDP.NLARequired == nil
}
