package core

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestFailedReport_ShapeAndTimestamp(t *testing.T) {
	before := time.Now().UTC().Truncate(time.Second)
	r := FailedReport("HOST-A", "failed to connect or execute: boom")
	after := time.Now().UTC().Add(time.Second)

	if !r.Failed() {
		t.Fatal("expected Failed() on an all-null report with a note")
	}
	if r.Host != "HOST-A" {
		t.Errorf("host: got %q", r.Host)
	}
	if r.Note == nil || !strings.HasPrefix(*r.Note, "failed to connect or execute:") {
		t.Errorf("note: got %v", r.Note)
	}
	if r.GeneratedAt.Before(before) || r.GeneratedAt.After(after) {
		t.Errorf("generated_at %v outside [%v, %v]", r.GeneratedAt, before, after)
	}
	if r.GeneratedAt.Nanosecond() != 0 {
		t.Errorf("generated_at not second precision: %v", r.GeneratedAt)
	}
}

func TestHostReport_GeneratedAtMarshalsWithZSuffix(t *testing.T) {
	r := FailedReport("HOST-A", "x")
	raw, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	want := `"generated_at":"` + r.GeneratedAt.Format("2006-01-02T15:04:05") + `Z"`
	if !strings.Contains(string(raw), want) {
		t.Errorf("expected %s in %s", want, raw)
	}
}

func TestHostReport_DegradedVsFailed(t *testing.T) {
	// a partially-collected report is degraded, not failed
	r := HostReport{
		OS:   OSIdentity{Caption: Str("Windows Server 2022")},
		Note: Str("update module not found: no such interface"),
	}
	if r.Failed() {
		t.Error("report with observed data must not count as failed")
	}
	if !r.Degraded() {
		t.Error("report with a note must count as degraded")
	}

	clean := HostReport{OS: OSIdentity{Caption: Str("Windows 11")}}
	if clean.Degraded() || clean.Failed() {
		t.Error("clean report flagged")
	}
}

func TestSummarize(t *testing.T) {
	reports := []HostReport{
		{
			OS:            OSIdentity{Caption: Str("a")},
			PendingReboot: Bool(true),
			Updates:       UpdatePosture{MissingTotal: Int(4), MissingCritical: Int(2)},
		},
		{
			OS:            OSIdentity{Caption: Str("b")},
			PendingReboot: Bool(false),
			Updates:       UpdatePosture{MissingTotal: Int(1), MissingCritical: Int(0)},
			Note:          Str("mitigation query failed"),
		},
		FailedReport("HOST-C", "failed to connect or execute: timeout"),
	}

	s := Summarize(reports)
	if s.Targets != 3 || s.Collected != 2 || s.Failed != 1 || s.Degraded != 1 {
		t.Errorf("counters: %+v", s)
	}
	if s.PendingReboot != 1 {
		t.Errorf("pending reboot: %d", s.PendingReboot)
	}
	if s.MissingTotal != 5 || s.MissingCritical != 2 {
		t.Errorf("missing totals: %+v", s)
	}
}
