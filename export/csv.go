// Package export serializes report sequences for output consumers: a CSV
// writer for tabular storage and a console summary for operators.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"corp/patchaudit/core"
)

var reportColumns = []string{
	"host",
	"os_caption", "os_version", "os_build", "last_boot",
	"pending_reboot",
	"missing_total", "missing_critical", "missing_security", "sample_titles",
	"aslr_enabled", "dep_enabled", "mitigation_note",
	"smb_server_require", "smb_server_enable", "smb_client_require", "smb_client_enable",
	"rdp_enabled", "rdp_nla_required",
	"hotfix_count", "hotfix_latest_kb", "hotfix_latest_date",
	"generated_at", "note",
}

// WriteReportsCSV writes one row per HostReport. Null fields stay empty
// cells; an output location that cannot be created is a fatal error for
// the caller, not a degradation.
func WriteReportsCSV(path string, reports []core.HostReport) error {
	f, err := createOutput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(reportColumns); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for i := range reports {
		if err := w.Write(reportRow(&reports[i])); err != nil {
			return errors.Wrapf(err, "write csv row for %s", reports[i].Host)
		}
	}
	w.Flush()
	return errors.Wrapf(w.Error(), "flush %s", path)
}

var topColumns = []string{
	"host", "rank", "kb", "title", "severity", "reboot_required",
	"is_security_update", "category", "size_bytes", "last_changed",
}

// WriteTopCSV writes one host's ranked selection, most urgent first.
func WriteTopCSV(path, host string, sel core.TopNSelection) error {
	f, err := createOutput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(topColumns); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for i, u := range sel {
		row := []string{
			host,
			strconv.Itoa(i + 1),
			u.KB,
			u.Title,
			u.Severity,
			strconv.FormatBool(u.RebootRequired),
			strconv.FormatBool(u.IsSecurityUpdate),
			u.Category,
			strconv.FormatInt(u.SizeBytes, 10),
			fmtTime(u.LastChanged),
		}
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "write csv row %d", i+1)
		}
	}
	w.Flush()
	return errors.Wrapf(w.Error(), "flush %s", path)
}

func createOutput(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create output dir %s", dir)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create output file %s", path)
	}
	return f, nil
}

func reportRow(r *core.HostReport) []string {
	return []string{
		r.Host,
		core.SafeS(r.OS.Caption),
		core.SafeS(r.OS.Version),
		core.SafeS(r.OS.Build),
		core.FormatTimePtr(r.OS.LastBoot),
		fmtBoolPtr(r.PendingReboot),
		fmtIntPtr(r.Updates.MissingTotal),
		fmtIntPtr(r.Updates.MissingCritical),
		fmtIntPtr(r.Updates.MissingSecurity),
		strings.Join(r.Updates.SampleTitles, "; "),
		fmtBoolPtr(r.Mitigations.ASLREnabled),
		fmtBoolPtr(r.Mitigations.DEPEnabled),
		core.SafeS(r.Mitigations.Note),
		fmtBoolPtr(r.SMB.ServerRequire),
		fmtBoolPtr(r.SMB.ServerEnable),
		fmtBoolPtr(r.SMB.ClientRequire),
		fmtBoolPtr(r.SMB.ClientEnable),
		fmtBoolPtr(r.RDP.Enabled),
		fmtBoolPtr(r.RDP.NLARequired),
		fmtIntPtr(r.Hotfix.Count),
		core.SafeS(r.Hotfix.LatestKB),
		core.SafeS(r.Hotfix.LatestDate),
		fmtTime(r.GeneratedAt),
		core.SafeS(r.Note),
	}
}

// null -> empty cell, observed -> "true"/"false"
func fmtBoolPtr(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}

func fmtIntPtr(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
