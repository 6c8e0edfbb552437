//go:build windows
// +build windows

package probe

import (
	"time"

	"github.com/pkg/errors"
	"github.com/yusufpapurcu/wmi"

	"corp/patchaudit/core"
)

// wmi class: Win32_OperatingSystem (identity slice only)
type win32OperatingSystem struct {
	Caption        *string // e.g. "Microsoft Windows Server 2022 Standard"
	Version        *string // e.g. "10.0.20348"
	BuildNumber    *string // e.g. "20348"
	LastBootUpTime *string // WMI datetime yyyymmddHHMMSS.mmmmmmsUUU
}

// wmiTime converts a WMI datetime to time.Time (best effort)
func wmiTime(s *string) (time.Time, bool) {
	if s == nil || len(*s) < 14 {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102150405", (*s)[:14])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// collectOS reads the OS identity from the platform inventory. On failure
// the caller keeps all identity fields null and carries the cause as a note.
func collectOS() (core.OSIdentity, error) {
	var rows []win32OperatingSystem
	if err := wmi.QueryNamespace(
		`SELECT Caption,Version,BuildNumber,LastBootUpTime FROM Win32_OperatingSystem`,
		&rows, `root\cimv2`,
	); err != nil {
		return core.OSIdentity{}, errors.Wrap(err, "query Win32_OperatingSystem")
	}
	if len(rows) == 0 {
		return core.OSIdentity{}, errors.New("Win32_OperatingSystem returned no rows")
	}

	r := rows[0]
	id := core.OSIdentity{
		Caption: r.Caption,
		Version: r.Version,
		Build:   r.BuildNumber,
	}
	if t, ok := wmiTime(r.LastBootUpTime); ok {
		id.LastBoot = core.Time(t)
	}
	return id, nil
}
