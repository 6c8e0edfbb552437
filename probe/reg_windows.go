//go:build windows
// +build windows

package probe

import "golang.org/x/sys/windows/registry"

// Registry access is read-only throughout. Absence of a key or value is a
// normal outcome and yields nil, never an error: "not configured" must not
// be conflated with "disabled".

// regOpen: open an HKLM key read-only; nil if it cannot be opened
func regOpen(path string) *registry.Key {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.QUERY_VALUE)
	if err != nil {
		return nil
	}
	return &k
}

// regKeyExists: true if the HKLM key can be opened at all
func regKeyExists(path string) bool {
	k := regOpen(path)
	if k == nil {
		return false
	}
	k.Close()
	return true
}

// regDWORD: read REG_DWORD under HKLM; nil when key or value is absent
func regDWORD(path, name string) *uint32 {
	k := regOpen(path)
	if k == nil {
		return nil
	}
	defer k.Close()
	v, _, err := k.GetIntegerValue(name)
	if err != nil {
		return nil
	}
	out := uint32(v)
	return &out
}

// regDWORDBool: DWORD as nullable bool (value == 1)
func regDWORDBool(path, name string) *bool {
	v := regDWORD(path, name)
	if v == nil {
		return nil
	}
	b := *v == 1
	return &b
}

// regMultiSZNonEmpty: true if a REG_MULTI_SZ value exists with content
func regMultiSZNonEmpty(path, name string) bool {
	k := regOpen(path)
	if k == nil {
		return false
	}
	defer k.Close()
	vals, _, err := k.GetStringsValue(name)
	return err == nil && len(vals) > 0
}
