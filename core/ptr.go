package core

import "time"

// Pointer constructors and safe dereference helpers. Nil stays "" / false
// on deref so exporters never invent data for unobserved fields.

func Str(s string) *string        { return &s }
func Bool(b bool) *bool           { return &b }
func Int(i int) *int              { return &i }
func Time(t time.Time) *time.Time { return &t }

// SafeS: deref *string -> "" if nil
func SafeS(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// SafeB: deref *bool -> false if nil
func SafeB(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

// FormatTimePtr: *time.Time -> RFC3339 string ("" if nil/zero)
func FormatTimePtr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
