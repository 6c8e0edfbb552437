package probe

// Indicator is one pending-reboot signal check. Each check is fail-soft:
// an inaccessible location reports absent (false), never an error.
type Indicator func() bool

// AnyIndicator ORs the signals. Any single positive indicator means a
// reboot is pending; the indicators are never ANDed, because each one
// individually signals an incomplete update/operation.
func AnyIndicator(indicators ...Indicator) bool {
	for _, in := range indicators {
		if in() {
			return true
		}
	}
	return false
}
