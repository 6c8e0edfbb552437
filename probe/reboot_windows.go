//go:build windows
// +build windows

package probe

// The three independent pending-reboot indicator locations. Any one of them
// being present is enough; see AnyIndicator.

const (
	pSessionManager = `SYSTEM\CurrentControlSet\Control\Session Manager`
	pWURebootReq    = `SOFTWARE\Microsoft\Windows\CurrentVersion\WindowsUpdate\Auto Update\RebootRequired`
	pCBSRebootPend  = `SOFTWARE\Microsoft\Windows\CurrentVersion\Component Based Servicing\RebootPending`
)

// stale rename operations queued for the next boot
func indicatorPendingFileRename() bool {
	return regMultiSZNonEmpty(pSessionManager, "PendingFileRenameOperations")
}

// update service flagged a required reboot
func indicatorWindowsUpdate() bool {
	return regKeyExists(pWURebootReq)
}

// component servicing has a reboot pending
func indicatorComponentServicing() bool {
	return regKeyExists(pCBSRebootPend)
}

func pendingRebootIndicators() []Indicator {
	return []Indicator{
		indicatorPendingFileRename,
		indicatorWindowsUpdate,
		indicatorComponentServicing,
	}
}
