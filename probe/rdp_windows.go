//go:build windows
// +build windows

package probe

import "corp/patchaudit/core"

const (
	pTerminalServer = `SYSTEM\CurrentControlSet\Control\Terminal Server`
	pRDPTcp         = `SYSTEM\CurrentControlSet\Control\Terminal Server\WinStations\RDP-Tcp`
)

// collectRDP reads the remote desktop switches. fDenyTSConnections is a
// deny flag, inverted here to report "enabled".
func collectRDP() core.RDPState {
	var st core.RDPState

	if deny := regDWORD(pTerminalServer, "fDenyTSConnections"); deny != nil {
		st.Enabled = core.Bool(*deny == 0)
	}
	if nla := regDWORD(pRDPTcp, "UserAuthentication"); nla != nil {
		st.NLARequired = core.Bool(*nla == 1)
	}
	return st
}
