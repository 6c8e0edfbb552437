//go:build windows
// +build windows

package probe

import "corp/patchaudit/core"

const (
	pLanmanServer      = `SYSTEM\CurrentControlSet\Services\LanmanServer\Parameters`
	pLanmanWorkstation = `SYSTEM\CurrentControlSet\Services\LanmanWorkstation\Parameters`
)

// collectSMB reads the four signing switches independently. An absent value
// stays null: not configured is not the same as disabled.
func collectSMB() core.SMBSigning {
	return core.SMBSigning{
		ServerRequire: regDWORDBool(pLanmanServer, "RequireSecuritySignature"),
		ServerEnable:  regDWORDBool(pLanmanServer, "EnableSecuritySignature"),
		ClientRequire: regDWORDBool(pLanmanWorkstation, "RequireSecuritySignature"),
		ClientEnable:  regDWORDBool(pLanmanWorkstation, "EnableSecuritySignature"),
	}
}
