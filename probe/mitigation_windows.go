//go:build windows
// +build windows

package probe

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"corp/patchaudit/core"
)

var (
	modkernel32                    = windows.NewLazySystemDLL("kernel32.dll")
	procGetProcessMitigationPolicy = modkernel32.NewProc("GetProcessMitigationPolicy")
	procGetSystemDEPPolicy         = modkernel32.NewProc("GetSystemDEPPolicy")
)

// PROCESS_MITIGATION_POLICY values we query
const (
	policyDEP  = 0 // ProcessDEPPolicy
	policyASLR = 1 // ProcessASLRPolicy
)

// PROCESS_MITIGATION_ASLR_POLICY: Flags bitfield
// bit0 BottomUpRandomization, bit1 ForceRelocateImages, bit2 HighEntropy
type aslrPolicy struct {
	Flags uint32
}

// collectMitigations queries the system-wide ASLR/DEP posture. On platforms
// without the mitigation interface both booleans stay null and the shared
// note explains why.
func collectMitigations() core.MitigationState {
	var st core.MitigationState

	if err := procGetProcessMitigationPolicy.Find(); err != nil {
		st.Note = core.Str("mitigation query not supported on this host: " + err.Error())
		return st
	}

	var pol aslrPolicy
	r1, _, callErr := procGetProcessMitigationPolicy.Call(
		uintptr(windows.CurrentProcess()),
		policyASLR,
		uintptr(unsafe.Pointer(&pol)),
		unsafe.Sizeof(pol),
	)
	if r1 == 0 {
		st.Note = core.Str("mitigation query failed: " + callErr.Error())
	} else {
		force := pol.Flags&aslrForceRelocate != 0
		high := pol.Flags&aslrHighEntropy != 0
		bottom := pol.Flags&aslrBottomUp != 0
		st.ASLREnabled = core.Bool(ASLREnabledFromFlags(force, high, bottom))
		st.ASLRDetail = core.Str(aslrDetail(force, high, bottom))
	}

	if err := procGetSystemDEPPolicy.Find(); err == nil {
		// no error return; result is the DEP_SYSTEM_POLICY_TYPE
		r1, _, _ := procGetSystemDEPPolicy.Call()
		policy := uint32(r1)
		st.DEPEnabled = core.Bool(policy != 0) // 0 = AlwaysOff
		st.DEPDetail = core.Str("system_dep_policy=" + depPolicyName(policy))
	}

	return st
}
