package probe

import "fmt"

// ASLR randomization sub-flags as exposed by the process mitigation policy.
const (
	aslrBottomUp      = 0x1
	aslrForceRelocate = 0x2
	aslrHighEntropy   = 0x4
)

// ASLREnabledFromFlags applies the "any positive signal counts" policy:
// ASLR is considered enabled when at least one randomization sub-flag is on.
func ASLREnabledFromFlags(forceRelocate, highEntropy, bottomUp bool) bool {
	return forceRelocate || highEntropy || bottomUp
}

func aslrDetail(forceRelocate, highEntropy, bottomUp bool) string {
	return fmt.Sprintf("force_relocate=%t high_entropy=%t bottom_up=%t",
		forceRelocate, highEntropy, bottomUp)
}

// depPolicyName: 0=AlwaysOff, 1=AlwaysOn, 2=OptIn, 3=OptOut
func depPolicyName(v uint32) string {
	switch v {
	case 0:
		return "AlwaysOff"
	case 1:
		return "AlwaysOn"
	case 2:
		return "OptIn"
	case 3:
		return "OptOut"
	default:
		return fmt.Sprintf("%d", v)
	}
}
