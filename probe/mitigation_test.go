package probe

import "testing"

// ASLR follows the same "any positive signal counts" policy as the
// pending-reboot check.
func TestASLREnabledFromFlags_AllCombinations(t *testing.T) {
	for _, force := range []bool{false, true} {
		for _, high := range []bool{false, true} {
			for _, bottom := range []bool{false, true} {
				got := ASLREnabledFromFlags(force, high, bottom)
				want := force || high || bottom
				if got != want {
					t.Errorf("ASLREnabledFromFlags(%t,%t,%t) = %t, want %t",
						force, high, bottom, got, want)
				}
			}
		}
	}
}

func TestASLRDetail(t *testing.T) {
	got := aslrDetail(true, false, true)
	want := "force_relocate=true high_entropy=false bottom_up=true"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDEPPolicyName(t *testing.T) {
	cases := map[uint32]string{
		0: "AlwaysOff",
		1: "AlwaysOn",
		2: "OptIn",
		3: "OptOut",
		9: "9",
	}
	for v, want := range cases {
		if got := depPolicyName(v); got != want {
			t.Errorf("depPolicyName(%d) = %q, want %q", v, got, want)
		}
	}
}
