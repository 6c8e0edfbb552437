package probe

import "testing"

// All 2^3 indicator combinations: any single positive signal means a
// pending reboot; all-absent means no reboot.
func TestAnyIndicator_AllCombinations(t *testing.T) {
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			for _, c := range []bool{false, true} {
				fix := func(v bool) Indicator { return func() bool { return v } }

				got := AnyIndicator(fix(a), fix(b), fix(c))
				want := a || b || c
				if got != want {
					t.Errorf("AnyIndicator(%t,%t,%t) = %t, want %t", a, b, c, got, want)
				}
			}
		}
	}
}

func TestAnyIndicator_NoIndicators(t *testing.T) {
	if AnyIndicator() {
		t.Error("no indicators must mean no pending reboot")
	}
}

func TestAnyIndicator_ShortCircuits(t *testing.T) {
	calls := 0
	counting := func(v bool) Indicator {
		return func() bool {
			calls++
			return v
		}
	}
	if !AnyIndicator(counting(true), counting(false)) {
		t.Fatal("expected true")
	}
	if calls != 1 {
		t.Errorf("expected short circuit after first positive, got %d calls", calls)
	}
}
