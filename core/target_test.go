package core

import "testing"

func TestParseTargets_SkipsBlanksKeepsDuplicatesAndOrder(t *testing.T) {
	// Given: a raw list with blanks and a duplicate
	raw := []string{"HOST-A", "  ", "HOST-A", "", "\t", "HOST-B"}

	// When
	targets := ParseTargets(raw, nil)

	// Then: blanks dropped, duplicate kept, relative order preserved
	want := []string{"HOST-A", "HOST-A", "HOST-B"}
	if len(targets) != len(want) {
		t.Fatalf("expected %d targets, got %d", len(want), len(targets))
	}
	for i, w := range want {
		if targets[i].Host != w {
			t.Errorf("target %d: expected %q, got %q", i, w, targets[i].Host)
		}
	}
}

func TestParseTargets_AttachesCredential(t *testing.T) {
	cred := &Credential{Username: "ops", Secret: "s"}
	targets := ParseTargets([]string{"HOST-A"}, cred)
	if len(targets) != 1 || targets[0].Credential != cred {
		t.Fatalf("credential not attached: %+v", targets)
	}
}

func TestTarget_IsLocal(t *testing.T) {
	cases := []struct {
		host      string
		localHost string
		want      bool
	}{
		{".", "WS01", true},
		{"localhost", "WS01", true},
		{"LOCALHOST", "WS01", true},
		{"WS01", "WS01", true},
		{"ws01", "WS01", true},
		{" WS01 ", "WS01", true},
		{"HOST-A", "WS01", false},
		{"WS011", "WS01", false},
		// an empty local identifier must never match arbitrary hosts
		{"", "WS01", false},
		{"HOST-A", "", false},
	}
	for _, c := range cases {
		got := Target{Host: c.host}.IsLocal(c.localHost)
		if got != c.want {
			t.Errorf("IsLocal(%q, local=%q) = %t, want %t", c.host, c.localHost, got, c.want)
		}
	}
}
