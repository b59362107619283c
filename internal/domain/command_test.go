package domain

import "testing"

func TestCommandFromString(t *testing.T) {
	for name, want := range commandNames {
		if got := CommandFromString(name); got != want {
			t.Errorf("CommandFromString(%q) = %v, want %v", name, got, want)
		}
		if got := want.String(); got != name {
			t.Errorf("%d.String() = %q, want %q", want, got, name)
		}
	}
	if got := CommandFromString("bake"); got != CommandUnknown {
		t.Errorf("CommandFromString(bake) = %v, want unknown", got)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{OutcomeApplied, "applied"},
		{OutcomeIgnored, "ignored"},
		{OutcomeStale, "stale"},
		{OutcomeFailed, "failed"},
		{Outcome(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestAreaString(t *testing.T) {
	if AreaResults.String() != "results" || AreaRecipe.String() != "recipe" || Area(9).String() != "unknown" {
		t.Fatal("unexpected area names")
	}
}

func TestFloat(t *testing.T) {
	a, b := Float(1.5), Float(1.5)
	if a == b || *a != *b {
		t.Fatal("Float should return distinct pointers to equal values")
	}
}
