package styles

import "testing"

func TestPriority(t *testing.T) {
	tests := []struct {
		priority string
		expected PriorityClass
	}{
		{"high", PriorityRed},
		{"medium", PriorityYellow},
		{"low", PriorityGreen},
		{"unknown", PriorityDefault},
		{"", PriorityDefault},
		{"HIGH", PriorityDefault}, // matching is exact
	}

	for _, tt := range tests {
		t.Run(tt.priority, func(t *testing.T) {
			if got := Priority(tt.priority); got != tt.expected {
				t.Errorf("Priority(%q) = %q, want %q", tt.priority, got, tt.expected)
			}
		})
	}
}

func TestPriorityClassesAreDistinct(t *testing.T) {
	seen := map[PriorityClass]string{}
	for _, p := range []string{"high", "medium", "low", "unknown"} {
		c := Priority(p)
		if prev, ok := seen[c]; ok {
			t.Errorf("Priority(%q) and Priority(%q) share class %q", p, prev, c)
		}
		seen[c] = p
	}

	if Priority("unknown") != Priority("") {
		t.Error("unknown and empty priorities should share the fallback class")
	}
}

func TestPriorityColor(t *testing.T) {
	tests := []struct {
		class    PriorityClass
		expected string
	}{
		{PriorityRed, "#EF4444"},
		{PriorityYellow, "#EAB308"},
		{PriorityGreen, "#10B981"},
		{PriorityDefault, "#6B7280"},
		{PriorityClass("other"), "#6B7280"},
	}

	for _, tt := range tests {
		t.Run(string(tt.class), func(t *testing.T) {
			if got := tt.class.Color(); string(got) != tt.expected {
				t.Errorf("%q.Color() = %q, want %q", tt.class, got, tt.expected)
			}
		})
	}
}
