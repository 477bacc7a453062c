package dashboard

import "testing"

func TestChange(t *testing.T) {
	cases := []struct {
		name     string
		current  int
		previous int
		want     string
	}{
		{"growth from zero", 5, 0, "+100%"},
		{"both zero", 0, 0, "0%"},
		{"zero from zero stays flat", 0, 0, "0%"},
		{"growth", 12, 10, "+20.0%"},
		{"decline", 8, 10, "-20.0%"},
		{"flat", 10, 10, "0.0%"},
		{"drop to zero", 0, 4, "-100.0%"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Change(tc.current, tc.previous); got != tc.want {
				t.Fatalf("Change(%d, %d) = %q, want %q", tc.current, tc.previous, got, tc.want)
			}
		})
	}
}
