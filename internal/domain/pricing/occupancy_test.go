package pricing

import "testing"

func TestOccupancyMultiplier(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"Single Occupancy", 1},
		{"Double Occupancy Per Person", 2},
		{"Triple Sharing", 3},
		{"QUAD SHARING", 4},
		{"quad room", 4},
		{"Extra Bed", 1},
		{"Per Person", 1},
		{"Infant", 1},
		{"", 1},
		// mixed labels resolve to the first keyword in check order
		{"double-triple combo", 2},
		{"single/double", 1},
	}

	for _, tc := range cases {
		if got := OccupancyMultiplier(tc.label); got != tc.want {
			t.Fatalf("OccupancyMultiplier(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}
