package pkg

import "testing"

func TestMinorUnitConversion(t *testing.T) {
	cases := []struct {
		major float64
		minor int64
	}{
		{major: 15, minor: 1500},
		{major: 20, minor: 2000},
		{major: 19.99, minor: 1999},
		{major: 0.1, minor: 10},
	}
	for _, tc := range cases {
		if got := ToMinorUnits(tc.major); got != tc.minor {
			t.Fatalf("ToMinorUnits(%v): expected %d, got %d", tc.major, tc.minor, got)
		}
	}

	if got := FromMinorUnits(1500); got != 15 {
		t.Fatalf("expected 15, got %v", got)
	}
	if got := FromMinorUnits(1999); got != 19.99 {
		t.Fatalf("expected 19.99, got %v", got)
	}
}
