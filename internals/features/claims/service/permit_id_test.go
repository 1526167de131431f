package service

import (
	"regexp"
	"testing"
)

func TestFormatFraPattaID(t *testing.T) {
	re := regexp.MustCompile(`^FRA-\d{4}-\d{3}$`)

	cases := []struct {
		year int
		seq  int64
		want string
	}{
		{2026, 1, "FRA-2026-001"},
		{2026, 42, "FRA-2026-042"},
		{2026, 999, "FRA-2026-999"},
		{2025, 7, "FRA-2025-007"},
	}
	for _, tc := range cases {
		got := FormatFraPattaID(tc.year, tc.seq)
		if got != tc.want {
			t.Errorf("FormatFraPattaID(%d, %d) = %q, want %q", tc.year, tc.seq, got, tc.want)
		}
		if !re.MatchString(got) {
			t.Errorf("%q does not match FRA-\\d{4}-\\d{3}", got)
		}
	}

	// the counter never resets, so the sequence may outgrow the padding
	if got := FormatFraPattaID(2027, 1234); got != "FRA-2027-1234" {
		t.Errorf("wide sequence = %q, want FRA-2027-1234", got)
	}
}

func TestFormatFraPattaIDStrictlyIncreasing(t *testing.T) {
	prev := ""
	for seq := int64(1); seq <= 25; seq++ {
		id := FormatFraPattaID(2026, seq)
		if id == prev {
			t.Fatalf("duplicate permit id %q at seq %d", id, seq)
		}
		if id < prev {
			t.Fatalf("permit ids not increasing: %q after %q", id, prev)
		}
		prev = id
	}
}
