package constants

import "testing"

func TestSubdivisionTagForTehsil(t *testing.T) {
	cases := []struct {
		tehsil string
		want   string
	}{
		{"Phanda", SubdivisionTagPhanda},
		{"phanda", SubdivisionTagPhanda},
		{"  PHANDA  ", SubdivisionTagPhanda},
		{"Huzur", SubdivisionTagPhanda},
		{"Berasia", SubdivisionTagBerasia},
		{"berasia", SubdivisionTagBerasia},
		{"Goharganj", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SubdivisionTagForTehsil(tc.tehsil); got != tc.want {
			t.Errorf("SubdivisionTagForTehsil(%q) = %q, want %q", tc.tehsil, got, tc.want)
		}
	}
}

func TestLookupGPCode(t *testing.T) {
	if got := LookupGPCode(SubdivisionTagPhanda, "MENDORI"); got != "236194" {
		t.Errorf("LookupGPCode(PHN, MENDORI) = %q, want 236194", got)
	}
	// case-insensitive exact match
	if got := LookupGPCode(SubdivisionTagPhanda, "mendori"); got != "236194" {
		t.Errorf("LookupGPCode(PHN, mendori) = %q, want 236194", got)
	}
	if got := LookupGPCode(SubdivisionTagPhanda, " Mendori "); got != "236194" {
		t.Errorf("LookupGPCode trims whitespace, got %q", got)
	}
	if got := LookupGPCode(SubdivisionTagBerasia, "JAMUSAR"); got != "134252" {
		t.Errorf("LookupGPCode(BRS, JAMUSAR) = %q, want 134252", got)
	}
	// wrong subdivision table
	if got := LookupGPCode(SubdivisionTagBerasia, "MENDORI"); got != "" {
		t.Errorf("MENDORI should not resolve under Berasia, got %q", got)
	}
	if got := LookupGPCode("XYZ", "MENDORI"); got != "" {
		t.Errorf("unknown tag should resolve nothing, got %q", got)
	}
}

func TestGPCodePrefixForTag(t *testing.T) {
	if got := GPCodePrefixForTag(SubdivisionTagPhanda); got != "GS-PHN-" {
		t.Errorf("prefix for PHN = %q", got)
	}
	if got := GPCodePrefixForTag(SubdivisionTagBerasia); got != "GS-BRS-" {
		t.Errorf("prefix for BRS = %q", got)
	}
	if got := GPCodePrefixForTag("ZZZ"); got != "" {
		t.Errorf("prefix for unknown tag = %q, want empty", got)
	}
}
