package model

import "testing"

func TestSlotForTier(t *testing.T) {
	var cl Claim

	if got := cl.SlotForTier(TierGramSabha); got != &cl.GsOfficer {
		t.Errorf("SlotForTier(%q) did not return the gram sabha slot", TierGramSabha)
	}
	if got := cl.SlotForTier(TierSubdivision); got != &cl.SubdivisionOfficer {
		t.Errorf("SlotForTier(%q) did not return the subdivision slot", TierSubdivision)
	}
	if got := cl.SlotForTier(TierDistrict); got != &cl.DistrictOfficer {
		t.Errorf("SlotForTier(%q) did not return the district slot", TierDistrict)
	}
	if got := cl.SlotForTier("claimant"); got != nil {
		t.Errorf("SlotForTier(claimant) = %v, want nil", got)
	}
}

func TestSlotColumnPrefix(t *testing.T) {
	cases := map[string]string{
		TierGramSabha:   "gs_officer_",
		TierSubdivision: "subdivision_officer_",
		TierDistrict:    "district_officer_",
		"claimant":      "",
	}
	for tier, want := range cases {
		if got := SlotColumnPrefix(tier); got != want {
			t.Errorf("SlotColumnPrefix(%q) = %q, want %q", tier, got, want)
		}
	}
}
