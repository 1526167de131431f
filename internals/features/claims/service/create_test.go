package service

import (
	"testing"

	"vanadhikar_backend/internals/features/claims/model"
)

func TestBlocksNewFiling(t *testing.T) {
	cases := []struct {
		name   string
		status model.ClaimStatus
		blocks bool
	}{
		{"submitted blocks", model.StatusSubmitted, true},
		{"mapped blocks", model.StatusMappedByGramSabha, true},
		{"under subdivision review blocks", model.StatusUnderSubdivisionReview, true},
		{"forwarded to district blocks", model.StatusForwardedToDistrict, true},
		{"granted title blocks", model.StatusTitleGranted, true},
		{"subdivision rejection frees refiling", model.StatusRejectedBySubdivision, false},
		{"final rejection frees refiling", model.StatusFinalRejected, false},
		{"legacy subdivision rejection frees refiling", model.ClaimStatus("rejected_by_subdivision"), false},
		{"legacy final rejection frees refiling", model.ClaimStatus("final_rejected"), false},
		{"legacy active spelling blocks", model.ClaimStatus("under_district_review"), true},
		{"unclassifiable status blocks", model.ClaimStatus("pending??"), true},
		{"empty status blocks", model.ClaimStatus(""), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BlocksNewFiling(tc.status); got != tc.blocks {
				t.Errorf("BlocksNewFiling(%q) = %v, want %v", tc.status, got, tc.blocks)
			}
		})
	}
}
