package model

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		raw    string
		want   ClaimStatus
		wantOK bool
	}{
		// canonical set passes through
		{"Submitted", StatusSubmitted, true},
		{"MappedByGramSabha", StatusMappedByGramSabha, true},
		{"ForwardedToSubdivision", StatusForwardedToSubdivision, true},
		{"Title Granted", StatusTitleGranted, true},
		{"FinalRejected", StatusFinalRejected, true},
		// legacy snake_case set from the older portal build
		{"submitted", StatusSubmitted, true},
		{"mapped_by_gram_sabha", StatusMappedByGramSabha, true},
		{"forwarded_to_subdivision", StatusForwardedToSubdivision, true},
		{"under_subdivision_review", StatusUnderSubdivisionReview, true},
		{"approved_by_subdivision", StatusApprovedBySubdivision, true},
		{"rejected_by_subdivision", StatusRejectedBySubdivision, true},
		{"forwarded_to_district", StatusForwardedToDistrict, true},
		{"under_district_review", StatusUnderDistrictReview, true},
		{"final_approved", StatusTitleGranted, true},
		{"FinalApproved", StatusTitleGranted, true},
		{"title_granted", StatusTitleGranted, true},
		{"final_rejected", StatusFinalRejected, true},
		// junk
		{"granted", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := NormalizeStatus(tc.raw)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("NormalizeStatus(%q) = (%q, %v), want (%q, %v)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestActiveAndTerminalSets(t *testing.T) {
	for _, s := range ActiveStatuses {
		if s.IsTerminal() {
			t.Errorf("%q is both active and terminal", s)
		}
		if !s.IsActive() {
			t.Errorf("%q should report active", s)
		}
	}

	for _, s := range []ClaimStatus{StatusRejectedBySubdivision, StatusTitleGranted, StatusFinalRejected} {
		if !s.IsTerminal() {
			t.Errorf("%q should be terminal", s)
		}
		if s.IsActive() {
			t.Errorf("%q should not be active", s)
		}
	}

	if !StatusRejectedBySubdivision.IsRejected() || !StatusFinalRejected.IsRejected() {
		t.Error("rejected statuses should report IsRejected")
	}
	if StatusTitleGranted.IsRejected() {
		t.Error("Title Granted is terminal but not rejected")
	}
}

func TestActiveStatusStringsIncludesLegacySpellings(t *testing.T) {
	all := ActiveStatusStrings()
	seen := make(map[string]bool, len(all))
	for _, s := range all {
		seen[s] = true
	}
	for _, want := range []string{"Submitted", "submitted", "forwarded_to_subdivision", "ApprovedBySubdivision"} {
		if !seen[want] {
			t.Errorf("ActiveStatusStrings missing %q", want)
		}
	}
	for _, reject := range []string{"rejected_by_subdivision", "FinalRejected", "Title Granted"} {
		if seen[reject] {
			t.Errorf("ActiveStatusStrings should not contain %q", reject)
		}
	}
}

func TestTransitionRuleTable(t *testing.T) {
	// forwarding guards against an unmapped claim
	rule, ok := RuleFor(ActionForwardSubdivision)
	if !ok {
		t.Fatal("missing rule for forward_to_subdivision")
	}
	if rule.CanLeave(StatusSubmitted) {
		t.Error("an unmapped claim must not be forwardable")
	}
	if !rule.CanLeave(StatusMappedByGramSabha) {
		t.Error("a mapped claim must be forwardable")
	}

	// re-drawing the map is allowed
	mapRule, _ := RuleFor(ActionSaveMap)
	if !mapRule.CanLeave(StatusSubmitted) || !mapRule.CanLeave(StatusMappedByGramSabha) {
		t.Error("save-map must be allowed from Submitted and MappedByGramSabha")
	}
	if mapRule.CanLeave(StatusForwardedToSubdivision) {
		t.Error("save-map must not reopen a forwarded claim")
	}

	// district approval lands on Title Granted with slot tag "approved"
	approve, _ := RuleFor(ActionDistrictApprove)
	if approve.To != StatusTitleGranted {
		t.Errorf("district approve lands on %q, want Title Granted", approve.To)
	}
	if approve.Tag != "approved" {
		t.Errorf("district approve slot tag = %q, want approved", approve.Tag)
	}

	// nothing leaves a terminal state
	for action := range map[ClaimAction]struct{}{
		ActionSaveMap: {}, ActionForwardSubdivision: {}, ActionSubdivisionReview: {},
		ActionSubdivisionApprove: {}, ActionForwardDistrict: {}, ActionSubdivisionReject: {},
		ActionDistrictReview: {}, ActionDistrictApprove: {}, ActionDistrictReject: {},
	} {
		r, _ := RuleFor(action)
		for _, terminal := range []ClaimStatus{StatusRejectedBySubdivision, StatusTitleGranted, StatusFinalRejected} {
			if r.CanLeave(terminal) {
				t.Errorf("action %q may leave terminal status %q", action, terminal)
			}
		}
	}

	// every rule carries canned remarks and a slot tag
	for _, action := range []ClaimAction{
		ActionSaveMap, ActionForwardSubdivision, ActionSubdivisionReview,
		ActionSubdivisionApprove, ActionForwardDistrict, ActionSubdivisionReject,
		ActionDistrictReview, ActionDistrictApprove, ActionDistrictReject,
	} {
		r, ok := RuleFor(action)
		if !ok {
			t.Errorf("missing rule for %q", action)
			continue
		}
		if r.DefaultRemarks == "" || r.Tag == "" || r.Tier == "" {
			t.Errorf("rule for %q is missing tag/tier/remarks", action)
		}
	}
}
