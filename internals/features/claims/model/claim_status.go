package model

import "strings"

// ClaimStatus is the single canonical status vocabulary. The portal's older
// API emitted a parallel snake_case set; NormalizeStatus accepts both so
// rows written by the old build keep working, but new writes only ever emit
// the canonical strings.
type ClaimStatus string

const (
	StatusSubmitted              ClaimStatus = "Submitted"
	StatusMappedByGramSabha      ClaimStatus = "MappedByGramSabha"
	StatusForwardedToSubdivision ClaimStatus = "ForwardedToSubdivision"
	StatusUnderSubdivisionReview ClaimStatus = "UnderSubdivisionReview"
	StatusApprovedBySubdivision  ClaimStatus = "ApprovedBySubdivision"
	StatusRejectedBySubdivision  ClaimStatus = "RejectedBySubdivision"
	StatusForwardedToDistrict    ClaimStatus = "ForwardedToDistrict"
	StatusUnderDistrictReview    ClaimStatus = "UnderDistrictReview"
	StatusTitleGranted           ClaimStatus = "Title Granted"
	StatusFinalRejected          ClaimStatus = "FinalRejected"
)

// legacy snake_case (and alternate) spellings -> canonical
var legacyStatus = map[string]ClaimStatus{
	"submitted":                StatusSubmitted,
	"mapped_by_gram_sabha":     StatusMappedByGramSabha,
	"forwarded_to_subdivision": StatusForwardedToSubdivision,
	"under_subdivision_review": StatusUnderSubdivisionReview,
	"approved_by_subdivision":  StatusApprovedBySubdivision,
	"rejected_by_subdivision":  StatusRejectedBySubdivision,
	"forwarded_to_district":    StatusForwardedToDistrict,
	"under_district_review":    StatusUnderDistrictReview,
	"final_approved":           StatusTitleGranted,
	"FinalApproved":            StatusTitleGranted,
	"title_granted":            StatusTitleGranted,
	"final_rejected":           StatusFinalRejected,
}

var canonicalStatuses = map[ClaimStatus]struct{}{
	StatusSubmitted:              {},
	StatusMappedByGramSabha:      {},
	StatusForwardedToSubdivision: {},
	StatusUnderSubdivisionReview: {},
	StatusApprovedBySubdivision:  {},
	StatusRejectedBySubdivision:  {},
	StatusForwardedToDistrict:    {},
	StatusUnderDistrictReview:    {},
	StatusTitleGranted:           {},
	StatusFinalRejected:          {},
}

// NormalizeStatus maps any recognized wire string (canonical or legacy) to
// its canonical form. ok=false for an unknown string.
func NormalizeStatus(raw string) (ClaimStatus, bool) {
	s := strings.TrimSpace(raw)
	if _, ok := canonicalStatuses[ClaimStatus(s)]; ok {
		return ClaimStatus(s), true
	}
	if cs, ok := legacyStatus[s]; ok {
		return cs, true
	}
	if cs, ok := legacyStatus[strings.ToLower(s)]; ok {
		return cs, true
	}
	return "", false
}

// ActiveStatuses is the set that blocks a claimant from filing again.
var ActiveStatuses = []ClaimStatus{
	StatusSubmitted,
	StatusMappedByGramSabha,
	StatusForwardedToSubdivision,
	StatusUnderSubdivisionReview,
	StatusApprovedBySubdivision,
	StatusForwardedToDistrict,
	StatusUnderDistrictReview,
}

// ActiveStatusStrings returns every wire spelling of the active set, for
// use in SQL IN clauses over rows that may predate normalization.
func ActiveStatusStrings() []string {
	out := make([]string, 0, len(ActiveStatuses)*2)
	for _, s := range ActiveStatuses {
		out = append(out, string(s))
	}
	for raw, cs := range legacyStatus {
		if cs.IsActive() {
			out = append(out, raw)
		}
	}
	return out
}

// StatusSpellings returns every stored spelling of a canonical status, for
// SQL filters over rows that may predate normalization.
func StatusSpellings(s ClaimStatus) []string {
	out := []string{string(s)}
	for raw, cs := range legacyStatus {
		if cs == s && raw != string(s) {
			out = append(out, raw)
		}
	}
	return out
}

func (s ClaimStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func (s ClaimStatus) IsTerminal() bool {
	switch s {
	case StatusRejectedBySubdivision, StatusTitleGranted, StatusFinalRejected:
		return true
	}
	return false
}

func (s ClaimStatus) IsRejected() bool {
	return s == StatusRejectedBySubdivision || s == StatusFinalRejected
}

/* ===============================
   Transition table
=================================*/

// Tier names match the workflow slot each action writes.
const (
	TierGramSabha   = "gram_sabha"
	TierSubdivision = "subdivision"
	TierDistrict    = "district"
)

type ClaimAction string

const (
	ActionSaveMap            ClaimAction = "save_map"
	ActionForwardSubdivision ClaimAction = "forward_to_subdivision"
	ActionSubdivisionReview  ClaimAction = "subdivision_review"
	ActionSubdivisionApprove ClaimAction = "subdivision_approve"
	ActionForwardDistrict    ClaimAction = "forward_to_district"
	ActionSubdivisionReject  ClaimAction = "subdivision_reject"
	ActionDistrictReview     ClaimAction = "district_review"
	ActionDistrictApprove    ClaimAction = "district_approve"
	ActionDistrictReject     ClaimAction = "district_reject"
)

// TransitionRule: which statuses an action may leave from, where it lands,
// which tier slot it stamps, the slot action tag, and the canned remarks
// used when the officer sends none.
type TransitionRule struct {
	From           []ClaimStatus
	To             ClaimStatus
	Tier           string
	Tag            string
	DefaultRemarks string
}

var transitionRules = map[ClaimAction]TransitionRule{
	// Re-drawing the map before forwarding is allowed.
	ActionSaveMap: {
		From:           []ClaimStatus{StatusSubmitted, StatusMappedByGramSabha},
		To:             StatusMappedByGramSabha,
		Tier:           TierGramSabha,
		Tag:            "mapped",
		DefaultRemarks: "Parcel boundaries mapped by Gram Sabha",
	},
	ActionForwardSubdivision: {
		From:           []ClaimStatus{StatusMappedByGramSabha},
		To:             StatusForwardedToSubdivision,
		Tier:           TierGramSabha,
		Tag:            "forwarded",
		DefaultRemarks: "Verified and forwarded to subdivision",
	},
	ActionSubdivisionReview: {
		From:           []ClaimStatus{StatusForwardedToSubdivision},
		To:             StatusUnderSubdivisionReview,
		Tier:           TierSubdivision,
		Tag:            "review",
		DefaultRemarks: "Taken up for subdivision review",
	},
	ActionSubdivisionApprove: {
		From:           []ClaimStatus{StatusForwardedToSubdivision, StatusUnderSubdivisionReview},
		To:             StatusApprovedBySubdivision,
		Tier:           TierSubdivision,
		Tag:            "approved",
		DefaultRemarks: "Approved at subdivision level",
	},
	ActionForwardDistrict: {
		From:           []ClaimStatus{StatusForwardedToSubdivision, StatusUnderSubdivisionReview, StatusApprovedBySubdivision},
		To:             StatusForwardedToDistrict,
		Tier:           TierSubdivision,
		Tag:            "forwarded",
		DefaultRemarks: "Forwarded to district committee",
	},
	ActionSubdivisionReject: {
		From:           []ClaimStatus{StatusForwardedToSubdivision, StatusUnderSubdivisionReview},
		To:             StatusRejectedBySubdivision,
		Tier:           TierSubdivision,
		Tag:            "rejected",
		DefaultRemarks: "Rejected at subdivision level",
	},
	ActionDistrictReview: {
		From:           []ClaimStatus{StatusForwardedToDistrict, StatusApprovedBySubdivision},
		To:             StatusUnderDistrictReview,
		Tier:           TierDistrict,
		Tag:            "review",
		DefaultRemarks: "Taken up for district review",
	},
	ActionDistrictApprove: {
		From:           []ClaimStatus{StatusForwardedToDistrict, StatusUnderDistrictReview},
		To:             StatusTitleGranted,
		Tier:           TierDistrict,
		Tag:            "approved",
		DefaultRemarks: "Title granted under the Forest Rights Act",
	},
	ActionDistrictReject: {
		From:           []ClaimStatus{StatusForwardedToDistrict, StatusUnderDistrictReview},
		To:             StatusFinalRejected,
		Tier:           TierDistrict,
		Tag:            "rejected",
		DefaultRemarks: "Rejected at district level",
	},
}

// RuleFor returns the transition rule of an action.
func RuleFor(action ClaimAction) (TransitionRule, bool) {
	r, ok := transitionRules[action]
	return r, ok
}

// CanLeave reports whether the rule permits leaving from status.
func (r TransitionRule) CanLeave(from ClaimStatus) bool {
	for _, f := range r.From {
		if f == from {
			return true
		}
	}
	return false
}
