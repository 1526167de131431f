package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"vanadhikar_backend/internals/constants"
	"vanadhikar_backend/internals/features/claims/model"
)

func testClaim(status model.ClaimStatus, gpCode string) *model.Claim {
	return &model.Claim{
		ClaimID:         uuid.New(),
		ClaimFraPattaID: "FRA-2026-001",
		ClaimClaimantID: uuid.New(),
		ClaimGPCode:     gpCode,
		ClaimStatus:     status,
		ClaimVersion:    1,
	}
}

func phandaGS() GramSabhaActor {
	return GramSabhaActor{ID: uuid.New(), GPCode: "GS-PHN-236194"}
}

func TestPlanSaveMap(t *testing.T) {
	cl := testClaim(model.StatusSubmitted, "GS-PHN-236194")

	plan, err := PlanTransition(cl, phandaGS(), model.ActionSaveMap, "boundary drawn with panchayat members")
	if err != nil {
		t.Fatalf("save map: %v", err)
	}
	if plan.To != model.StatusMappedByGramSabha {
		t.Errorf("save map lands on %q, want MappedByGramSabha", plan.To)
	}
	if plan.Tier != model.TierGramSabha || plan.Tag != "mapped" {
		t.Errorf("save map stamps (%q, %q), want (gram_sabha, mapped)", plan.Tier, plan.Tag)
	}
	if plan.Remarks != "boundary drawn with panchayat members" {
		t.Errorf("officer remarks were replaced: %q", plan.Remarks)
	}
}

func TestPlanSaveMapOutOfJurisdiction(t *testing.T) {
	// officer assigned GS-PHN-236194, claim sits in GS-BRS-134252
	cl := testClaim(model.StatusSubmitted, "GS-BRS-134252")

	_, err := PlanTransition(cl, phandaGS(), model.ActionSaveMap, "")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("cross-jurisdiction save map: got %v, want ErrAccessDenied", err)
	}
	// nothing mutated
	if cl.ClaimStatus != model.StatusSubmitted {
		t.Errorf("claim status changed to %q on a denied action", cl.ClaimStatus)
	}
}

func TestPlanForwardRequiresMapped(t *testing.T) {
	cl := testClaim(model.StatusSubmitted, "GS-PHN-236194")

	_, err := PlanTransition(cl, phandaGS(), model.ActionForwardSubdivision, "")
	var stateErr *InvalidStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("forwarding an unmapped claim: got %v, want InvalidStateError", err)
	}
	if stateErr.From != model.StatusSubmitted {
		t.Errorf("InvalidStateError.From = %q, want Submitted", stateErr.From)
	}

	cl.ClaimStatus = model.StatusMappedByGramSabha
	plan, err := PlanTransition(cl, phandaGS(), model.ActionForwardSubdivision, "")
	if err != nil {
		t.Fatalf("forwarding a mapped claim: %v", err)
	}
	if plan.To != model.StatusForwardedToSubdivision {
		t.Errorf("forward lands on %q", plan.To)
	}
	if plan.Remarks == "" {
		t.Error("empty remarks should fall back to the canned message")
	}
}

func TestPlanJurisdictionBeforeState(t *testing.T) {
	// an out-of-jurisdiction officer must get AccessDenied, not a state
	// hint, even when the state would also be wrong
	cl := testClaim(model.StatusSubmitted, "GS-BRS-134252")
	_, err := PlanTransition(cl, phandaGS(), model.ActionForwardSubdivision, "")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("got %v, want ErrAccessDenied", err)
	}
}

func TestPlanSubdivisionFlow(t *testing.T) {
	sdlc := SubdivisionActor{ID: uuid.New(), OfficerRole: constants.RoleSDLCOfficer, Subdivision: "Phanda"}
	cl := testClaim(model.StatusForwardedToSubdivision, "GS-PHN-236194")

	plan, err := PlanTransition(cl, sdlc, model.ActionSubdivisionReview, "")
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if plan.To != model.StatusUnderSubdivisionReview {
		t.Errorf("review lands on %q", plan.To)
	}

	cl.ClaimStatus = model.StatusUnderSubdivisionReview
	plan, err = PlanTransition(cl, sdlc, model.ActionSubdivisionApprove, "")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if plan.To != model.StatusApprovedBySubdivision {
		t.Errorf("approve lands on %q", plan.To)
	}

	cl.ClaimStatus = model.StatusApprovedBySubdivision
	plan, err = PlanTransition(cl, sdlc, model.ActionForwardDistrict, "")
	if err != nil {
		t.Fatalf("forward to district: %v", err)
	}
	if plan.To != model.StatusForwardedToDistrict {
		t.Errorf("forward lands on %q", plan.To)
	}

	// subdivision mutation is jurisdiction-checked like listing
	berasia := SubdivisionActor{ID: uuid.New(), OfficerRole: constants.RoleSDLCOfficer, Subdivision: "Berasia"}
	cl.ClaimStatus = model.StatusForwardedToSubdivision
	if _, err := PlanTransition(cl, berasia, model.ActionSubdivisionApprove, ""); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("cross-subdivision approve: got %v, want ErrAccessDenied", err)
	}
}

func TestPlanDistrictFinalApprove(t *testing.T) {
	dlc := DistrictActor{ID: uuid.New(), OfficerRole: constants.RoleDLCOfficer}
	cl := testClaim(model.StatusForwardedToDistrict, "GS-PHN-236194")

	plan, err := PlanTransition(cl, dlc, model.ActionDistrictApprove, "")
	if err != nil {
		t.Fatalf("final approve: %v", err)
	}
	if plan.To != model.StatusTitleGranted {
		t.Errorf("final approve lands on %q, want Title Granted", plan.To)
	}
	if plan.Tag != "approved" {
		t.Errorf("district slot action = %q, want approved", plan.Tag)
	}

	// terminal: no further transitions
	cl.ClaimStatus = model.StatusTitleGranted
	if _, err := PlanTransition(cl, dlc, model.ActionDistrictReject, ""); err == nil {
		t.Error("a granted title must not be rejectable")
	}
}

func TestPlanTierGate(t *testing.T) {
	cl := testClaim(model.StatusForwardedToDistrict, "GS-PHN-236194")

	// a GS officer cannot perform a district action even in jurisdiction
	if _, err := PlanTransition(cl, phandaGS(), model.ActionDistrictApprove, ""); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("GS performing district action: got %v, want ErrAccessDenied", err)
	}

	// a subdivision officer cannot grant title
	sdlc := SubdivisionActor{ID: uuid.New(), OfficerRole: constants.RoleSDLCOfficer, Subdivision: "Phanda"}
	if _, err := PlanTransition(cl, sdlc, model.ActionDistrictApprove, ""); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("SDLC performing district action: got %v, want ErrAccessDenied", err)
	}
}

func TestPlanLegacyStatusRecognized(t *testing.T) {
	// a row written by the old build carries snake_case
	dlc := DistrictActor{ID: uuid.New(), OfficerRole: constants.RoleDistrictOfficer}
	cl := testClaim(model.ClaimStatus("forwarded_to_district"), "GS-BRS-134252")

	plan, err := PlanTransition(cl, dlc, model.ActionDistrictReview, "")
	if err != nil {
		t.Fatalf("legacy-status review: %v", err)
	}
	if plan.From != model.StatusForwardedToDistrict {
		t.Errorf("legacy status normalized to %q", plan.From)
	}
	if plan.To != model.StatusUnderDistrictReview {
		t.Errorf("review lands on %q", plan.To)
	}
}

func TestTransitionUpdatesStampTierSlot(t *testing.T) {
	plan := TransitionPlan{
		From:    model.StatusUnderDistrictReview,
		To:      model.StatusTitleGranted,
		Tier:    model.TierDistrict,
		Tag:     "approved",
		Remarks: "Title granted under the Forest Rights Act",
	}
	officerID := uuid.New()
	now := time.Now()

	updates := transitionUpdates(plan, officerID, now, TransitionInput{Action: model.ActionDistrictApprove})

	if updates["claim_status"] != model.StatusTitleGranted {
		t.Errorf("claim_status = %v, want Title Granted", updates["claim_status"])
	}
	if _, ok := updates["claim_version"]; !ok {
		t.Error("claim_version bump missing from the write")
	}
	if updates["district_officer_id"] != officerID {
		t.Errorf("district_officer_id = %v, want %v", updates["district_officer_id"], officerID)
	}
	if updates["district_officer_action"] != "approved" {
		t.Errorf("district_officer_action = %v", updates["district_officer_action"])
	}
	if updates["district_officer_remarks"] != plan.Remarks {
		t.Errorf("district_officer_remarks = %v", updates["district_officer_remarks"])
	}
	// a district action must not touch the other tier slots or the map
	for _, key := range []string{"gs_officer_id", "subdivision_officer_id", "claim_map_data", "claim_total_area"} {
		if _, ok := updates[key]; ok {
			t.Errorf("district approve wrote %q", key)
		}
	}
}

func TestTransitionUpdatesSaveMapCarriesGeometry(t *testing.T) {
	plan := TransitionPlan{
		From:    model.StatusSubmitted,
		To:      model.StatusMappedByGramSabha,
		Tier:    model.TierGramSabha,
		Tag:     "mapped",
		Remarks: "Parcel boundaries mapped by Gram Sabha",
	}
	area := 2.5
	in := TransitionInput{
		Action:    model.ActionSaveMap,
		MapData:   datatypes.JSON(`{"areas":[{"area":2.5}]}`),
		TotalArea: &area,
	}

	updates := transitionUpdates(plan, uuid.New(), time.Now(), in)

	if _, ok := updates["claim_map_data"]; !ok {
		t.Error("save map dropped the drawn geometry")
	}
	if updates["claim_total_area"] != 2.5 {
		t.Errorf("claim_total_area = %v, want 2.5", updates["claim_total_area"])
	}
	if _, ok := updates["gs_officer_id"]; !ok {
		t.Error("save map must stamp the gram sabha slot")
	}
}

func TestCheckTransitionApplied(t *testing.T) {
	if err := checkTransitionApplied(0); !errors.Is(err, ErrStaleWrite) {
		t.Errorf("zero rows: got %v, want ErrStaleWrite", err)
	}
	if err := checkTransitionApplied(1); err != nil {
		t.Errorf("one row: got %v, want nil", err)
	}
}
