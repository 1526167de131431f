package service

import (
	"testing"

	"github.com/google/uuid"

	"vanadhikar_backend/internals/constants"
	"vanadhikar_backend/internals/features/claims/model"
)

func claimWithGPCode(code string) *model.Claim {
	return &model.Claim{
		ClaimID:     uuid.New(),
		ClaimGPCode: code,
	}
}

func TestGramSabhaActorMatches(t *testing.T) {
	actor := GramSabhaActor{ID: uuid.New(), GPCode: "GS-PHN-236194"}

	if !actor.Matches(claimWithGPCode("GS-PHN-236194")) {
		t.Error("GS actor must match its own gp code")
	}
	if actor.Matches(claimWithGPCode("GS-BRS-134252")) {
		t.Error("GS actor must not match another jurisdiction")
	}
	if actor.Matches(claimWithGPCode("GS-PHN-236101")) {
		t.Error("GS actor must not match a sibling GP in the same subdivision")
	}
	if actor.Matches(claimWithGPCode("")) {
		t.Error("GS actor must not match an unassigned claim")
	}

	unassigned := GramSabhaActor{ID: uuid.New()}
	if unassigned.Matches(claimWithGPCode("GS-PHN-236194")) {
		t.Error("an officer without a gp code must match nothing")
	}
}

func TestSubdivisionActorMatchesByPrefix(t *testing.T) {
	actor := SubdivisionActor{ID: uuid.New(), OfficerRole: constants.RoleSDLCOfficer, Subdivision: "Phanda"}

	if !actor.Matches(claimWithGPCode("GS-PHN-236194")) {
		t.Error("subdivision actor must match claims under its tag")
	}
	if !actor.Matches(claimWithGPCode("GS-PHN-236101")) {
		t.Error("subdivision actor must match every GP under its tag")
	}
	if actor.Matches(claimWithGPCode("GS-BRS-134252")) {
		t.Error("subdivision actor must not match the other subdivision")
	}
	if actor.Matches(claimWithGPCode("")) {
		t.Error("subdivision actor must not match an unassigned claim")
	}

	// unknown subdivision name fails closed
	unknown := SubdivisionActor{ID: uuid.New(), OfficerRole: constants.RoleSDLCOfficer, Subdivision: "Goharganj"}
	if unknown.Matches(claimWithGPCode("GS-PHN-236194")) {
		t.Error("an actor with an uncovered subdivision must match nothing")
	}
}

func TestDistrictAndSuperAdminSeeEverything(t *testing.T) {
	district := DistrictActor{ID: uuid.New(), OfficerRole: constants.RoleDLCOfficer}
	admin := SuperAdminActor{ID: uuid.New()}

	for _, code := range []string{"GS-PHN-236194", "GS-BRS-134252", ""} {
		if !district.Matches(claimWithGPCode(code)) {
			t.Errorf("district actor should match claim with gp code %q", code)
		}
		if !admin.Matches(claimWithGPCode(code)) {
			t.Errorf("SuperAdmin should match claim with gp code %q", code)
		}
	}
}

func TestClaimantActorMatchesOwnershipOnly(t *testing.T) {
	claimantID := uuid.New()
	actor := ClaimantActor{ID: claimantID}

	own := &model.Claim{ClaimID: uuid.New(), ClaimClaimantID: claimantID}
	other := &model.Claim{ClaimID: uuid.New(), ClaimClaimantID: uuid.New()}

	if !actor.Matches(own) {
		t.Error("claimant must see their own claim")
	}
	if actor.Matches(other) {
		t.Error("claimant must not see someone else's claim")
	}
}

func TestBuildOfficerActorFailsClosed(t *testing.T) {
	id := uuid.New()

	if _, ok := BuildOfficerActor(id, constants.RoleGramSabha, "GS-PHN-236194", "").(GramSabhaActor); !ok {
		t.Error("GramSabha role should build a GramSabhaActor")
	}
	if _, ok := BuildOfficerActor(id, constants.RoleBlockOfficer, "", "Berasia").(SubdivisionActor); !ok {
		t.Error("block_officer role should build a SubdivisionActor")
	}
	if _, ok := BuildOfficerActor(id, constants.RoleDistrictOfficer, "", "").(DistrictActor); !ok {
		t.Error("district_officer role should build a DistrictActor")
	}

	// deny-by-default: an unrecognized role matches nothing, never errors
	actor := BuildOfficerActor(id, "village_headman", "GS-PHN-236194", "Phanda")
	if _, ok := actor.(DeniedActor); !ok {
		t.Fatalf("unknown role built %T, want DeniedActor", actor)
	}
	if actor.Matches(claimWithGPCode("GS-PHN-236194")) {
		t.Error("DeniedActor must match nothing")
	}
}
