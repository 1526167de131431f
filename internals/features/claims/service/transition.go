package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"vanadhikar_backend/internals/features/claims/model"
)

/* ===============================
   Planning (pure)
=================================*/

// TransitionPlan is the computed outcome of an action before anything is
// written.
type TransitionPlan struct {
	From    model.ClaimStatus
	To      model.ClaimStatus
	Tier    string
	Tag     string
	Remarks string
}

// PlanTransition validates an action by an actor against one claim and
// returns what would change. No I/O; this is the whole state machine.
//
// Guard order matters: jurisdiction first (AccessDenied), then state
// (InvalidState), so an out-of-jurisdiction officer learns nothing about
// the claim's progress.
func PlanTransition(cl *model.Claim, actor Actor, action model.ClaimAction, remarks string) (TransitionPlan, error) {
	rule, ok := model.RuleFor(action)
	if !ok {
		return TransitionPlan{}, &InvalidStateError{Action: action, From: cl.ClaimStatus}
	}

	if actor.Tier() != rule.Tier || !actor.Matches(cl) {
		return TransitionPlan{}, ErrAccessDenied
	}

	// Rows written by the old portal build may carry a legacy spelling.
	from, ok := model.NormalizeStatus(string(cl.ClaimStatus))
	if !ok {
		from = cl.ClaimStatus
	}
	if !rule.CanLeave(from) {
		return TransitionPlan{}, &InvalidStateError{Action: action, From: from}
	}

	r := strings.TrimSpace(remarks)
	if r == "" {
		r = rule.DefaultRemarks
	}

	return TransitionPlan{
		From:    from,
		To:      rule.To,
		Tier:    rule.Tier,
		Tag:     rule.Tag,
		Remarks: r,
	}, nil
}

/* ===============================
   Applying (CAS write)
=================================*/

// TransitionInput carries one officer action against one claim.
type TransitionInput struct {
	ClaimID uuid.UUID
	Action  model.ClaimAction
	Actor   Actor
	Remarks string

	// Only for save-map: the drawn geometry and its parsed total.
	MapData   datatypes.JSON
	TotalArea *float64
}

// transitionUpdates renders a plan as the column map of the CAS write. The
// version bump rides along as an SQL expression so the compare and the
// increment hit the same statement.
func transitionUpdates(plan TransitionPlan, officerID uuid.UUID, now time.Time, in TransitionInput) map[string]interface{} {
	prefix := model.SlotColumnPrefix(plan.Tier)

	updates := map[string]interface{}{
		"claim_status":      plan.To,
		"claim_version":     gorm.Expr("claim_version + 1"),
		prefix + "id":       officerID,
		prefix + "action":   plan.Tag,
		prefix + "acted_at": now,
		prefix + "remarks":  plan.Remarks,
	}
	if in.Action == model.ActionSaveMap {
		if in.MapData != nil {
			updates["claim_map_data"] = in.MapData
		}
		if in.TotalArea != nil {
			updates["claim_total_area"] = *in.TotalArea
		}
	}
	return updates
}

// checkTransitionApplied maps the CAS row count to the write outcome: zero
// rows means another transition won the version compare.
func checkTransitionApplied(rowsAffected int64) error {
	if rowsAffected == 0 {
		return ErrStaleWrite
	}
	return nil
}

// ApplyTransition loads the claim, plans the action, and persists it as a
// compare-and-swap on claim_version plus an appended audit row. A stale
// version (someone else transitioned in between) surfaces as ErrStaleWrite,
// never last-write-wins.
func ApplyTransition(db *gorm.DB, in TransitionInput) (*model.Claim, error) {
	var cl model.Claim
	if err := db.Where("claim_id = ?", in.ClaimID).First(&cl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}

	plan, err := PlanTransition(&cl, in.Actor, in.Action, in.Remarks)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	officerID := in.Actor.ActorID()
	updates := transitionUpdates(plan, officerID, now, in)

	err = db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Claim{}).
			Where("claim_id = ? AND claim_version = ?", cl.ClaimID, cl.ClaimVersion).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if err := checkTransitionApplied(res.RowsAffected); err != nil {
			return err
		}

		audit := model.ClaimTransition{
			TransitionClaimID:     cl.ClaimID,
			TransitionFromStatus:  plan.From,
			TransitionToStatus:    plan.To,
			TransitionAction:      in.Action,
			TransitionOfficerID:   officerID,
			TransitionOfficerRole: in.Actor.Role(),
			TransitionRemarks:     plan.Remarks,
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return nil, err
	}

	// The CAS succeeded, so the in-memory copy plus the plan is the row's
	// new state; no reload round trip needed.
	cl.ClaimStatus = plan.To
	cl.ClaimVersion++
	slot := cl.SlotForTier(plan.Tier)
	slot.OfficerID = &officerID
	slot.Action = plan.Tag
	slot.ActedAt = &now
	slot.Remarks = plan.Remarks
	if in.Action == model.ActionSaveMap {
		if in.MapData != nil {
			cl.ClaimMapData = in.MapData
		}
		if in.TotalArea != nil {
			cl.ClaimTotalArea = *in.TotalArea
		}
	}
	return &cl, nil
}
