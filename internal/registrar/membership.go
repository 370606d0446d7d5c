package registrar

import (
	"context"
	"fmt"
	"strings"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
)

const relationshipHead = "head"

func (s *service) AddMember(ctx context.Context, principal domain.Principal, in AddMemberInput) (*HouseholdResult, error) {
	relationship := strings.ToLower(strings.TrimSpace(in.RelationshipToHead))
	if relationship == "" {
		return nil, fmt.Errorf("%w: relationship to head is required", domain.ErrInvalidArgument)
	}

	var result *HouseholdResult
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		household, err := s.loadHousehold(ctx, tx, principal, in.HouseholdExternalID)
		if err != nil {
			return err
		}
		if !household.Active {
			return fmt.Errorf("%w: household %s is deactivated", domain.ErrInvalidArgument, household.ExternalID)
		}

		resident, err := s.loadResident(ctx, tx, principal, in.ResidentExternalID)
		if err != nil {
			return err
		}
		if !resident.Active {
			return fmt.Errorf("%w: resident %s is deactivated", domain.ErrInvalidArgument, resident.ExternalID)
		}

		existing, err := tx.GetActiveMembership(ctx, resident.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: resident %s", domain.ErrActiveMembershipExists, resident.ExternalID)
		}

		familyNumber := in.FamilyNumber
		if familyNumber < 1 {
			familyNumber = 1
		}
		now := s.clock.Now()
		membership := &schema.HouseholdMembership{
			HouseholdID:        household.ID,
			ResidentID:         resident.ID,
			RelationshipToHead: relationship,
			FamilyPosition:     strings.TrimSpace(in.FamilyPosition),
			FamilyNumber:       familyNumber,
			Active:             true,
			StartedAt:          now,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := tx.CreateMembership(ctx, membership); err != nil {
			return err
		}

		if relationship == relationshipHead {
			if err := s.assignHead(ctx, tx, principal, household, resident.ExternalID); err != nil {
				return err
			}
		}

		household.UpdatedBy = principal.ID
		warnings, err := s.finishHouseholdWrite(ctx, tx, principal, household, "update")
		if err != nil {
			return err
		}
		if err := s.journal(ctx, tx, principal, domain.ChangeSubjectMembership, resident.ExternalID, household.BarangayCode, "join", nil); err != nil {
			return err
		}
		result = &HouseholdResult{Household: householdView(household), Warnings: warnings}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishHouseholdChange(ctx, principal, result.Household, "update")
	return result, nil
}

func (s *service) RemoveMember(ctx context.Context, principal domain.Principal, householdExternalID, residentExternalID string) (*HouseholdResult, error) {
	var result *HouseholdResult
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		household, err := s.loadHousehold(ctx, tx, principal, householdExternalID)
		if err != nil {
			return err
		}
		resident, err := s.loadResident(ctx, tx, principal, residentExternalID)
		if err != nil {
			return err
		}

		membership, err := tx.GetActiveMembership(ctx, resident.ID)
		if err != nil {
			return err
		}
		if membership == nil || membership.HouseholdID != household.ID {
			return fmt.Errorf("%w: resident %s is not an active member of household %s",
				domain.ErrNotFound, residentExternalID, householdExternalID)
		}

		if err := tx.EndMembership(ctx, membership.ID, s.clock.Now()); err != nil {
			return err
		}
		if household.HeadResidentID != nil && *household.HeadResidentID == resident.ID {
			household.HeadResidentID = nil
		}

		household.UpdatedBy = principal.ID
		warnings, err := s.finishHouseholdWrite(ctx, tx, principal, household, "update")
		if err != nil {
			return err
		}
		if err := s.journal(ctx, tx, principal, domain.ChangeSubjectMembership, resident.ExternalID, household.BarangayCode, "leave", nil); err != nil {
			return err
		}
		result = &HouseholdResult{Household: householdView(household), Warnings: warnings}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishHouseholdChange(ctx, principal, result.Household, "update")
	return result, nil
}
