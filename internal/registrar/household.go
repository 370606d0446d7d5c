package registrar

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"github.com/openbarangay/registry/internal/deriver"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/identity"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
	"github.com/openbarangay/registry/internal/vault"
)

func (s *service) CreateHousehold(ctx context.Context, principal domain.Principal, in CreateHouseholdInput) (*HouseholdResult, error) {
	if err := requireInScope(principal, in.BarangayCode); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.HouseNumber) == "" {
		return nil, fmt.Errorf("%w: house number is required", domain.ErrInvalidArgument)
	}

	var result *HouseholdResult
	err := s.withRetry(ctx, func() error {
		return s.store.Transaction(ctx, func(tx store.Store) error {
			assignment, err := s.generator.Generate(ctx, tx, identity.Location{
				BarangayCode:    in.BarangayCode,
				SubdivisionName: in.SubdivisionName,
				StreetName:      in.StreetName,
				HouseNumber:     in.HouseNumber,
			})
			if err != nil {
				return err
			}

			existing, err := tx.GetHouseholdByCode(ctx, assignment.Code, domain.NationalScope())
			if err != nil {
				return err
			}
			if existing != nil {
				return fmt.Errorf("%w: household code %s is already registered", domain.ErrInvalidArgument, assignment.Code)
			}

			now := s.clock.Now()
			household := &schema.Household{
				ExternalID:    s.newID(),
				Code:          string(assignment.Code),
				BarangayCode:  string(in.BarangayCode),
				SubdivisionID: assignment.SubdivisionID,
				StreetID:      assignment.StreetID,
				HouseNumber:   strings.TrimSpace(in.HouseNumber),
				MonthlyIncome: in.MonthlyIncome,
				Active:        true,
				CreatedBy:     principal.ID,
				UpdatedBy:     principal.ID,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := tx.CreateHousehold(ctx, household); err != nil {
				return err
			}

			warnings, err := s.finishHouseholdWrite(ctx, tx, principal, household, "create")
			if err != nil {
				return err
			}
			result = &HouseholdResult{Household: householdView(household), Warnings: warnings}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.publishHouseholdChange(ctx, principal, result.Household, "create")
	return result, nil
}

func (s *service) UpdateHousehold(ctx context.Context, principal domain.Principal, externalID string, in UpdateHouseholdInput) (*HouseholdResult, error) {
	var result *HouseholdResult
	err := s.withRetry(ctx, func() error {
		return s.store.Transaction(ctx, func(tx store.Store) error {
			household, err := s.loadHousehold(ctx, tx, principal, externalID)
			if err != nil {
				return err
			}

			if in.MonthlyIncome != nil {
				household.MonthlyIncome = in.MonthlyIncome
			} else if in.ClearIncome {
				household.MonthlyIncome = nil
			}

			if in.HeadResidentExternalID != nil {
				if err := s.assignHead(ctx, tx, principal, household, *in.HeadResidentExternalID); err != nil {
					return err
				}
			}

			household.UpdatedBy = principal.ID
			warnings, err := s.finishHouseholdWrite(ctx, tx, principal, household, "update")
			if err != nil {
				return err
			}
			result = &HouseholdResult{Household: householdView(household), Warnings: warnings}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.publishHouseholdChange(ctx, principal, result.Household, "update")
	return result, nil
}

func (s *service) GetHousehold(ctx context.Context, principal domain.Principal, externalID string) (*HouseholdView, error) {
	household, err := s.store.GetHouseholdByExternalID(ctx, externalID, principal.Scope)
	if err != nil {
		return nil, err
	}
	if household == nil {
		return nil, fmt.Errorf("%w: household %s", domain.ErrNotFound, externalID)
	}
	view := householdView(household)
	return &view, nil
}

func (s *service) SearchHouseholds(ctx context.Context, principal domain.Principal, term string, limit int, offset uint64) ([]HouseholdView, uint64, error) {
	rows, total, err := s.store.SearchHouseholds(ctx, store.HouseholdSearchFilter{
		Term:   term,
		Scope:  principal.Scope,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, err
	}

	views := make([]HouseholdView, 0, len(rows))
	for i := range rows {
		views = append(views, householdView(&rows[i]))
	}
	return views, total, nil
}

func (s *service) DeactivateHousehold(ctx context.Context, principal domain.Principal, externalID string) error {
	var view HouseholdView
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		household, err := s.loadHousehold(ctx, tx, principal, externalID)
		if err != nil {
			return err
		}

		// Dissolution closes every remaining membership first
		memberships, err := tx.ListActiveMemberships(ctx, household.ID)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		for _, membership := range memberships {
			if err := tx.EndMembership(ctx, membership.ID, now); err != nil {
				return err
			}
		}

		household.Active = false
		household.HeadResidentID = nil
		household.UpdatedBy = principal.ID
		if _, err := s.finishHouseholdWrite(ctx, tx, principal, household, "deactivate"); err != nil {
			return err
		}
		view = householdView(household)
		return nil
	})
	if err != nil {
		return err
	}

	s.publishHouseholdChange(ctx, principal, view, "deactivate")
	return nil
}

// loadHousehold fetches a household for mutation, enforcing scope
func (s *service) loadHousehold(ctx context.Context, tx store.Store, principal domain.Principal, externalID string) (*schema.Household, error) {
	household, err := tx.GetHouseholdByExternalID(ctx, externalID, principal.Scope)
	if err != nil {
		return nil, err
	}
	if household == nil {
		return nil, fmt.Errorf("%w: household %s", domain.ErrNotFound, externalID)
	}
	return household, nil
}

// assignHead validates the head invariants: the head must be an active member
// of this household and may head no other household
func (s *service) assignHead(ctx context.Context, tx store.Store, principal domain.Principal, household *schema.Household, headExternalID string) error {
	head, err := tx.GetResidentByExternalID(ctx, headExternalID, principal.Scope)
	if err != nil {
		return err
	}
	if head == nil {
		return fmt.Errorf("%w: resident %s", domain.ErrNotFound, headExternalID)
	}

	membership, err := tx.GetActiveMembership(ctx, head.ID)
	if err != nil {
		return err
	}
	if membership == nil || membership.HouseholdID != household.ID {
		return fmt.Errorf("%w: resident %s is not an active member of household %s",
			domain.ErrHeadNotMember, headExternalID, household.ExternalID)
	}

	headed, err := tx.HouseholdHeadedBy(ctx, head.ID)
	if err != nil {
		return err
	}
	if headed != nil && headed.ID != household.ID {
		return fmt.Errorf("%w: resident %s already heads household %s",
			domain.ErrInvalidArgument, headExternalID, headed.ExternalID)
	}

	household.HeadResidentID = &head.ID
	return nil
}

// finishHouseholdWrite runs derivation, persists the household, and journals
// the change. Used by every household mutation path.
func (s *service) finishHouseholdWrite(ctx context.Context, tx store.Store, principal domain.Principal, household *schema.Household, operation string) ([]deriver.Warning, error) {
	warnings, err := s.resolver.OnHouseholdWrite(ctx, tx, household, vault.AccessContext{PrincipalID: principal.ID})
	if err != nil {
		return nil, err
	}
	if err := tx.UpdateHousehold(ctx, household); err != nil {
		return nil, err
	}
	if err := s.journal(ctx, tx, principal, domain.ChangeSubjectHousehold, household.ExternalID, household.BarangayCode, operation, warnings); err != nil {
		return nil, err
	}
	return warnings, nil
}

func (s *service) publishHouseholdChange(ctx context.Context, principal domain.Principal, view HouseholdView, operation string) {
	s.publishChange(ctx, &domain.ChangeEvent{
		EventID:      s.newID(),
		Subject:      domain.ChangeSubjectHousehold,
		SubjectID:    view.ExternalID,
		BarangayCode: domain.GeoCode(view.BarangayCode),
		Operation:    operation,
		PrincipalID:  principal.ID,
		Timestamp:    s.clock.Now(),
	})
}

// journal appends the transactional change record. Warnings ride along as
// JSON meta so operators can audit partial derivations.
func (s *service) journal(ctx context.Context, tx store.Store, principal domain.Principal, subject domain.ChangeSubject, subjectID, barangayCode, operation string, warnings []deriver.Warning) error {
	var meta datatypes.JSON
	if len(warnings) > 0 {
		encoded, err := warningsJSON(warnings)
		if err != nil {
			return err
		}
		meta = encoded
	}

	return tx.AppendChange(ctx, &schema.ChangesJournal{
		SubjectType:  subject,
		SubjectID:    subjectID,
		BarangayCode: barangayCode,
		Operation:    operation,
		PrincipalID:  principal.ID,
		Meta:         meta,
		ChangedAt:    s.clock.Now(),
	})
}
