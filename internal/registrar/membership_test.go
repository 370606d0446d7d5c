package registrar_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbarangay/registry/internal/deriver"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/mocks"
	"github.com/openbarangay/registry/internal/registrar"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
	"github.com/openbarangay/registry/internal/vault"
)

func activeHousehold() *schema.Household {
	return &schema.Household{ID: 5, ExternalID: "hh-1", BarangayCode: "137404001", Active: true}
}

func TestAddMember(t *testing.T) {
	m, svc := newRegistrar(t)
	m.passthroughTransaction()
	ctx := context.Background()

	household := activeHousehold()
	m.store.EXPECT().GetHouseholdByExternalID(gomock.Any(), "hh-1", gomock.Any()).Return(household, nil)
	m.store.EXPECT().GetResidentByExternalID(gomock.Any(), "res-1", gomock.Any()).
		Return(&schema.Resident{ID: 9, ExternalID: "res-1", BarangayCode: "137404001", Active: true}, nil)
	m.store.EXPECT().GetActiveMembership(gomock.Any(), uint64(9)).Return(nil, nil)
	m.store.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, membership *schema.HouseholdMembership) error {
			assert.Equal(t, uint64(5), membership.HouseholdID)
			assert.Equal(t, "child", membership.RelationshipToHead)
			assert.Equal(t, 1, membership.FamilyNumber)
			assert.Equal(t, testNow, membership.StartedAt)
			membership.ID = 3
			return nil
		})
	m.resolver.EXPECT().OnHouseholdWrite(gomock.Any(), gomock.Any(), household, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ store.Store, h *schema.Household, _ vault.AccessContext) ([]deriver.Warning, error) {
			h.MemberCount = 4
			return nil, nil
		})
	m.store.EXPECT().UpdateHousehold(gomock.Any(), household).Return(nil)
	m.store.EXPECT().AppendChange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, change *schema.ChangesJournal) error {
			switch change.SubjectType {
			case domain.ChangeSubjectHousehold:
				assert.Equal(t, "update", change.Operation)
			case domain.ChangeSubjectMembership:
				assert.Equal(t, "join", change.Operation)
				assert.Equal(t, "res-1", change.SubjectID)
			default:
				t.Errorf("unexpected journal subject %s", change.SubjectType)
			}
			return nil
		}).Times(2)
	m.publisher.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.AddMember(ctx, cityPrincipal(), registrar.AddMemberInput{
		HouseholdExternalID: "hh-1",
		ResidentExternalID:  "res-1",
		RelationshipToHead:  " Child ",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Household.MemberCount)
}

func TestAddMemberCountsNewMembershipInTransaction(t *testing.T) {
	m, svc := newRegistrar(t)
	ctx := context.Background()

	// The aggregate recount must run on the transaction that created the
	// membership row; under read committed the outer connection cannot see
	// the row yet and would persist counts one write behind
	txStore := mocks.NewMockStore(m.ctrl)
	m.store.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(store.Store) error) error {
			return fn(txStore)
		})

	household := activeHousehold()
	txStore.EXPECT().GetHouseholdByExternalID(gomock.Any(), "hh-1", gomock.Any()).Return(household, nil)
	txStore.EXPECT().GetResidentByExternalID(gomock.Any(), "res-1", gomock.Any()).
		Return(&schema.Resident{ID: 9, ExternalID: "res-1", BarangayCode: "137404001", Active: true}, nil)
	txStore.EXPECT().GetActiveMembership(gomock.Any(), uint64(9)).Return(nil, nil)
	txStore.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(nil)
	m.resolver.EXPECT().OnHouseholdWrite(gomock.Any(), gomock.Any(), household, gomock.Any()).DoAndReturn(
		func(_ context.Context, tx store.Store, h *schema.Household, _ vault.AccessContext) ([]deriver.Warning, error) {
			assert.Same(t, txStore, tx)
			h.MemberCount = 1
			return nil, nil
		})
	txStore.EXPECT().UpdateHousehold(gomock.Any(), household).Return(nil)
	txStore.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.publisher.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.AddMember(ctx, cityPrincipal(), registrar.AddMemberInput{
		HouseholdExternalID: "hh-1",
		ResidentExternalID:  "res-1",
		RelationshipToHead:  "spouse",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Household.MemberCount)
}

func TestAddMemberAsHeadAssignsHeadship(t *testing.T) {
	m, svc := newRegistrar(t)
	m.passthroughTransaction()
	ctx := context.Background()

	household := activeHousehold()
	resident := &schema.Resident{ID: 9, ExternalID: "res-1", BarangayCode: "137404001", Active: true}
	m.store.EXPECT().GetHouseholdByExternalID(gomock.Any(), "hh-1", gomock.Any()).Return(household, nil)
	m.store.EXPECT().GetResidentByExternalID(gomock.Any(), "res-1", gomock.Any()).Return(resident, nil).Times(2)
	m.store.EXPECT().GetActiveMembership(gomock.Any(), uint64(9)).Return(nil, nil)
	m.store.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, membership *schema.HouseholdMembership) error {
			membership.ID = 3
			// Later lookups in the same transaction see the new row
			m.store.EXPECT().GetActiveMembership(gomock.Any(), uint64(9)).
				Return(&schema.HouseholdMembership{ID: 3, HouseholdID: 5, ResidentID: 9, Active: true}, nil)
			return nil
		})
	m.store.EXPECT().HouseholdHeadedBy(gomock.Any(), uint64(9)).Return(nil, nil)
	m.resolver.EXPECT().OnHouseholdWrite(gomock.Any(), gomock.Any(), household, gomock.Any()).Return(nil, nil)
	m.store.EXPECT().UpdateHousehold(gomock.Any(), household).Return(nil)
	m.store.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.publisher.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.AddMember(ctx, cityPrincipal(), registrar.AddMemberInput{
		HouseholdExternalID: "hh-1",
		ResidentExternalID:  "res-1",
		RelationshipToHead:  "head",
	})
	require.NoError(t, err)
	require.NotNil(t, household.HeadResidentID)
	assert.Equal(t, uint64(9), *household.HeadResidentID)
}

func TestAddMemberRejectsSecondActiveMembership(t *testing.T) {
	m, svc := newRegistrar(t)
	m.passthroughTransaction()

	m.store.EXPECT().GetHouseholdByExternalID(gomock.Any(), "hh-1", gomock.Any()).Return(activeHousehold(), nil)
	m.store.EXPECT().GetResidentByExternalID(gomock.Any(), "res-1", gomock.Any()).
		Return(&schema.Resident{ID: 9, ExternalID: "res-1", Active: true}, nil)
	m.store.EXPECT().GetActiveMembership(gomock.Any(), uint64(9)).
		Return(&schema.HouseholdMembership{ID: 8, HouseholdID: 77, ResidentID: 9, Active: true}, nil)

	_, err := svc.AddMember(context.Background(), cityPrincipal(), registrar.AddMemberInput{
		HouseholdExternalID: "hh-1",
		ResidentExternalID:  "res-1",
		RelationshipToHead:  "spouse",
	})
	assert.ErrorIs(t, err, domain.ErrActiveMembershipExists)
}

func TestAddMemberRejectsDeactivatedHousehold(t *testing.T) {
	m, svc := newRegistrar(t)
	m.passthroughTransaction()

	household := activeHousehold()
	household.Active = false
	m.store.EXPECT().GetHouseholdByExternalID(gomock.Any(), "hh-1", gomock.Any()).Return(household, nil)

	_, err := svc.AddMember(context.Background(), cityPrincipal(), registrar.AddMemberInput{
		HouseholdExternalID: "hh-1",
		ResidentExternalID:  "res-1",
		RelationshipToHead:  "spouse",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestRemoveMember(t *testing.T) {
	m, svc := newRegistrar(t)
	m.passthroughTransaction()
	ctx := context.Background()

	headID := uint64(9)
	household := activeHousehold()
	household.HeadResidentID = &headID
	m.store.EXPECT().GetHouseholdByExternalID(gomock.Any(), "hh-1", gomock.Any()).Return(household, nil)
	m.store.EXPECT().GetResidentByExternalID(gomock.Any(), "res-1", gomock.Any()).
		Return(&schema.Resident{ID: 9, ExternalID: "res-1", Active: true}, nil)
	m.store.EXPECT().GetActiveMembership(gomock.Any(), uint64(9)).
		Return(&schema.HouseholdMembership{ID: 3, HouseholdID: 5, ResidentID: 9, Active: true}, nil)
	m.store.EXPECT().EndMembership(gomock.Any(), uint64(3), testNow).Return(nil)
	m.resolver.EXPECT().OnHouseholdWrite(gomock.Any(), gomock.Any(), household, gomock.Any()).Return(nil, nil)
	m.store.EXPECT().UpdateHousehold(gomock.Any(), household).Return(nil)
	m.store.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.publisher.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.RemoveMember(ctx, cityPrincipal(), "hh-1", "res-1")
	require.NoError(t, err)
	assert.Nil(t, household.HeadResidentID)
}

func TestRemoveMemberNotAMember(t *testing.T) {
	m, svc := newRegistrar(t)
	m.passthroughTransaction()

	m.store.EXPECT().GetHouseholdByExternalID(gomock.Any(), "hh-1", gomock.Any()).Return(activeHousehold(), nil)
	m.store.EXPECT().GetResidentByExternalID(gomock.Any(), "res-1", gomock.Any()).
		Return(&schema.Resident{ID: 9, ExternalID: "res-1", Active: true}, nil)
	m.store.EXPECT().GetActiveMembership(gomock.Any(), uint64(9)).
		Return(&schema.HouseholdMembership{ID: 3, HouseholdID: 77, ResidentID: 9, Active: true}, nil)

	_, err := svc.RemoveMember(context.Background(), cityPrincipal(), "hh-1", "res-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
