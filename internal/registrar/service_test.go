package registrar_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbarangay/registry/internal/deriver"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/identity"
	"github.com/openbarangay/registry/internal/logger"
	"github.com/openbarangay/registry/internal/mocks"
	"github.com/openbarangay/registry/internal/registrar"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
	"github.com/openbarangay/registry/internal/vault"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

type registrarMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	generator *mocks.MockGenerator
	vault     *mocks.MockVault
	resolver  *mocks.MockResolver
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
}

func newRegistrar(t *testing.T) (*registrarMocks, registrar.Service) {
	ctrl := gomock.NewController(t)
	m := &registrarMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		generator: mocks.NewMockGenerator(ctrl),
		vault:     mocks.NewMockVault(ctrl),
		resolver:  mocks.NewMockResolver(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(testNow).AnyTimes()
	svc := registrar.New(m.store, m.generator, m.vault, m.resolver, m.publisher, m.clock)
	return m, svc
}

// passthroughTransaction wires Transaction callbacks straight to the same mock
func (m *registrarMocks) passthroughTransaction() {
	m.store.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(store.Store) error) error {
			return fn(m.store)
		}).AnyTimes()
}

func cityPrincipal() domain.Principal {
	return domain.Principal{ID: "clerk-7", Scope: domain.Scope{Level: domain.ScopeLevelCity, Code: "137404"}}
}

func TestCreateHousehold(t *testing.T) {
	m, svc := newRegistrar(t)
	m.passthroughTransaction()
	ctx := context.Background()

	subdivisionID := uint64(11)
	streetID := uint64(42)
	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), identity.Location{
		BarangayCode:    "137404001",
		SubdivisionName: ptr("Sitio Maligaya"),
		StreetName:      ptr("Acacia St"),
		HouseNumber:     "123",
	}).Return(&identity.Assignment{
		Code:          "137404001-0001-0001-0123",
		SubdivisionID: &subdivisionID,
		StreetID:      &streetID,
	}, nil)
	m.store.EXPECT().GetHouseholdByCode(gomock.Any(), domain.HouseholdCode("137404001-0001-0001-0123"), domain.NationalScope()).Return(nil, nil)

	var created *schema.Household
	m.store.EXPECT().CreateHousehold(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, h *schema.Household) error {
			h.ID = 5
			created = h
			return nil
		})
	m.resolver.EXPECT().OnHouseholdWrite(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ store.Store, h *schema.Household, _ vault.AccessContext) ([]deriver.Warning, error) {
			address := "123 Acacia St, Sitio Maligaya, Barangay Commonwealth"
			h.Address = &address
			h.IncomeClass = domain.IncomeClassLowIncome
			return nil, nil
		})
	m.store.EXPECT().UpdateHousehold(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().AppendChange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, change *schema.ChangesJournal) error {
			assert.Equal(t, domain.ChangeSubjectHousehold, change.SubjectType)
			assert.Equal(t, "create", change.Operation)
			assert.Equal(t, "clerk-7", change.PrincipalID)
			assert.Empty(t, change.Meta)
			return nil
		})
	m.publisher.EXPECT().PublishChange(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, event *domain.ChangeEvent) error {
			assert.Equal(t, domain.ChangeSubjectHousehold, event.Subject)
			assert.Equal(t, "create", event.Operation)
			return nil
		})

	income := decimal.NewFromInt(18000)
	result, err := svc.CreateHousehold(ctx, cityPrincipal(), registrar.CreateHouseholdInput{
		BarangayCode:    "137404001",
		SubdivisionName: ptr("Sitio Maligaya"),
		StreetName:      ptr("Acacia St"),
		HouseNumber:     "123",
		MonthlyIncome:   &income,
	})
	require.NoError(t, err)

	assert.Equal(t, "137404001-0001-0001-0123", result.Household.Code)
	assert.Equal(t, "low_income", result.Household.IncomeClass)
	assert.NotNil(t, result.Household.Address)
	assert.NotEmpty(t, result.Household.ExternalID)
	assert.Empty(t, result.Warnings)

	require.NotNil(t, created)
	assert.Equal(t, &subdivisionID, created.SubdivisionID)
	assert.True(t, created.Active)
	assert.Equal(t, testNow, created.CreatedAt)
}

func TestCreateHouseholdValidation(t *testing.T) {
	m, svc := newRegistrar(t)
	ctx := context.Background()
	_ = m

	t.Run("outside scope", func(t *testing.T) {
		_, err := svc.CreateHousehold(ctx, cityPrincipal(), registrar.CreateHouseholdInput{
			BarangayCode: "137602001",
			HouseNumber:  "1",
		})
		assert.ErrorIs(t, err, domain.ErrScopeViolation)
	})

	t.Run("missing house number", func(t *testing.T) {
		_, err := svc.CreateHousehold(ctx, cityPrincipal(), registrar.CreateHouseholdInput{
			BarangayCode: "137404001",
			HouseNumber:  "   ",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestCreateHouseholdRetriesConflict(t *testing.T) {
	m, svc := newRegistrar(t)
	m.passthroughTransaction()
	ctx := context.Background()

	attempts := 0
	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, store.Store, identity.Location) (*identity.Assignment, error) {
			attempts++
			if attempts == 1 {
				return nil, fmt.Errorf("street row: %w", domain.ErrConcurrencyConflict)
			}
			return &identity.Assignment{Code: "137404001-0000-0000-0001"}, nil
		}).Times(2)
	m.store.EXPECT().GetHouseholdByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.store.EXPECT().CreateHousehold(gomock.Any(), gomock.Any()).Return(nil)
	m.resolver.EXPECT().OnHouseholdWrite(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.store.EXPECT().UpdateHousehold(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.CreateHousehold(ctx, cityPrincipal(), registrar.CreateHouseholdInput{
		BarangayCode: "137404001",
		HouseNumber:  "1",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, "137404001-0000-0000-0001", result.Household.Code)
}

func TestCreateHouseholdDerivesThroughTransactionStore(t *testing.T) {
	m, svc := newRegistrar(t)
	ctx := context.Background()

	// Code assignment and derivation must read through the write's own
	// transaction; on the outer connection the rows this write just created
	// are not visible yet
	txStore := mocks.NewMockStore(m.ctrl)
	m.store.EXPECT().Transaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(store.Store) error) error {
			return fn(txStore)
		})

	m.generator.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx store.Store, _ identity.Location) (*identity.Assignment, error) {
			assert.Same(t, txStore, tx)
			return &identity.Assignment{Code: "137404001-0000-0000-0001"}, nil
		})
	txStore.EXPECT().GetHouseholdByCode(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	txStore.EXPECT().CreateHousehold(gomock.Any(), gomock.Any()).Return(nil)
	m.resolver.EXPECT().OnHouseholdWrite(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx store.Store, _ *schema.Household, _ vault.AccessContext) ([]deriver.Warning, error) {
			assert.Same(t, txStore, tx)
			return nil, nil
		})
	txStore.EXPECT().UpdateHousehold(gomock.Any(), gomock.Any()).Return(nil)
	txStore.EXPECT().AppendChange(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.CreateHousehold(ctx, cityPrincipal(), registrar.CreateHouseholdInput{
		BarangayCode: "137404001",
		HouseNumber:  "1",
	})
	require.NoError(t, err)
}

func TestUpdateHouseholdHeadInvariants(t *testing.T) {
	ctx := context.Background()

	household := func() *schema.Household {
		return &schema.Household{ID: 5, ExternalID: "hh-1", BarangayCode: "137404001", Active: true}
	}
	head := &schema.Resident{ID: 9, ExternalID: "res-9", BarangayCode: "137404001", Active: true}

	t.Run("head not an active member", func(t *testing.T) {
		m, svc := newRegistrar(t)
		m.passthroughTransaction()
		m.store.EXPECT().GetHouseholdByExternalID(gomock.Any(), "hh-1", gomock.Any()).Return(household(), nil)
		m.store.EXPECT().GetResidentByExternalID(gomock.Any(), "res-9", gomock.Any()).Return(head, nil)
		m.store.EXPECT().GetActiveMembership(gomock.Any(), uint64(9)).Return(nil, nil)

		_, err := svc.UpdateHousehold(ctx, cityPrincipal(), "hh-1", registrar.UpdateHouseholdInput{
			HeadResidentExternalID: ptr("res-9"),
		})
		assert.ErrorIs(t, err, domain.ErrHeadNotMember)
	})

	t.Run("head already heads another household", func(t *testing.T) {
		m, svc := newRegistrar(t)
		m.passthroughTransaction()
		m.store.EXPECT().GetHouseholdByExternalID(gomock.Any(), "hh-1", gomock.Any()).Return(household(), nil)
		m.store.EXPECT().GetResidentByExternalID(gomock.Any(), "res-9", gomock.Any()).Return(head, nil)
		m.store.EXPECT().GetActiveMembership(gomock.Any(), uint64(9)).
			Return(&schema.HouseholdMembership{ID: 1, HouseholdID: 5, ResidentID: 9, Active: true}, nil)
		m.store.EXPECT().HouseholdHeadedBy(gomock.Any(), uint64(9)).
			Return(&schema.Household{ID: 77, ExternalID: "hh-other"}, nil)

		_, err := svc.UpdateHousehold(ctx, cityPrincipal(), "hh-1", registrar.UpdateHouseholdInput{
			HeadResidentExternalID: ptr("res-9"),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestGetHouseholdOutOfScope(t *testing.T) {
	m, svc := newRegistrar(t)
	m.store.EXPECT().GetHouseholdByExternalID(gomock.Any(), "hh-x", gomock.Any()).Return(nil, nil)

	_, err := svc.GetHousehold(context.Background(), cityPrincipal(), "hh-x")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func ptr[T any](v T) *T {
	return &v
}
