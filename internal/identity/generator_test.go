package identity_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/identity"
	"github.com/openbarangay/registry/internal/mocks"
	"github.com/openbarangay/registry/internal/store/schema"
)

func strPtr(s string) *string {
	return &s
}

func expectBarangay(m *mocks.MockStore, ctx context.Context, code string) {
	m.EXPECT().GetGeoNode(ctx, domain.GeoCode(code)).
		Return(&schema.GeoNode{Code: code, Name: "Bagumbayan", Level: domain.GeoLevelBarangay, Active: true}, nil)
}

func TestGenerateWorkedScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	gen := identity.NewGenerator()
	ctx := context.Background()

	subID := uint64(1)
	expectBarangay(mockStore, ctx, "137404001")
	mockStore.EXPECT().GetOrCreateSubdivision(ctx, domain.GeoCode("137404001"), "Sunset Village").
		Return(&schema.Subdivision{ID: subID, BarangayCode: "137404001", Name: "Sunset Village", Seq: 1}, nil)
	mockStore.EXPECT().GetOrCreateStreet(ctx, domain.GeoCode("137404001"), &subID, "Mahogany St").
		Return(&schema.Street{ID: 1, BarangayCode: "137404001", SubdivisionID: &subID, Name: "Mahogany St", Seq: 1}, nil)

	first, err := gen.Generate(ctx, mockStore, identity.Location{
		BarangayCode:    "137404001",
		SubdivisionName: strPtr("Sunset Village"),
		StreetName:      strPtr("Mahogany St"),
		HouseNumber:     "123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.HouseholdCode("137404001-0001-0001-0123"), first.Code)

	// Second household on the same street reuses both sequences
	expectBarangay(mockStore, ctx, "137404001")
	mockStore.EXPECT().GetOrCreateSubdivision(ctx, domain.GeoCode("137404001"), "Sunset Village").
		Return(&schema.Subdivision{ID: subID, BarangayCode: "137404001", Name: "Sunset Village", Seq: 1}, nil)
	mockStore.EXPECT().GetOrCreateStreet(ctx, domain.GeoCode("137404001"), &subID, "Mahogany St").
		Return(&schema.Street{ID: 1, BarangayCode: "137404001", SubdivisionID: &subID, Name: "Mahogany St", Seq: 1}, nil)

	second, err := gen.Generate(ctx, mockStore, identity.Location{
		BarangayCode:    "137404001",
		SubdivisionName: strPtr("Sunset Village"),
		StreetName:      strPtr("Mahogany St"),
		HouseNumber:     "456",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.HouseholdCode("137404001-0001-0001-0456"), second.Code)

	// A new street under the same subdivision draws the next street number
	expectBarangay(mockStore, ctx, "137404001")
	mockStore.EXPECT().GetOrCreateSubdivision(ctx, domain.GeoCode("137404001"), "Sunset Village").
		Return(&schema.Subdivision{ID: subID, BarangayCode: "137404001", Name: "Sunset Village", Seq: 1}, nil)
	mockStore.EXPECT().GetOrCreateStreet(ctx, domain.GeoCode("137404001"), &subID, "Narra St").
		Return(&schema.Street{ID: 2, BarangayCode: "137404001", SubdivisionID: &subID, Name: "Narra St", Seq: 2}, nil)

	third, err := gen.Generate(ctx, mockStore, identity.Location{
		BarangayCode:    "137404001",
		SubdivisionName: strPtr("Sunset Village"),
		StreetName:      strPtr("Narra St"),
		HouseNumber:     "7",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.HouseholdCode("137404001-0001-0002-0007"), third.Code)
}

func TestGenerateWithoutSubdivisionOrStreet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	gen := identity.NewGenerator()
	ctx := context.Background()

	expectBarangay(mockStore, ctx, "137404001")

	assignment, err := gen.Generate(ctx, mockStore, identity.Location{
		BarangayCode: "137404001",
		HouseNumber:  "88",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.HouseholdCode("137404001-0000-0000-0088"), assignment.Code)
	assert.Nil(t, assignment.SubdivisionID)
	assert.Nil(t, assignment.StreetID)
}

func TestGenerateHouseNumberForms(t *testing.T) {
	tests := []struct {
		name        string
		houseNumber string
		expected    string
	}{
		{"plain", "123", "0123"},
		{"with unit suffix", "123-A", "0123"},
		{"overlong keeps last four", "123456", "3456"},
		{"single digit", "7", "0007"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := mocks.NewMockStore(ctrl)
			gen := identity.NewGenerator()
			ctx := context.Background()
			expectBarangay(mockStore, ctx, "137404001")

			assignment, err := gen.Generate(ctx, mockStore, identity.Location{
				BarangayCode: "137404001",
				HouseNumber:  tt.houseNumber,
			})
			require.NoError(t, err)
			assert.Equal(t, domain.HouseholdCode("137404001-0000-0000-"+tt.expected), assignment.Code)
		})
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	gen := identity.NewGenerator()
	ctx := context.Background()

	// Not a barangay-level code
	_, err := gen.Generate(ctx, mockStore, identity.Location{BarangayCode: "137404", HouseNumber: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	// Unknown barangay
	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("999999999")).Return(nil, nil)
	_, err = gen.Generate(ctx, mockStore, identity.Location{BarangayCode: "999999999", HouseNumber: "1"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	// House number without digits
	expectBarangay(mockStore, ctx, "137404001")
	_, err = gen.Generate(ctx, mockStore, identity.Location{BarangayCode: "137404001", HouseNumber: "Lot A"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
