package reference_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/mocks"
	"github.com/openbarangay/registry/internal/reference"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
)

func strPtr(s string) *string {
	return &s
}

func geoNode(code, name string, level domain.GeoLevel, parent *string) *schema.GeoNode {
	return &schema.GeoNode{Code: code, Name: name, Level: level, ParentCode: parent, Active: true}
}

func TestResolveGeo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	svc := reference.NewService(mockStore)
	ctx := context.Background()

	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("137404001")).
		Return(geoNode("137404001", "Bagumbayan", domain.GeoLevelBarangay, strPtr("137404")), nil)
	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("137404")).
		Return(geoNode("137404", "Taguig City", domain.GeoLevelCity, strPtr("1374")), nil)
	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("1374")).
		Return(geoNode("1374", "NCR Fourth District", domain.GeoLevelProvince, strPtr("13")), nil)
	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("13")).
		Return(geoNode("13", "National Capital Region", domain.GeoLevelRegion, nil), nil)

	path, err := svc.ResolveGeo(ctx, "137404001")
	require.NoError(t, err)
	require.Len(t, path, 4)
	assert.Equal(t, reference.NamePathSegment{Level: "region", Code: "13", Name: "National Capital Region"}, path[0])
	assert.Equal(t, reference.NamePathSegment{Level: "province", Code: "1374", Name: "NCR Fourth District"}, path[1])
	assert.Equal(t, reference.NamePathSegment{Level: "city", Code: "137404", Name: "Taguig City"}, path[2])
	assert.Equal(t, reference.NamePathSegment{Level: "barangay", Code: "137404001", Name: "Bagumbayan"}, path[3])
}

func TestResolveGeoIndependentCity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	svc := reference.NewService(mockStore)
	ctx := context.Background()

	// The city parents straight to its region; no province segment appears
	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("137601001")).
		Return(geoNode("137601001", "Poblacion", domain.GeoLevelBarangay, strPtr("137601")), nil)
	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("137601")).
		Return(geoNode("137601", "Pateros", domain.GeoLevelCity, strPtr("13")), nil)
	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("13")).
		Return(geoNode("13", "National Capital Region", domain.GeoLevelRegion, nil), nil)

	path, err := svc.ResolveGeo(ctx, "137601001")
	require.NoError(t, err)
	require.Len(t, path, 3)
	assert.Equal(t, "region", path[0].Level)
	assert.Equal(t, "city", path[1].Level)
	assert.Equal(t, "barangay", path[2].Level)
}

func TestResolveGeoErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	svc := reference.NewService(mockStore)
	ctx := context.Background()

	_, err := svc.ResolveGeo(ctx, "1374040")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("990000000")).Return(nil, nil)
	_, err = svc.ResolveGeo(ctx, "990000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Known node whose parent row is missing
	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("137404001")).
		Return(geoNode("137404001", "Bagumbayan", domain.GeoLevelBarangay, strPtr("137404")), nil)
	mockStore.EXPECT().GetGeoNode(ctx, domain.GeoCode("137404")).Return(nil, nil)
	_, err = svc.ResolveGeo(ctx, "137404001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveOccupation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	svc := reference.NewService(mockStore)
	ctx := context.Background()

	mockStore.EXPECT().GetOccupationNode(ctx, domain.OccupationCode("2")).
		Return(&schema.OccupationNode{Code: "2", Name: "Professionals", Level: domain.OccupationLevelMajor}, nil)
	mockStore.EXPECT().GetOccupationNode(ctx, domain.OccupationCode("25")).
		Return(&schema.OccupationNode{Code: "25", Name: "ICT Professionals", Level: domain.OccupationLevelSubMajor}, nil)

	path, err := svc.ResolveOccupation(ctx, "25")
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, "Professionals", path[0].Name)
	assert.Equal(t, "ICT Professionals", path[1].Name)
}

func TestSearchOccupationTitleSupplement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	svc := reference.NewService(mockStore)
	ctx := context.Background()

	filter := store.OccupationSearchFilter{Term: "developer", Limit: 10}
	mockStore.EXPECT().SearchOccupationNodes(ctx, filter).
		Return([]schema.OccupationNode{
			{Code: "2512", Name: "Software Developers", Level: domain.OccupationLevelUnit},
		}, uint64(1), nil)
	mockStore.EXPECT().SearchOccupationTitles(ctx, "developer", 9).
		Return([]schema.OccupationTitle{
			{Title: "Web Developer", UnitGroupCode: "2513"},
			{Title: "Applications Developer", UnitGroupCode: "2512"},
		}, nil)
	mockStore.EXPECT().GetOccupationNode(ctx, domain.OccupationCode("2513")).
		Return(&schema.OccupationNode{Code: "2513", Name: "Web and Multimedia Developers", Level: domain.OccupationLevelUnit}, nil)

	matches, total, err := svc.SearchOccupation(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), total)
	require.Len(t, matches, 2)
	assert.Nil(t, matches[0].MatchedTitle)
	require.NotNil(t, matches[1].MatchedTitle)
	assert.Equal(t, "Web Developer", *matches[1].MatchedTitle)
}
