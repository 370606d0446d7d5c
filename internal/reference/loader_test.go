package reference_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbarangay/registry/internal/adapter"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/mocks"
	"github.com/openbarangay/registry/internal/reference"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
)

func writeSeedFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadGeo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	loader := reference.NewLoader(mockStore, adapter.NewFileSystem(), adapter.NewJSON())
	ctx := context.Background()

	path := writeSeedFile(t, "geo.json", `[
		{"code": "13", "name": "National Capital Region", "parent_code": null},
		{"code": "1374", "name": "NCR Fourth District", "parent_code": "13"},
		{"code": "137404", "name": " Taguig City ", "parent_code": "1374"},
		{"code": "137404001", "name": "Bagumbayan", "parent_code": "137404"}
	]`)

	mockStore.EXPECT().UpsertGeoNodes(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, nodes []schema.GeoNode) error {
			require.Len(t, nodes, 4)
			assert.Equal(t, domain.GeoLevelRegion, nodes[0].Level)
			assert.Equal(t, domain.GeoLevelBarangay, nodes[3].Level)
			assert.Equal(t, "Taguig City", nodes[2].Name)
			assert.True(t, nodes[0].Active)
			return nil
		})

	count, err := loader.LoadGeo(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestLoadGeoRejectsMalformedCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	loader := reference.NewLoader(mockStore, adapter.NewFileSystem(), adapter.NewJSON())

	path := writeSeedFile(t, "geo.json", `[{"code": "1374040", "name": "Bad Length"}]`)

	_, err := loader.LoadGeo(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestLoadOccupation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	loader := reference.NewLoader(mockStore, adapter.NewFileSystem(), adapter.NewJSON())
	ctx := context.Background()

	path := writeSeedFile(t, "occupations.json", `{
		"groups": [
			{"code": "2", "name": "Professionals", "parent_code": null},
			{"code": "25", "name": "ICT Professionals", "parent_code": "2"},
			{"code": "2512", "name": "Software Developers", "parent_code": "25"}
		],
		"titles": [
			{"title": "Applications Developer", "unit_group_code": "2512"}
		],
		"cross_refs": [
			{"from_code": "2512", "to_code": "2513"}
		]
	}`)

	// The transactional callback runs against the same mock
	mockStore.EXPECT().Transaction(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(store.Store) error) error {
			return fn(mockStore)
		})
	mockStore.EXPECT().UpsertOccupationNodes(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, nodes []schema.OccupationNode) error {
			require.Len(t, nodes, 3)
			assert.Equal(t, domain.OccupationLevelUnit, nodes[2].Level)
			return nil
		})
	mockStore.EXPECT().UpsertOccupationTitles(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, titles []schema.OccupationTitle) error {
			require.Len(t, titles, 1)
			assert.Equal(t, "2512", titles[0].UnitGroupCode)
			return nil
		})
	mockStore.EXPECT().UpsertOccupationCrossRefs(ctx, gomock.Any()).Return(nil)

	count, err := loader.LoadOccupation(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
