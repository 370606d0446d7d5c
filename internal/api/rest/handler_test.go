package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbarangay/registry/internal/api/middleware"
	"github.com/openbarangay/registry/internal/domain"
	"github.com/openbarangay/registry/internal/logger"
	"github.com/openbarangay/registry/internal/mocks"
	"github.com/openbarangay/registry/internal/reference"
	"github.com/openbarangay/registry/internal/registrar"
	"github.com/openbarangay/registry/internal/store"
	"github.com/openbarangay/registry/internal/store/schema"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type handlerMocks struct {
	registrar *mocks.MockRegistrarService
	reference *mocks.MockReferenceService
	vault     *mocks.MockVault
}

func newTestHandler(t *testing.T) (Handler, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := handlerMocks{
		registrar: mocks.NewMockRegistrarService(ctrl),
		reference: mocks.NewMockReferenceService(ctrl),
		vault:     mocks.NewMockVault(ctrl),
	}
	return NewHandler(false, m.registrar, m.reference, m.vault), m
}

func cityPrincipal() domain.Principal {
	return domain.Principal{
		ID:    "clerk-7",
		Scope: domain.Scope{Level: domain.ScopeLevelCity, Code: "137404"},
	}
}

// testRequest builds a gin context carrying an authenticated principal, the
// way the auth middleware would have left it
func testRequest(t *testing.T, method, target string, body interface{}, principal *domain.Principal) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	if principal != nil {
		c.Set(middleware.PRINCIPAL_KEY, *principal)
	}
	return c, rec
}

func TestCreateHouseholdHandler(t *testing.T) {
	h, m := newTestHandler(t)
	principal := cityPrincipal()

	income := decimal.NewFromInt(15000)
	m.registrar.EXPECT().
		CreateHousehold(gomock.Any(), principal, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ domain.Principal, in registrar.CreateHouseholdInput) (*registrar.HouseholdResult, error) {
			assert.Equal(t, domain.GeoCode("137404001"), in.BarangayCode)
			assert.Equal(t, "123-B", in.HouseNumber)
			require.NotNil(t, in.MonthlyIncome)
			assert.True(t, in.MonthlyIncome.Equal(income))
			return &registrar.HouseholdResult{
				Household: registrar.HouseholdView{
					ExternalID:  "01HVX",
					Code:        "137404001-0001-0001-0123",
					IncomeClass: "low_income",
				},
			}, nil
		})

	c, rec := testRequest(t, http.MethodPost, "/api/v1/households", CreateHouseholdRequest{
		BarangayCode:  "137404001",
		HouseNumber:   "123-B",
		MonthlyIncome: &income,
	}, &principal)
	h.CreateHousehold(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "137404001-0001-0001-0123")
}

func TestCreateHouseholdHandlerValidation(t *testing.T) {
	h, _ := newTestHandler(t)
	principal := cityPrincipal()

	tests := []struct {
		name string
		req  CreateHouseholdRequest
	}{
		{
			name: "missing barangay code",
			req:  CreateHouseholdRequest{HouseNumber: "12"},
		},
		{
			name: "malformed barangay code",
			req:  CreateHouseholdRequest{BarangayCode: "1374", HouseNumber: "12"},
		},
		{
			name: "blank house number",
			req:  CreateHouseholdRequest{BarangayCode: "137404001", HouseNumber: "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := testRequest(t, http.MethodPost, "/api/v1/households", tt.req, &principal)
			h.CreateHousehold(c)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "validation_failed")
		})
	}
}

func TestGetHouseholdHandlerNotFound(t *testing.T) {
	h, m := newTestHandler(t)
	principal := cityPrincipal()

	m.registrar.EXPECT().
		GetHousehold(gomock.Any(), principal, "01HVX").
		Return(nil, domain.ErrNotFound)

	c, rec := testRequest(t, http.MethodGet, "/api/v1/households/01HVX", nil, &principal)
	c.Params = gin.Params{{Key: "id", Value: "01HVX"}}
	h.GetHousehold(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestUpdateHouseholdHandlerConflict(t *testing.T) {
	h, m := newTestHandler(t)
	principal := cityPrincipal()

	m.registrar.EXPECT().
		UpdateHousehold(gomock.Any(), principal, "01HVX", gomock.Any()).
		Return(nil, domain.ErrConcurrencyConflict)

	c, rec := testRequest(t, http.MethodPatch, "/api/v1/households/01HVX", UpdateHouseholdRequest{ClearIncome: true}, &principal)
	c.Params = gin.Params{{Key: "id", Value: "01HVX"}}
	h.UpdateHousehold(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "conflict")
}

func TestUpdateHouseholdHandlerExclusiveIncomeFields(t *testing.T) {
	h, _ := newTestHandler(t)
	principal := cityPrincipal()

	income := decimal.NewFromInt(9000)
	c, rec := testRequest(t, http.MethodPatch, "/api/v1/households/01HVX", UpdateHouseholdRequest{
		MonthlyIncome: &income,
		ClearIncome:   true,
	}, &principal)
	c.Params = gin.Params{{Key: "id", Value: "01HVX"}}
	h.UpdateHousehold(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mutually exclusive")
}

func TestAddMemberHandler(t *testing.T) {
	h, m := newTestHandler(t)
	principal := cityPrincipal()

	m.registrar.EXPECT().
		AddMember(gomock.Any(), principal, registrar.AddMemberInput{
			HouseholdExternalID: "01HVX",
			ResidentExternalID:  "01RES",
			RelationshipToHead:  "child",
			FamilyNumber:        2,
		}).
		Return(&registrar.HouseholdResult{
			Household: registrar.HouseholdView{ExternalID: "01HVX", MemberCount: 4},
		}, nil)

	c, rec := testRequest(t, http.MethodPost, "/api/v1/households/01HVX/members", AddMemberRequest{
		ResidentID:         "01RES",
		RelationshipToHead: "child",
		FamilyNumber:       2,
	}, &principal)
	c.Params = gin.Params{{Key: "id", Value: "01HVX"}}
	h.AddMember(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"member_count":4`)
}

func TestGetResidentHandlerDefaultsToMasked(t *testing.T) {
	h, m := newTestHandler(t)
	principal := cityPrincipal()

	m.registrar.EXPECT().
		GetResident(gomock.Any(), principal, "01RES", domain.ReadModeMasked).
		Return(&registrar.ResidentView{ExternalID: "01RES", GivenName: "M*****"}, nil)

	c, rec := testRequest(t, http.MethodGet, "/api/v1/residents/01RES", nil, &principal)
	c.Params = gin.Params{{Key: "id", Value: "01RES"}}
	h.GetResident(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "M*****")
}

func TestGetResidentHandlerFullMode(t *testing.T) {
	h, m := newTestHandler(t)
	principal := cityPrincipal()

	m.registrar.EXPECT().
		GetResident(gomock.Any(), principal, "01RES", domain.ReadModeFull).
		Return(&registrar.ResidentView{ExternalID: "01RES", GivenName: "Maria"}, nil)

	c, rec := testRequest(t, http.MethodGet, "/api/v1/residents/01RES?mode=full", nil, &principal)
	c.Params = gin.Params{{Key: "id", Value: "01RES"}}
	h.GetResident(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Maria")
}

func TestFindResidentsHandlerRequiresParams(t *testing.T) {
	h, _ := newTestHandler(t)
	principal := cityPrincipal()

	c, rec := testRequest(t, http.MethodGet, "/api/v1/residents?field=mobile", nil, &principal)
	h.FindResidents(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "field and value")
}

func TestFindResidentsHandler(t *testing.T) {
	h, m := newTestHandler(t)
	principal := cityPrincipal()

	m.registrar.EXPECT().
		FindResidents(gomock.Any(), principal, "mobile", "09171234567").
		Return([]registrar.ResidentView{{ExternalID: "01RES"}}, nil)

	c, rec := testRequest(t, http.MethodGet, "/api/v1/residents?field=mobile&value=09171234567", nil, &principal)
	h.FindResidents(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "01RES")
}

func TestCreateResidentHandlerBirthdateFormat(t *testing.T) {
	h, _ := newTestHandler(t)
	principal := cityPrincipal()

	c, rec := testRequest(t, http.MethodPost, "/api/v1/residents", ResidentRequest{
		BarangayCode: "137404001",
		GivenName:    "Maria",
		FamilyName:   "Dela Cruz",
		Birthdate:    "10-02-1961",
	}, &principal)
	h.CreateResident(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")
}

func TestGetChangesHandler(t *testing.T) {
	h, m := newTestHandler(t)
	principal := cityPrincipal()

	m.registrar.EXPECT().
		GetChanges(gomock.Any(), principal, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ domain.Principal, filter store.ChangesFilter) ([]registrar.ChangeView, uint64, error) {
			require.NotNil(t, filter.SubjectType)
			assert.Equal(t, domain.ChangeSubjectResident, *filter.SubjectType)
			assert.Equal(t, 20, filter.Limit)
			return []registrar.ChangeView{{SubjectID: "01RES", Operation: "create"}}, 1, nil
		})

	c, rec := testRequest(t, http.MethodGet, "/api/v1/changes?subject_type=resident", nil, &principal)
	h.GetChanges(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}

func TestGetChangesHandlerInvalidSubject(t *testing.T) {
	h, _ := newTestHandler(t)
	principal := cityPrincipal()

	c, rec := testRequest(t, http.MethodGet, "/api/v1/changes?subject_type=galaxy", nil, &principal)
	h.GetChanges(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveGeoHandler(t *testing.T) {
	h, m := newTestHandler(t)

	m.reference.EXPECT().
		ResolveGeo(gomock.Any(), domain.GeoCode("137404001")).
		Return([]reference.NamePathSegment{
			{Level: "region", Code: "13", Name: "NCR"},
			{Level: "city", Code: "137404", Name: "Quezon City"},
			{Level: "barangay", Code: "137404001", Name: "Bagong Pag-asa"},
		}, nil)

	c, rec := testRequest(t, http.MethodGet, "/api/v1/geo/137404001", nil, nil)
	c.Params = gin.Params{{Key: "code", Value: "137404001"}}
	h.ResolveGeo(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bagong Pag-asa")
}

func TestResolveGeoHandlerBadCode(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := testRequest(t, http.MethodGet, "/api/v1/geo/13740", nil, nil)
	c.Params = gin.Params{{Key: "code", Value: "13740"}}
	h.ResolveGeo(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchGeoHandler(t *testing.T) {
	h, m := newTestHandler(t)

	m.reference.EXPECT().
		SearchGeo(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, filter store.GeoSearchFilter) ([]schema.GeoNode, uint64, error) {
			assert.Equal(t, "pag-asa", filter.Term)
			require.NotNil(t, filter.Level)
			assert.Equal(t, domain.GeoLevelBarangay, *filter.Level)
			return []schema.GeoNode{{Code: "137404001", Name: "Bagong Pag-asa", Level: domain.GeoLevelBarangay, Active: true}}, 1, nil
		})

	c, rec := testRequest(t, http.MethodGet, "/api/v1/geo?q=pag-asa&level=barangay", nil, nil)
	h.SearchGeo(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "137404001")
}

func TestResolveOccupationHandler(t *testing.T) {
	h, m := newTestHandler(t)

	m.reference.EXPECT().
		ResolveOccupation(gomock.Any(), domain.OccupationCode("2221")).
		Return([]reference.NamePathSegment{
			{Level: "major", Code: "2", Name: "Professionals"},
			{Level: "unit", Code: "2221", Name: "Nursing Professionals"},
		}, nil)
	m.reference.EXPECT().
		OccupationCrossRefs(gomock.Any(), domain.OccupationCode("2221")).
		Return([]string{"3221"}, nil)

	c, rec := testRequest(t, http.MethodGet, "/api/v1/occupations/2221", nil, nil)
	c.Params = gin.Params{{Key: "code", Value: "2221"}}
	h.ResolveOccupation(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nursing Professionals")
	assert.Contains(t, rec.Body.String(), "3221")
}

func TestRotateKeyHandlerScopeRestriction(t *testing.T) {
	h, m := newTestHandler(t)

	t.Run("city scope is refused", func(t *testing.T) {
		principal := cityPrincipal()
		c, rec := testRequest(t, http.MethodPost, "/api/v1/admin/keys/rotate", nil, &principal)
		h.RotateKey(c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("national scope rotates", func(t *testing.T) {
		m.vault.EXPECT().Rotate(gomock.Any()).Return(4, nil)

		principal := domain.Principal{ID: "dilg-admin", Scope: domain.NationalScope()}
		c, rec := testRequest(t, http.MethodPost, "/api/v1/admin/keys/rotate", nil, &principal)
		h.RotateKey(c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"active_version":4`)
	})
}

func TestHealthCheckHandler(t *testing.T) {
	h, _ := newTestHandler(t)

	c, rec := testRequest(t, http.MethodGet, "/health", nil, nil)
	h.HealthCheck(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
