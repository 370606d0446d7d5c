// Code generated by MockGen. DO NOT EDIT.
// Source: store.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	domain "github.com/openbarangay/registry/internal/domain"
	store "github.com/openbarangay/registry/internal/store"
	schema "github.com/openbarangay/registry/internal/store/schema"
)

// MockStore is a mock of Store interface.
type MockStore struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMockRecorder
}

// MockStoreMockRecorder is the mock recorder for MockStore.
type MockStoreMockRecorder struct {
	mock *MockStore
}

// NewMockStore creates a new mock instance.
func NewMockStore(ctrl *gomock.Controller) *MockStore {
	mock := &MockStore{ctrl: ctrl}
	mock.recorder = &MockStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStore) EXPECT() *MockStoreMockRecorder {
	return m.recorder
}

// AppendChange mocks base method.
func (m *MockStore) AppendChange(ctx context.Context, change *schema.ChangesJournal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AppendChange", ctx, change)
	ret0, _ := ret[0].(error)
	return ret0
}

// AppendChange indicates an expected call of AppendChange.
func (mr *MockStoreMockRecorder) AppendChange(ctx, change interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AppendChange", reflect.TypeOf((*MockStore)(nil).AppendChange), ctx, change)
}

// ApplyResidentRekey mocks base method.
func (m *MockStore) ApplyResidentRekey(ctx context.Context, resident *schema.Resident, expectedVersion int) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyResidentRekey", ctx, resident, expectedVersion)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ApplyResidentRekey indicates an expected call of ApplyResidentRekey.
func (mr *MockStoreMockRecorder) ApplyResidentRekey(ctx, resident, expectedVersion interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyResidentRekey", reflect.TypeOf((*MockStore)(nil).ApplyResidentRekey), ctx, resident, expectedVersion)
}

// CreateDecryptAudit mocks base method.
func (m *MockStore) CreateDecryptAudit(ctx context.Context, entry *schema.DecryptAuditLog) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateDecryptAudit", ctx, entry)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateDecryptAudit indicates an expected call of CreateDecryptAudit.
func (mr *MockStoreMockRecorder) CreateDecryptAudit(ctx, entry interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateDecryptAudit", reflect.TypeOf((*MockStore)(nil).CreateDecryptAudit), ctx, entry)
}

// CreateEncryptionKey mocks base method.
func (m *MockStore) CreateEncryptionKey(ctx context.Context, keyName, material string) (*schema.EncryptionKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateEncryptionKey", ctx, keyName, material)
	ret0, _ := ret[0].(*schema.EncryptionKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateEncryptionKey indicates an expected call of CreateEncryptionKey.
func (mr *MockStoreMockRecorder) CreateEncryptionKey(ctx, keyName, material interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateEncryptionKey", reflect.TypeOf((*MockStore)(nil).CreateEncryptionKey), ctx, keyName, material)
}

// CreateHousehold mocks base method.
func (m *MockStore) CreateHousehold(ctx context.Context, household *schema.Household) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateHousehold", ctx, household)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateHousehold indicates an expected call of CreateHousehold.
func (mr *MockStoreMockRecorder) CreateHousehold(ctx, household interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateHousehold", reflect.TypeOf((*MockStore)(nil).CreateHousehold), ctx, household)
}

// CreateMembership mocks base method.
func (m *MockStore) CreateMembership(ctx context.Context, membership *schema.HouseholdMembership) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateMembership", ctx, membership)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateMembership indicates an expected call of CreateMembership.
func (mr *MockStoreMockRecorder) CreateMembership(ctx, membership interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateMembership", reflect.TypeOf((*MockStore)(nil).CreateMembership), ctx, membership)
}

// CreateResident mocks base method.
func (m *MockStore) CreateResident(ctx context.Context, resident *schema.Resident) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateResident", ctx, resident)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateResident indicates an expected call of CreateResident.
func (mr *MockStoreMockRecorder) CreateResident(ctx, resident interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateResident", reflect.TypeOf((*MockStore)(nil).CreateResident), ctx, resident)
}

// EndMembership mocks base method.
func (m *MockStore) EndMembership(ctx context.Context, membershipID uint64, endedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EndMembership", ctx, membershipID, endedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// EndMembership indicates an expected call of EndMembership.
func (mr *MockStoreMockRecorder) EndMembership(ctx, membershipID, endedAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EndMembership", reflect.TypeOf((*MockStore)(nil).EndMembership), ctx, membershipID, endedAt)
}

// FindResidentsByHash mocks base method.
func (m *MockStore) FindResidentsByHash(ctx context.Context, field, hash string, scope domain.Scope) ([]schema.Resident, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindResidentsByHash", ctx, field, hash, scope)
	ret0, _ := ret[0].([]schema.Resident)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindResidentsByHash indicates an expected call of FindResidentsByHash.
func (mr *MockStoreMockRecorder) FindResidentsByHash(ctx, field, hash, scope interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindResidentsByHash", reflect.TypeOf((*MockStore)(nil).FindResidentsByHash), ctx, field, hash, scope)
}

// GetActiveEncryptionKey mocks base method.
func (m *MockStore) GetActiveEncryptionKey(ctx context.Context, keyName string) (*schema.EncryptionKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveEncryptionKey", ctx, keyName)
	ret0, _ := ret[0].(*schema.EncryptionKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveEncryptionKey indicates an expected call of GetActiveEncryptionKey.
func (mr *MockStoreMockRecorder) GetActiveEncryptionKey(ctx, keyName interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveEncryptionKey", reflect.TypeOf((*MockStore)(nil).GetActiveEncryptionKey), ctx, keyName)
}

// GetActiveMembership mocks base method.
func (m *MockStore) GetActiveMembership(ctx context.Context, residentID uint64) (*schema.HouseholdMembership, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetActiveMembership", ctx, residentID)
	ret0, _ := ret[0].(*schema.HouseholdMembership)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetActiveMembership indicates an expected call of GetActiveMembership.
func (mr *MockStoreMockRecorder) GetActiveMembership(ctx, residentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetActiveMembership", reflect.TypeOf((*MockStore)(nil).GetActiveMembership), ctx, residentID)
}

// GetChanges mocks base method.
func (m *MockStore) GetChanges(ctx context.Context, filter store.ChangesFilter) ([]schema.ChangesJournal, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetChanges", ctx, filter)
	ret0, _ := ret[0].([]schema.ChangesJournal)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetChanges indicates an expected call of GetChanges.
func (mr *MockStoreMockRecorder) GetChanges(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetChanges", reflect.TypeOf((*MockStore)(nil).GetChanges), ctx, filter)
}

// GetEncryptionKey mocks base method.
func (m *MockStore) GetEncryptionKey(ctx context.Context, keyName string, version int) (*schema.EncryptionKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetEncryptionKey", ctx, keyName, version)
	ret0, _ := ret[0].(*schema.EncryptionKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEncryptionKey indicates an expected call of GetEncryptionKey.
func (mr *MockStoreMockRecorder) GetEncryptionKey(ctx, keyName, version interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEncryptionKey", reflect.TypeOf((*MockStore)(nil).GetEncryptionKey), ctx, keyName, version)
}

// GetGeoNode mocks base method.
func (m *MockStore) GetGeoNode(ctx context.Context, code domain.GeoCode) (*schema.GeoNode, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGeoNode", ctx, code)
	ret0, _ := ret[0].(*schema.GeoNode)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGeoNode indicates an expected call of GetGeoNode.
func (mr *MockStoreMockRecorder) GetGeoNode(ctx, code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGeoNode", reflect.TypeOf((*MockStore)(nil).GetGeoNode), ctx, code)
}

// GetGeoNodes mocks base method.
func (m *MockStore) GetGeoNodes(ctx context.Context, codes []domain.GeoCode) (map[domain.GeoCode]*schema.GeoNode, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGeoNodes", ctx, codes)
	ret0, _ := ret[0].(map[domain.GeoCode]*schema.GeoNode)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGeoNodes indicates an expected call of GetGeoNodes.
func (mr *MockStoreMockRecorder) GetGeoNodes(ctx, codes interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGeoNodes", reflect.TypeOf((*MockStore)(nil).GetGeoNodes), ctx, codes)
}

// GetHouseholdByCode mocks base method.
func (m *MockStore) GetHouseholdByCode(ctx context.Context, code domain.HouseholdCode, scope domain.Scope) (*schema.Household, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHouseholdByCode", ctx, code, scope)
	ret0, _ := ret[0].(*schema.Household)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHouseholdByCode indicates an expected call of GetHouseholdByCode.
func (mr *MockStoreMockRecorder) GetHouseholdByCode(ctx, code, scope interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHouseholdByCode", reflect.TypeOf((*MockStore)(nil).GetHouseholdByCode), ctx, code, scope)
}

// GetHouseholdByExternalID mocks base method.
func (m *MockStore) GetHouseholdByExternalID(ctx context.Context, externalID string, scope domain.Scope) (*schema.Household, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHouseholdByExternalID", ctx, externalID, scope)
	ret0, _ := ret[0].(*schema.Household)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHouseholdByExternalID indicates an expected call of GetHouseholdByExternalID.
func (mr *MockStoreMockRecorder) GetHouseholdByExternalID(ctx, externalID, scope interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHouseholdByExternalID", reflect.TypeOf((*MockStore)(nil).GetHouseholdByExternalID), ctx, externalID, scope)
}

// GetHouseholdByID mocks base method.
func (m *MockStore) GetHouseholdByID(ctx context.Context, id uint64) (*schema.Household, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHouseholdByID", ctx, id)
	ret0, _ := ret[0].(*schema.Household)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHouseholdByID indicates an expected call of GetHouseholdByID.
func (mr *MockStoreMockRecorder) GetHouseholdByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHouseholdByID", reflect.TypeOf((*MockStore)(nil).GetHouseholdByID), ctx, id)
}

// GetHouseholdMemberStats mocks base method.
func (m *MockStore) GetHouseholdMemberStats(ctx context.Context, householdID uint64) (store.MemberStats, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHouseholdMemberStats", ctx, householdID)
	ret0, _ := ret[0].(store.MemberStats)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHouseholdMemberStats indicates an expected call of GetHouseholdMemberStats.
func (mr *MockStoreMockRecorder) GetHouseholdMemberStats(ctx, householdID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHouseholdMemberStats", reflect.TypeOf((*MockStore)(nil).GetHouseholdMemberStats), ctx, householdID)
}

// GetOccupationCrossRefs mocks base method.
func (m *MockStore) GetOccupationCrossRefs(ctx context.Context, code domain.OccupationCode) ([]schema.OccupationCrossRef, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOccupationCrossRefs", ctx, code)
	ret0, _ := ret[0].([]schema.OccupationCrossRef)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOccupationCrossRefs indicates an expected call of GetOccupationCrossRefs.
func (mr *MockStoreMockRecorder) GetOccupationCrossRefs(ctx, code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOccupationCrossRefs", reflect.TypeOf((*MockStore)(nil).GetOccupationCrossRefs), ctx, code)
}

// GetOccupationNode mocks base method.
func (m *MockStore) GetOccupationNode(ctx context.Context, code domain.OccupationCode) (*schema.OccupationNode, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOccupationNode", ctx, code)
	ret0, _ := ret[0].(*schema.OccupationNode)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOccupationNode indicates an expected call of GetOccupationNode.
func (mr *MockStoreMockRecorder) GetOccupationNode(ctx, code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOccupationNode", reflect.TypeOf((*MockStore)(nil).GetOccupationNode), ctx, code)
}

// GetOrCreateStreet mocks base method.
func (m *MockStore) GetOrCreateStreet(ctx context.Context, barangayCode domain.GeoCode, subdivisionID *uint64, name string) (*schema.Street, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrCreateStreet", ctx, barangayCode, subdivisionID, name)
	ret0, _ := ret[0].(*schema.Street)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrCreateStreet indicates an expected call of GetOrCreateStreet.
func (mr *MockStoreMockRecorder) GetOrCreateStreet(ctx, barangayCode, subdivisionID, name interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrCreateStreet", reflect.TypeOf((*MockStore)(nil).GetOrCreateStreet), ctx, barangayCode, subdivisionID, name)
}

// GetOrCreateSubdivision mocks base method.
func (m *MockStore) GetOrCreateSubdivision(ctx context.Context, barangayCode domain.GeoCode, name string) (*schema.Subdivision, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOrCreateSubdivision", ctx, barangayCode, name)
	ret0, _ := ret[0].(*schema.Subdivision)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOrCreateSubdivision indicates an expected call of GetOrCreateSubdivision.
func (mr *MockStoreMockRecorder) GetOrCreateSubdivision(ctx, barangayCode, name interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOrCreateSubdivision", reflect.TypeOf((*MockStore)(nil).GetOrCreateSubdivision), ctx, barangayCode, name)
}

// GetRekeyCursor mocks base method.
func (m *MockStore) GetRekeyCursor(ctx context.Context, keyName string) (*schema.RekeyCursor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRekeyCursor", ctx, keyName)
	ret0, _ := ret[0].(*schema.RekeyCursor)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRekeyCursor indicates an expected call of GetRekeyCursor.
func (mr *MockStoreMockRecorder) GetRekeyCursor(ctx, keyName interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRekeyCursor", reflect.TypeOf((*MockStore)(nil).GetRekeyCursor), ctx, keyName)
}

// GetResidentByExternalID mocks base method.
func (m *MockStore) GetResidentByExternalID(ctx context.Context, externalID string, scope domain.Scope) (*schema.Resident, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetResidentByExternalID", ctx, externalID, scope)
	ret0, _ := ret[0].(*schema.Resident)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetResidentByExternalID indicates an expected call of GetResidentByExternalID.
func (mr *MockStoreMockRecorder) GetResidentByExternalID(ctx, externalID, scope interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetResidentByExternalID", reflect.TypeOf((*MockStore)(nil).GetResidentByExternalID), ctx, externalID, scope)
}

// GetResidentByID mocks base method.
func (m *MockStore) GetResidentByID(ctx context.Context, id uint64) (*schema.Resident, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetResidentByID", ctx, id)
	ret0, _ := ret[0].(*schema.Resident)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetResidentByID indicates an expected call of GetResidentByID.
func (mr *MockStoreMockRecorder) GetResidentByID(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetResidentByID", reflect.TypeOf((*MockStore)(nil).GetResidentByID), ctx, id)
}

// GetStreet mocks base method.
func (m *MockStore) GetStreet(ctx context.Context, id uint64) (*schema.Street, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStreet", ctx, id)
	ret0, _ := ret[0].(*schema.Street)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStreet indicates an expected call of GetStreet.
func (mr *MockStoreMockRecorder) GetStreet(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStreet", reflect.TypeOf((*MockStore)(nil).GetStreet), ctx, id)
}

// GetSubdivision mocks base method.
func (m *MockStore) GetSubdivision(ctx context.Context, id uint64) (*schema.Subdivision, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSubdivision", ctx, id)
	ret0, _ := ret[0].(*schema.Subdivision)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSubdivision indicates an expected call of GetSubdivision.
func (mr *MockStoreMockRecorder) GetSubdivision(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSubdivision", reflect.TypeOf((*MockStore)(nil).GetSubdivision), ctx, id)
}

// HouseholdHeadedBy mocks base method.
func (m *MockStore) HouseholdHeadedBy(ctx context.Context, residentID uint64) (*schema.Household, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HouseholdHeadedBy", ctx, residentID)
	ret0, _ := ret[0].(*schema.Household)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HouseholdHeadedBy indicates an expected call of HouseholdHeadedBy.
func (mr *MockStoreMockRecorder) HouseholdHeadedBy(ctx, residentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HouseholdHeadedBy", reflect.TypeOf((*MockStore)(nil).HouseholdHeadedBy), ctx, residentID)
}

// ListActiveMemberships mocks base method.
func (m *MockStore) ListActiveMemberships(ctx context.Context, householdID uint64) ([]schema.HouseholdMembership, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListActiveMemberships", ctx, householdID)
	ret0, _ := ret[0].([]schema.HouseholdMembership)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListActiveMemberships indicates an expected call of ListActiveMemberships.
func (mr *MockStoreMockRecorder) ListActiveMemberships(ctx, householdID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListActiveMemberships", reflect.TypeOf((*MockStore)(nil).ListActiveMemberships), ctx, householdID)
}

// ListResidentsBehindKeyVersion mocks base method.
func (m *MockStore) ListResidentsBehindKeyVersion(ctx context.Context, targetVersion int, afterID uint64, limit int) ([]schema.Resident, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListResidentsBehindKeyVersion", ctx, targetVersion, afterID, limit)
	ret0, _ := ret[0].([]schema.Resident)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListResidentsBehindKeyVersion indicates an expected call of ListResidentsBehindKeyVersion.
func (mr *MockStoreMockRecorder) ListResidentsBehindKeyVersion(ctx, targetVersion, afterID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListResidentsBehindKeyVersion", reflect.TypeOf((*MockStore)(nil).ListResidentsBehindKeyVersion), ctx, targetVersion, afterID, limit)
}

// RotateEncryptionKey mocks base method.
func (m *MockStore) RotateEncryptionKey(ctx context.Context, keyName, material string) (*schema.EncryptionKey, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RotateEncryptionKey", ctx, keyName, material)
	ret0, _ := ret[0].(*schema.EncryptionKey)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RotateEncryptionKey indicates an expected call of RotateEncryptionKey.
func (mr *MockStoreMockRecorder) RotateEncryptionKey(ctx, keyName, material interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RotateEncryptionKey", reflect.TypeOf((*MockStore)(nil).RotateEncryptionKey), ctx, keyName, material)
}

// SaveRekeyCursor mocks base method.
func (m *MockStore) SaveRekeyCursor(ctx context.Context, cursor *schema.RekeyCursor) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveRekeyCursor", ctx, cursor)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveRekeyCursor indicates an expected call of SaveRekeyCursor.
func (mr *MockStoreMockRecorder) SaveRekeyCursor(ctx, cursor interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveRekeyCursor", reflect.TypeOf((*MockStore)(nil).SaveRekeyCursor), ctx, cursor)
}

// SearchGeoNodes mocks base method.
func (m *MockStore) SearchGeoNodes(ctx context.Context, filter store.GeoSearchFilter) ([]schema.GeoNode, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchGeoNodes", ctx, filter)
	ret0, _ := ret[0].([]schema.GeoNode)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SearchGeoNodes indicates an expected call of SearchGeoNodes.
func (mr *MockStoreMockRecorder) SearchGeoNodes(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchGeoNodes", reflect.TypeOf((*MockStore)(nil).SearchGeoNodes), ctx, filter)
}

// SearchHouseholds mocks base method.
func (m *MockStore) SearchHouseholds(ctx context.Context, filter store.HouseholdSearchFilter) ([]schema.Household, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchHouseholds", ctx, filter)
	ret0, _ := ret[0].([]schema.Household)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SearchHouseholds indicates an expected call of SearchHouseholds.
func (mr *MockStoreMockRecorder) SearchHouseholds(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchHouseholds", reflect.TypeOf((*MockStore)(nil).SearchHouseholds), ctx, filter)
}

// SearchOccupationNodes mocks base method.
func (m *MockStore) SearchOccupationNodes(ctx context.Context, filter store.OccupationSearchFilter) ([]schema.OccupationNode, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchOccupationNodes", ctx, filter)
	ret0, _ := ret[0].([]schema.OccupationNode)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SearchOccupationNodes indicates an expected call of SearchOccupationNodes.
func (mr *MockStoreMockRecorder) SearchOccupationNodes(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchOccupationNodes", reflect.TypeOf((*MockStore)(nil).SearchOccupationNodes), ctx, filter)
}

// SearchOccupationTitles mocks base method.
func (m *MockStore) SearchOccupationTitles(ctx context.Context, term string, limit int) ([]schema.OccupationTitle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchOccupationTitles", ctx, term, limit)
	ret0, _ := ret[0].([]schema.OccupationTitle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchOccupationTitles indicates an expected call of SearchOccupationTitles.
func (mr *MockStoreMockRecorder) SearchOccupationTitles(ctx, term, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchOccupationTitles", reflect.TypeOf((*MockStore)(nil).SearchOccupationTitles), ctx, term, limit)
}

// Transaction mocks base method.
func (m *MockStore) Transaction(ctx context.Context, fn func(store.Store) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transaction", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Transaction indicates an expected call of Transaction.
func (mr *MockStoreMockRecorder) Transaction(ctx, fn interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transaction", reflect.TypeOf((*MockStore)(nil).Transaction), ctx, fn)
}

// UpdateHousehold mocks base method.
func (m *MockStore) UpdateHousehold(ctx context.Context, household *schema.Household) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateHousehold", ctx, household)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateHousehold indicates an expected call of UpdateHousehold.
func (mr *MockStoreMockRecorder) UpdateHousehold(ctx, household interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateHousehold", reflect.TypeOf((*MockStore)(nil).UpdateHousehold), ctx, household)
}

// UpdateResident mocks base method.
func (m *MockStore) UpdateResident(ctx context.Context, resident *schema.Resident) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateResident", ctx, resident)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateResident indicates an expected call of UpdateResident.
func (mr *MockStoreMockRecorder) UpdateResident(ctx, resident interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateResident", reflect.TypeOf((*MockStore)(nil).UpdateResident), ctx, resident)
}

// UpsertGeoNodes mocks base method.
func (m *MockStore) UpsertGeoNodes(ctx context.Context, nodes []schema.GeoNode) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertGeoNodes", ctx, nodes)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertGeoNodes indicates an expected call of UpsertGeoNodes.
func (mr *MockStoreMockRecorder) UpsertGeoNodes(ctx, nodes interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertGeoNodes", reflect.TypeOf((*MockStore)(nil).UpsertGeoNodes), ctx, nodes)
}

// UpsertOccupationCrossRefs mocks base method.
func (m *MockStore) UpsertOccupationCrossRefs(ctx context.Context, refs []schema.OccupationCrossRef) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertOccupationCrossRefs", ctx, refs)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertOccupationCrossRefs indicates an expected call of UpsertOccupationCrossRefs.
func (mr *MockStoreMockRecorder) UpsertOccupationCrossRefs(ctx, refs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertOccupationCrossRefs", reflect.TypeOf((*MockStore)(nil).UpsertOccupationCrossRefs), ctx, refs)
}

// UpsertOccupationNodes mocks base method.
func (m *MockStore) UpsertOccupationNodes(ctx context.Context, nodes []schema.OccupationNode) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertOccupationNodes", ctx, nodes)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertOccupationNodes indicates an expected call of UpsertOccupationNodes.
func (mr *MockStoreMockRecorder) UpsertOccupationNodes(ctx, nodes interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertOccupationNodes", reflect.TypeOf((*MockStore)(nil).UpsertOccupationNodes), ctx, nodes)
}

// UpsertOccupationTitles mocks base method.
func (m *MockStore) UpsertOccupationTitles(ctx context.Context, titles []schema.OccupationTitle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertOccupationTitles", ctx, titles)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertOccupationTitles indicates an expected call of UpsertOccupationTitles.
func (mr *MockStoreMockRecorder) UpsertOccupationTitles(ctx, titles interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertOccupationTitles", reflect.TypeOf((*MockStore)(nil).UpsertOccupationTitles), ctx, titles)
}
