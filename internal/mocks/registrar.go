// Code generated by MockGen. DO NOT EDIT.
// Source: service.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	domain "github.com/openbarangay/registry/internal/domain"
	registrar "github.com/openbarangay/registry/internal/registrar"
	store "github.com/openbarangay/registry/internal/store"
)

// MockRegistrarService is a mock of Service interface.
type MockRegistrarService struct {
	ctrl     *gomock.Controller
	recorder *MockRegistrarServiceMockRecorder
}

// MockRegistrarServiceMockRecorder is the mock recorder for MockRegistrarService.
type MockRegistrarServiceMockRecorder struct {
	mock *MockRegistrarService
}

// NewMockRegistrarService creates a new mock instance.
func NewMockRegistrarService(ctrl *gomock.Controller) *MockRegistrarService {
	mock := &MockRegistrarService{ctrl: ctrl}
	mock.recorder = &MockRegistrarServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRegistrarService) EXPECT() *MockRegistrarServiceMockRecorder {
	return m.recorder
}

// AddMember mocks base method.
func (m *MockRegistrarService) AddMember(ctx context.Context, principal domain.Principal, in registrar.AddMemberInput) (*registrar.HouseholdResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddMember", ctx, principal, in)
	ret0, _ := ret[0].(*registrar.HouseholdResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddMember indicates an expected call of AddMember.
func (mr *MockRegistrarServiceMockRecorder) AddMember(ctx, principal, in interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddMember", reflect.TypeOf((*MockRegistrarService)(nil).AddMember), ctx, principal, in)
}

// CreateHousehold mocks base method.
func (m *MockRegistrarService) CreateHousehold(ctx context.Context, principal domain.Principal, in registrar.CreateHouseholdInput) (*registrar.HouseholdResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateHousehold", ctx, principal, in)
	ret0, _ := ret[0].(*registrar.HouseholdResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateHousehold indicates an expected call of CreateHousehold.
func (mr *MockRegistrarServiceMockRecorder) CreateHousehold(ctx, principal, in interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateHousehold", reflect.TypeOf((*MockRegistrarService)(nil).CreateHousehold), ctx, principal, in)
}

// CreateResident mocks base method.
func (m *MockRegistrarService) CreateResident(ctx context.Context, principal domain.Principal, in registrar.ResidentInput) (*registrar.ResidentResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateResident", ctx, principal, in)
	ret0, _ := ret[0].(*registrar.ResidentResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateResident indicates an expected call of CreateResident.
func (mr *MockRegistrarServiceMockRecorder) CreateResident(ctx, principal, in interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateResident", reflect.TypeOf((*MockRegistrarService)(nil).CreateResident), ctx, principal, in)
}

// DeactivateHousehold mocks base method.
func (m *MockRegistrarService) DeactivateHousehold(ctx context.Context, principal domain.Principal, externalID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeactivateHousehold", ctx, principal, externalID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeactivateHousehold indicates an expected call of DeactivateHousehold.
func (mr *MockRegistrarServiceMockRecorder) DeactivateHousehold(ctx, principal, externalID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeactivateHousehold", reflect.TypeOf((*MockRegistrarService)(nil).DeactivateHousehold), ctx, principal, externalID)
}

// DeactivateResident mocks base method.
func (m *MockRegistrarService) DeactivateResident(ctx context.Context, principal domain.Principal, externalID string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeactivateResident", ctx, principal, externalID)
	ret0, _ := ret[0].(error)
	return ret0
}

// DeactivateResident indicates an expected call of DeactivateResident.
func (mr *MockRegistrarServiceMockRecorder) DeactivateResident(ctx, principal, externalID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeactivateResident", reflect.TypeOf((*MockRegistrarService)(nil).DeactivateResident), ctx, principal, externalID)
}

// FindResidents mocks base method.
func (m *MockRegistrarService) FindResidents(ctx context.Context, principal domain.Principal, field, value string) ([]registrar.ResidentView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindResidents", ctx, principal, field, value)
	ret0, _ := ret[0].([]registrar.ResidentView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindResidents indicates an expected call of FindResidents.
func (mr *MockRegistrarServiceMockRecorder) FindResidents(ctx, principal, field, value interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindResidents", reflect.TypeOf((*MockRegistrarService)(nil).FindResidents), ctx, principal, field, value)
}

// GetChanges mocks base method.
func (m *MockRegistrarService) GetChanges(ctx context.Context, principal domain.Principal, filter store.ChangesFilter) ([]registrar.ChangeView, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetChanges", ctx, principal, filter)
	ret0, _ := ret[0].([]registrar.ChangeView)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// GetChanges indicates an expected call of GetChanges.
func (mr *MockRegistrarServiceMockRecorder) GetChanges(ctx, principal, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetChanges", reflect.TypeOf((*MockRegistrarService)(nil).GetChanges), ctx, principal, filter)
}

// GetHousehold mocks base method.
func (m *MockRegistrarService) GetHousehold(ctx context.Context, principal domain.Principal, externalID string) (*registrar.HouseholdView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHousehold", ctx, principal, externalID)
	ret0, _ := ret[0].(*registrar.HouseholdView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHousehold indicates an expected call of GetHousehold.
func (mr *MockRegistrarServiceMockRecorder) GetHousehold(ctx, principal, externalID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHousehold", reflect.TypeOf((*MockRegistrarService)(nil).GetHousehold), ctx, principal, externalID)
}

// GetResident mocks base method.
func (m *MockRegistrarService) GetResident(ctx context.Context, principal domain.Principal, externalID string, mode domain.ReadMode) (*registrar.ResidentView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetResident", ctx, principal, externalID, mode)
	ret0, _ := ret[0].(*registrar.ResidentView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetResident indicates an expected call of GetResident.
func (mr *MockRegistrarServiceMockRecorder) GetResident(ctx, principal, externalID, mode interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetResident", reflect.TypeOf((*MockRegistrarService)(nil).GetResident), ctx, principal, externalID, mode)
}

// RemoveMember mocks base method.
func (m *MockRegistrarService) RemoveMember(ctx context.Context, principal domain.Principal, householdExternalID, residentExternalID string) (*registrar.HouseholdResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveMember", ctx, principal, householdExternalID, residentExternalID)
	ret0, _ := ret[0].(*registrar.HouseholdResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RemoveMember indicates an expected call of RemoveMember.
func (mr *MockRegistrarServiceMockRecorder) RemoveMember(ctx, principal, householdExternalID, residentExternalID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveMember", reflect.TypeOf((*MockRegistrarService)(nil).RemoveMember), ctx, principal, householdExternalID, residentExternalID)
}

// SearchHouseholds mocks base method.
func (m *MockRegistrarService) SearchHouseholds(ctx context.Context, principal domain.Principal, term string, limit int, offset uint64) ([]registrar.HouseholdView, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchHouseholds", ctx, principal, term, limit, offset)
	ret0, _ := ret[0].([]registrar.HouseholdView)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SearchHouseholds indicates an expected call of SearchHouseholds.
func (mr *MockRegistrarServiceMockRecorder) SearchHouseholds(ctx, principal, term, limit, offset interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchHouseholds", reflect.TypeOf((*MockRegistrarService)(nil).SearchHouseholds), ctx, principal, term, limit, offset)
}

// UpdateHousehold mocks base method.
func (m *MockRegistrarService) UpdateHousehold(ctx context.Context, principal domain.Principal, externalID string, in registrar.UpdateHouseholdInput) (*registrar.HouseholdResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateHousehold", ctx, principal, externalID, in)
	ret0, _ := ret[0].(*registrar.HouseholdResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateHousehold indicates an expected call of UpdateHousehold.
func (mr *MockRegistrarServiceMockRecorder) UpdateHousehold(ctx, principal, externalID, in interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateHousehold", reflect.TypeOf((*MockRegistrarService)(nil).UpdateHousehold), ctx, principal, externalID, in)
}

// UpdateResident mocks base method.
func (m *MockRegistrarService) UpdateResident(ctx context.Context, principal domain.Principal, externalID string, in registrar.ResidentInput) (*registrar.ResidentResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateResident", ctx, principal, externalID, in)
	ret0, _ := ret[0].(*registrar.ResidentResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateResident indicates an expected call of UpdateResident.
func (mr *MockRegistrarServiceMockRecorder) UpdateResident(ctx, principal, externalID, in interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateResident", reflect.TypeOf((*MockRegistrarService)(nil).UpdateResident), ctx, principal, externalID, in)
}
