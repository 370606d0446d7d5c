// Code generated by MockGen. DO NOT EDIT.
// Source: service.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	domain "github.com/openbarangay/registry/internal/domain"
	reference "github.com/openbarangay/registry/internal/reference"
	store "github.com/openbarangay/registry/internal/store"
	schema "github.com/openbarangay/registry/internal/store/schema"
)

// MockReferenceService is a mock of Service interface.
type MockReferenceService struct {
	ctrl     *gomock.Controller
	recorder *MockReferenceServiceMockRecorder
}

// MockReferenceServiceMockRecorder is the mock recorder for MockReferenceService.
type MockReferenceServiceMockRecorder struct {
	mock *MockReferenceService
}

// NewMockReferenceService creates a new mock instance.
func NewMockReferenceService(ctrl *gomock.Controller) *MockReferenceService {
	mock := &MockReferenceService{ctrl: ctrl}
	mock.recorder = &MockReferenceServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReferenceService) EXPECT() *MockReferenceServiceMockRecorder {
	return m.recorder
}

// OccupationCrossRefs mocks base method.
func (m *MockReferenceService) OccupationCrossRefs(ctx context.Context, code domain.OccupationCode) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OccupationCrossRefs", ctx, code)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OccupationCrossRefs indicates an expected call of OccupationCrossRefs.
func (mr *MockReferenceServiceMockRecorder) OccupationCrossRefs(ctx, code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OccupationCrossRefs", reflect.TypeOf((*MockReferenceService)(nil).OccupationCrossRefs), ctx, code)
}

// ResolveGeo mocks base method.
func (m *MockReferenceService) ResolveGeo(ctx context.Context, code domain.GeoCode) ([]reference.NamePathSegment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveGeo", ctx, code)
	ret0, _ := ret[0].([]reference.NamePathSegment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ResolveGeo indicates an expected call of ResolveGeo.
func (mr *MockReferenceServiceMockRecorder) ResolveGeo(ctx, code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveGeo", reflect.TypeOf((*MockReferenceService)(nil).ResolveGeo), ctx, code)
}

// ResolveOccupation mocks base method.
func (m *MockReferenceService) ResolveOccupation(ctx context.Context, code domain.OccupationCode) ([]reference.NamePathSegment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolveOccupation", ctx, code)
	ret0, _ := ret[0].([]reference.NamePathSegment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ResolveOccupation indicates an expected call of ResolveOccupation.
func (mr *MockReferenceServiceMockRecorder) ResolveOccupation(ctx, code interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveOccupation", reflect.TypeOf((*MockReferenceService)(nil).ResolveOccupation), ctx, code)
}

// SearchGeo mocks base method.
func (m *MockReferenceService) SearchGeo(ctx context.Context, filter store.GeoSearchFilter) ([]schema.GeoNode, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchGeo", ctx, filter)
	ret0, _ := ret[0].([]schema.GeoNode)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SearchGeo indicates an expected call of SearchGeo.
func (mr *MockReferenceServiceMockRecorder) SearchGeo(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchGeo", reflect.TypeOf((*MockReferenceService)(nil).SearchGeo), ctx, filter)
}

// SearchOccupation mocks base method.
func (m *MockReferenceService) SearchOccupation(ctx context.Context, filter store.OccupationSearchFilter) ([]reference.OccupationMatch, uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchOccupation", ctx, filter)
	ret0, _ := ret[0].([]reference.OccupationMatch)
	ret1, _ := ret[1].(uint64)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// SearchOccupation indicates an expected call of SearchOccupation.
func (mr *MockReferenceServiceMockRecorder) SearchOccupation(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchOccupation", reflect.TypeOf((*MockReferenceService)(nil).SearchOccupation), ctx, filter)
}
