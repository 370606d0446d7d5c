// Code generated by MockGen. DO NOT EDIT.
// Source: deriver.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	deriver "github.com/openbarangay/registry/internal/deriver"
	store "github.com/openbarangay/registry/internal/store"
	schema "github.com/openbarangay/registry/internal/store/schema"
	vault "github.com/openbarangay/registry/internal/vault"
)

// MockResolver is a mock of Resolver interface.
type MockResolver struct {
	ctrl     *gomock.Controller
	recorder *MockResolverMockRecorder
}

// MockResolverMockRecorder is the mock recorder for MockResolver.
type MockResolverMockRecorder struct {
	mock *MockResolver
}

// NewMockResolver creates a new mock instance.
func NewMockResolver(ctrl *gomock.Controller) *MockResolver {
	mock := &MockResolver{ctrl: ctrl}
	mock.recorder = &MockResolverMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResolver) EXPECT() *MockResolverMockRecorder {
	return m.recorder
}

// OnHouseholdWrite mocks base method.
func (m *MockResolver) OnHouseholdWrite(ctx context.Context, tx store.Store, household *schema.Household, access vault.AccessContext) ([]deriver.Warning, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OnHouseholdWrite", ctx, tx, household, access)
	ret0, _ := ret[0].([]deriver.Warning)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OnHouseholdWrite indicates an expected call of OnHouseholdWrite.
func (mr *MockResolverMockRecorder) OnHouseholdWrite(ctx, tx, household, access interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnHouseholdWrite", reflect.TypeOf((*MockResolver)(nil).OnHouseholdWrite), ctx, tx, household, access)
}

// OnResidentWrite mocks base method.
func (m *MockResolver) OnResidentWrite(ctx context.Context, tx store.Store, resident *schema.Resident, plain deriver.ResidentPlaintext) ([]deriver.Warning, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OnResidentWrite", ctx, tx, resident, plain)
	ret0, _ := ret[0].([]deriver.Warning)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OnResidentWrite indicates an expected call of OnResidentWrite.
func (mr *MockResolverMockRecorder) OnResidentWrite(ctx, tx, resident, plain interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnResidentWrite", reflect.TypeOf((*MockResolver)(nil).OnResidentWrite), ctx, tx, resident, plain)
}
