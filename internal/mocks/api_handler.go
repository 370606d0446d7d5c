// Code generated by MockGen. DO NOT EDIT.
// Source: handler.go

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	gin "github.com/gin-gonic/gin"
	gomock "github.com/golang/mock/gomock"
)

// MockAPIHandler is a mock of Handler interface.
type MockAPIHandler struct {
	ctrl     *gomock.Controller
	recorder *MockAPIHandlerMockRecorder
}

// MockAPIHandlerMockRecorder is the mock recorder for MockAPIHandler.
type MockAPIHandlerMockRecorder struct {
	mock *MockAPIHandler
}

// NewMockAPIHandler creates a new mock instance.
func NewMockAPIHandler(ctrl *gomock.Controller) *MockAPIHandler {
	mock := &MockAPIHandler{ctrl: ctrl}
	mock.recorder = &MockAPIHandlerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAPIHandler) EXPECT() *MockAPIHandlerMockRecorder {
	return m.recorder
}

// AddMember mocks base method.
func (m *MockAPIHandler) AddMember(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddMember", c)
}

// AddMember indicates an expected call of AddMember.
func (mr *MockAPIHandlerMockRecorder) AddMember(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddMember", reflect.TypeOf((*MockAPIHandler)(nil).AddMember), c)
}

// CreateHousehold mocks base method.
func (m *MockAPIHandler) CreateHousehold(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "CreateHousehold", c)
}

// CreateHousehold indicates an expected call of CreateHousehold.
func (mr *MockAPIHandlerMockRecorder) CreateHousehold(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateHousehold", reflect.TypeOf((*MockAPIHandler)(nil).CreateHousehold), c)
}

// CreateResident mocks base method.
func (m *MockAPIHandler) CreateResident(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "CreateResident", c)
}

// CreateResident indicates an expected call of CreateResident.
func (mr *MockAPIHandlerMockRecorder) CreateResident(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateResident", reflect.TypeOf((*MockAPIHandler)(nil).CreateResident), c)
}

// DeactivateHousehold mocks base method.
func (m *MockAPIHandler) DeactivateHousehold(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DeactivateHousehold", c)
}

// DeactivateHousehold indicates an expected call of DeactivateHousehold.
func (mr *MockAPIHandlerMockRecorder) DeactivateHousehold(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeactivateHousehold", reflect.TypeOf((*MockAPIHandler)(nil).DeactivateHousehold), c)
}

// DeactivateResident mocks base method.
func (m *MockAPIHandler) DeactivateResident(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DeactivateResident", c)
}

// DeactivateResident indicates an expected call of DeactivateResident.
func (mr *MockAPIHandlerMockRecorder) DeactivateResident(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeactivateResident", reflect.TypeOf((*MockAPIHandler)(nil).DeactivateResident), c)
}

// FindResidents mocks base method.
func (m *MockAPIHandler) FindResidents(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "FindResidents", c)
}

// FindResidents indicates an expected call of FindResidents.
func (mr *MockAPIHandlerMockRecorder) FindResidents(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindResidents", reflect.TypeOf((*MockAPIHandler)(nil).FindResidents), c)
}

// GetChanges mocks base method.
func (m *MockAPIHandler) GetChanges(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetChanges", c)
}

// GetChanges indicates an expected call of GetChanges.
func (mr *MockAPIHandlerMockRecorder) GetChanges(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetChanges", reflect.TypeOf((*MockAPIHandler)(nil).GetChanges), c)
}

// GetHousehold mocks base method.
func (m *MockAPIHandler) GetHousehold(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetHousehold", c)
}

// GetHousehold indicates an expected call of GetHousehold.
func (mr *MockAPIHandlerMockRecorder) GetHousehold(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHousehold", reflect.TypeOf((*MockAPIHandler)(nil).GetHousehold), c)
}

// GetResident mocks base method.
func (m *MockAPIHandler) GetResident(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetResident", c)
}

// GetResident indicates an expected call of GetResident.
func (mr *MockAPIHandlerMockRecorder) GetResident(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetResident", reflect.TypeOf((*MockAPIHandler)(nil).GetResident), c)
}

// HealthCheck mocks base method.
func (m *MockAPIHandler) HealthCheck(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "HealthCheck", c)
}

// HealthCheck indicates an expected call of HealthCheck.
func (mr *MockAPIHandlerMockRecorder) HealthCheck(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HealthCheck", reflect.TypeOf((*MockAPIHandler)(nil).HealthCheck), c)
}

// RemoveMember mocks base method.
func (m *MockAPIHandler) RemoveMember(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RemoveMember", c)
}

// RemoveMember indicates an expected call of RemoveMember.
func (mr *MockAPIHandlerMockRecorder) RemoveMember(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveMember", reflect.TypeOf((*MockAPIHandler)(nil).RemoveMember), c)
}

// ResolveGeo mocks base method.
func (m *MockAPIHandler) ResolveGeo(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ResolveGeo", c)
}

// ResolveGeo indicates an expected call of ResolveGeo.
func (mr *MockAPIHandlerMockRecorder) ResolveGeo(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveGeo", reflect.TypeOf((*MockAPIHandler)(nil).ResolveGeo), c)
}

// ResolveOccupation mocks base method.
func (m *MockAPIHandler) ResolveOccupation(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ResolveOccupation", c)
}

// ResolveOccupation indicates an expected call of ResolveOccupation.
func (mr *MockAPIHandlerMockRecorder) ResolveOccupation(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolveOccupation", reflect.TypeOf((*MockAPIHandler)(nil).ResolveOccupation), c)
}

// RotateKey mocks base method.
func (m *MockAPIHandler) RotateKey(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RotateKey", c)
}

// RotateKey indicates an expected call of RotateKey.
func (mr *MockAPIHandlerMockRecorder) RotateKey(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RotateKey", reflect.TypeOf((*MockAPIHandler)(nil).RotateKey), c)
}

// SearchGeo mocks base method.
func (m *MockAPIHandler) SearchGeo(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SearchGeo", c)
}

// SearchGeo indicates an expected call of SearchGeo.
func (mr *MockAPIHandlerMockRecorder) SearchGeo(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchGeo", reflect.TypeOf((*MockAPIHandler)(nil).SearchGeo), c)
}

// SearchHouseholds mocks base method.
func (m *MockAPIHandler) SearchHouseholds(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SearchHouseholds", c)
}

// SearchHouseholds indicates an expected call of SearchHouseholds.
func (mr *MockAPIHandlerMockRecorder) SearchHouseholds(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchHouseholds", reflect.TypeOf((*MockAPIHandler)(nil).SearchHouseholds), c)
}

// SearchOccupation mocks base method.
func (m *MockAPIHandler) SearchOccupation(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SearchOccupation", c)
}

// SearchOccupation indicates an expected call of SearchOccupation.
func (mr *MockAPIHandlerMockRecorder) SearchOccupation(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchOccupation", reflect.TypeOf((*MockAPIHandler)(nil).SearchOccupation), c)
}

// UpdateHousehold mocks base method.
func (m *MockAPIHandler) UpdateHousehold(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "UpdateHousehold", c)
}

// UpdateHousehold indicates an expected call of UpdateHousehold.
func (mr *MockAPIHandlerMockRecorder) UpdateHousehold(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateHousehold", reflect.TypeOf((*MockAPIHandler)(nil).UpdateHousehold), c)
}

// UpdateResident mocks base method.
func (m *MockAPIHandler) UpdateResident(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "UpdateResident", c)
}

// UpdateResident indicates an expected call of UpdateResident.
func (mr *MockAPIHandlerMockRecorder) UpdateResident(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateResident", reflect.TypeOf((*MockAPIHandler)(nil).UpdateResident), c)
}
