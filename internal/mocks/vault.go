// Code generated by MockGen. DO NOT EDIT.
// Source: vault.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	store "github.com/openbarangay/registry/internal/store"
	vault "github.com/openbarangay/registry/internal/vault"
)

// MockVault is a mock of Vault interface.
type MockVault struct {
	ctrl     *gomock.Controller
	recorder *MockVaultMockRecorder
}

// MockVaultMockRecorder is the mock recorder for MockVault.
type MockVaultMockRecorder struct {
	mock *MockVault
}

// NewMockVault creates a new mock instance.
func NewMockVault(ctrl *gomock.Controller) *MockVault {
	mock := &MockVault{ctrl: ctrl}
	mock.recorder = &MockVaultMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVault) EXPECT() *MockVaultMockRecorder {
	return m.recorder
}

// ActiveVersion mocks base method.
func (m *MockVault) ActiveVersion(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ActiveVersion", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ActiveVersion indicates an expected call of ActiveVersion.
func (mr *MockVaultMockRecorder) ActiveVersion(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ActiveVersion", reflect.TypeOf((*MockVault)(nil).ActiveVersion), ctx)
}

// Decrypt mocks base method.
func (m *MockVault) Decrypt(ctx context.Context, tx store.Store, ciphertext []byte, keyVersion int, access vault.AccessContext) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Decrypt", ctx, tx, ciphertext, keyVersion, access)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Decrypt indicates an expected call of Decrypt.
func (mr *MockVaultMockRecorder) Decrypt(ctx, tx, ciphertext, keyVersion, access interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Decrypt", reflect.TypeOf((*MockVault)(nil).Decrypt), ctx, tx, ciphertext, keyVersion, access)
}

// Encrypt mocks base method.
func (m *MockVault) Encrypt(ctx context.Context, plaintext string) ([]byte, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Encrypt", ctx, plaintext)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Encrypt indicates an expected call of Encrypt.
func (mr *MockVaultMockRecorder) Encrypt(ctx, plaintext interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Encrypt", reflect.TypeOf((*MockVault)(nil).Encrypt), ctx, plaintext)
}

// Reencrypt mocks base method.
func (m *MockVault) Reencrypt(ctx context.Context, ciphertext []byte, fromVersion int) ([]byte, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reencrypt", ctx, ciphertext, fromVersion)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(int)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Reencrypt indicates an expected call of Reencrypt.
func (mr *MockVaultMockRecorder) Reencrypt(ctx, ciphertext, fromVersion interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reencrypt", reflect.TypeOf((*MockVault)(nil).Reencrypt), ctx, ciphertext, fromVersion)
}

// ReencryptWithHash mocks base method.
func (m *MockVault) ReencryptWithHash(ctx context.Context, ciphertext []byte, fromVersion int) ([]byte, string, int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReencryptWithHash", ctx, ciphertext, fromVersion)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(int)
	ret3, _ := ret[3].(error)
	return ret0, ret1, ret2, ret3
}

// ReencryptWithHash indicates an expected call of ReencryptWithHash.
func (mr *MockVaultMockRecorder) ReencryptWithHash(ctx, ciphertext, fromVersion interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReencryptWithHash", reflect.TypeOf((*MockVault)(nil).ReencryptWithHash), ctx, ciphertext, fromVersion)
}

// Rotate mocks base method.
func (m *MockVault) Rotate(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Rotate", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Rotate indicates an expected call of Rotate.
func (mr *MockVaultMockRecorder) Rotate(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rotate", reflect.TypeOf((*MockVault)(nil).Rotate), ctx)
}

// SearchHash mocks base method.
func (m *MockVault) SearchHash(ctx context.Context, plaintext string, keyVersion int) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchHash", ctx, plaintext, keyVersion)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchHash indicates an expected call of SearchHash.
func (mr *MockVaultMockRecorder) SearchHash(ctx, plaintext, keyVersion interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchHash", reflect.TypeOf((*MockVault)(nil).SearchHash), ctx, plaintext, keyVersion)
}
