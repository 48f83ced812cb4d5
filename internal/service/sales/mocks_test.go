// Code generated by MockGen. DO NOT EDIT.
// Source: types.go

// Package sales is a generated GoMock package.
package sales

import (
	context "context"
	reflect "reflect"

	model "github.com/equipledger/salesledger-backend/internal/model"
	gomock "github.com/golang/mock/gomock"
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

// CreateTransaction mocks base method.
func (m *MockStore) CreateTransaction(ctx context.Context, transaction model.Transaction) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateTransaction", ctx, transaction)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateTransaction indicates an expected call of CreateTransaction.
func (mr *MockStoreMockRecorder) CreateTransaction(ctx, transaction interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateTransaction", reflect.TypeOf((*MockStore)(nil).CreateTransaction), ctx, transaction)
}

// ItemsByIDs mocks base method.
func (m *MockStore) ItemsByIDs(ctx context.Context, itemIDs []string) (map[string]model.Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ItemsByIDs", ctx, itemIDs)
	ret0, _ := ret[0].(map[string]model.Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ItemsByIDs indicates an expected call of ItemsByIDs.
func (mr *MockStoreMockRecorder) ItemsByIDs(ctx, itemIDs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ItemsByIDs", reflect.TypeOf((*MockStore)(nil).ItemsByIDs), ctx, itemIDs)
}

// ListByAgent mocks base method.
func (m *MockStore) ListByAgent(ctx context.Context, agentID string) ([]model.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByAgent", ctx, agentID)
	ret0, _ := ret[0].([]model.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByAgent indicates an expected call of ListByAgent.
func (mr *MockStoreMockRecorder) ListByAgent(ctx, agentID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByAgent", reflect.TypeOf((*MockStore)(nil).ListByAgent), ctx, agentID)
}

// ListItems mocks base method.
func (m *MockStore) ListItems(ctx context.Context) ([]model.Item, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListItems", ctx)
	ret0, _ := ret[0].([]model.Item)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListItems indicates an expected call of ListItems.
func (mr *MockStoreMockRecorder) ListItems(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListItems", reflect.TypeOf((*MockStore)(nil).ListItems), ctx)
}
