// Code generated by MockGen. DO NOT EDIT.
// Source: types.go

// Package reconciler is a generated GoMock package.
package reconciler

import (
	context "context"
	reflect "reflect"
	time "time"

	model "github.com/equipledger/salesledger-backend/internal/model"
	gomock "github.com/golang/mock/gomock"
)

// MockLedgerClient is a mock of LedgerClient interface.
type MockLedgerClient struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerClientMockRecorder
}

// MockLedgerClientMockRecorder is the mock recorder for MockLedgerClient.
type MockLedgerClientMockRecorder struct {
	mock *MockLedgerClient
}

// NewMockLedgerClient creates a new mock instance.
func NewMockLedgerClient(ctrl *gomock.Controller) *MockLedgerClient {
	mock := &MockLedgerClient{ctrl: ctrl}
	mock.recorder = &MockLedgerClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerClient) EXPECT() *MockLedgerClientMockRecorder {
	return m.recorder
}

// CurrentBlockHeight mocks base method.
func (m *MockLedgerClient) CurrentBlockHeight(ctx context.Context) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CurrentBlockHeight", ctx)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CurrentBlockHeight indicates an expected call of CurrentBlockHeight.
func (mr *MockLedgerClientMockRecorder) CurrentBlockHeight(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CurrentBlockHeight", reflect.TypeOf((*MockLedgerClient)(nil).CurrentBlockHeight), ctx)
}

// GetSale mocks base method.
func (m *MockLedgerClient) GetSale(ctx context.Context, transactionID string) (*model.ChainSale, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSale", ctx, transactionID)
	ret0, _ := ret[0].(*model.ChainSale)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSale indicates an expected call of GetSale.
func (mr *MockLedgerClientMockRecorder) GetSale(ctx, transactionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSale", reflect.TypeOf((*MockLedgerClient)(nil).GetSale), ctx, transactionID)
}

// PollSaleEvents mocks base method.
func (m *MockLedgerClient) PollSaleEvents(ctx context.Context, fromBlock, toBlock uint64) ([]model.SaleEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PollSaleEvents", ctx, fromBlock, toBlock)
	ret0, _ := ret[0].([]model.SaleEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// PollSaleEvents indicates an expected call of PollSaleEvents.
func (mr *MockLedgerClientMockRecorder) PollSaleEvents(ctx, fromBlock, toBlock interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PollSaleEvents", reflect.TypeOf((*MockLedgerClient)(nil).PollSaleEvents), ctx, fromBlock, toBlock)
}

// SubmitVerification mocks base method.
func (m *MockLedgerClient) SubmitVerification(ctx context.Context, transactionID, hash, agentAddress string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubmitVerification", ctx, transactionID, hash, agentAddress)
	ret0, _ := ret[0].(error)
	return ret0
}

// SubmitVerification indicates an expected call of SubmitVerification.
func (mr *MockLedgerClientMockRecorder) SubmitVerification(ctx, transactionID, hash, agentAddress interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubmitVerification", reflect.TypeOf((*MockLedgerClient)(nil).SubmitVerification), ctx, transactionID, hash, agentAddress)
}

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

// HashAndWallet mocks base method.
func (m *MockStore) HashAndWallet(ctx context.Context, transactionID string) (string, string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HashAndWallet", ctx, transactionID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(string)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// HashAndWallet indicates an expected call of HashAndWallet.
func (mr *MockStoreMockRecorder) HashAndWallet(ctx, transactionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HashAndWallet", reflect.TypeOf((*MockStore)(nil).HashAndWallet), ctx, transactionID)
}

// ListByStatus mocks base method.
func (m *MockStore) ListByStatus(ctx context.Context, status model.Status) ([]model.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByStatus", ctx, status)
	ret0, _ := ret[0].([]model.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListByStatus indicates an expected call of ListByStatus.
func (mr *MockStoreMockRecorder) ListByStatus(ctx, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByStatus", reflect.TypeOf((*MockStore)(nil).ListByStatus), ctx, status)
}

// UpdateStatus mocks base method.
func (m *MockStore) UpdateStatus(ctx context.Context, transactionID string, status model.Status) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, transactionID, status)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockStoreMockRecorder) UpdateStatus(ctx, transactionID, status interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockStore)(nil).UpdateStatus), ctx, transactionID, status)
}

// MockMetrics is a mock of Metrics interface.
type MockMetrics struct {
	ctrl     *gomock.Controller
	recorder *MockMetricsMockRecorder
}

// MockMetricsMockRecorder is the mock recorder for MockMetrics.
type MockMetricsMockRecorder struct {
	mock *MockMetrics
}

// NewMockMetrics creates a new mock instance.
func NewMockMetrics(ctrl *gomock.Controller) *MockMetrics {
	mock := &MockMetrics{ctrl: ctrl}
	mock.recorder = &MockMetricsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMetrics) EXPECT() *MockMetricsMockRecorder {
	return m.recorder
}

// ObservePollCycle mocks base method.
func (m *MockMetrics) ObservePollCycle(err error, events int, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObservePollCycle", err, events, started)
}

// ObservePollCycle indicates an expected call of ObservePollCycle.
func (mr *MockMetricsMockRecorder) ObservePollCycle(err, events, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObservePollCycle", reflect.TypeOf((*MockMetrics)(nil).ObservePollCycle), err, events, started)
}

// ObserveProcessEvent mocks base method.
func (m *MockMetrics) ObserveProcessEvent(err error, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveProcessEvent", err, started)
}

// ObserveProcessEvent indicates an expected call of ObserveProcessEvent.
func (mr *MockMetricsMockRecorder) ObserveProcessEvent(err, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveProcessEvent", reflect.TypeOf((*MockMetrics)(nil).ObserveProcessEvent), err, started)
}

// ObserveRepairCycle mocks base method.
func (m *MockMetrics) ObserveRepairCycle(err error, advanced int, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveRepairCycle", err, advanced, started)
}

// ObserveRepairCycle indicates an expected call of ObserveRepairCycle.
func (mr *MockMetricsMockRecorder) ObserveRepairCycle(err, advanced, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveRepairCycle", reflect.TypeOf((*MockMetrics)(nil).ObserveRepairCycle), err, advanced, started)
}

// SetWatermark mocks base method.
func (m *MockMetrics) SetWatermark(height uint64) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetWatermark", height)
}

// SetWatermark indicates an expected call of SetWatermark.
func (mr *MockMetricsMockRecorder) SetWatermark(height interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetWatermark", reflect.TypeOf((*MockMetrics)(nil).SetWatermark), height)
}

// MockEventProcessor is a mock of EventProcessor interface.
type MockEventProcessor struct {
	ctrl     *gomock.Controller
	recorder *MockEventProcessorMockRecorder
}

// MockEventProcessorMockRecorder is the mock recorder for MockEventProcessor.
type MockEventProcessorMockRecorder struct {
	mock *MockEventProcessor
}

// NewMockEventProcessor creates a new mock instance.
func NewMockEventProcessor(ctrl *gomock.Controller) *MockEventProcessor {
	mock := &MockEventProcessor{ctrl: ctrl}
	mock.recorder = &MockEventProcessorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventProcessor) EXPECT() *MockEventProcessorMockRecorder {
	return m.recorder
}

// ProcessEvent mocks base method.
func (m *MockEventProcessor) ProcessEvent(ctx context.Context, event model.SaleEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ProcessEvent", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// ProcessEvent indicates an expected call of ProcessEvent.
func (mr *MockEventProcessorMockRecorder) ProcessEvent(ctx, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ProcessEvent", reflect.TypeOf((*MockEventProcessor)(nil).ProcessEvent), ctx, event)
}
