// Package testutil provides testify mocks for the interfaces in pkg/insight
// and small filesystem helpers for test setup.
package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight"
	"github.com/Suudi-sudo/pyhon-week3-file-handling/pkg/insight/gitinfo"
)

// MockHooks mocks insight.Hooks. Configure expectations with
// .On("OnFileStart", ...).Return(...).
type MockHooks struct {
	mock.Mock
}

func (m *MockHooks) OnFileStart(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *MockHooks) OnFileStatusUpdate(path string, status insight.Status, message string, duration time.Duration) error {
	args := m.Called(path, status, message, duration)
	return args.Error(0)
}

func (m *MockHooks) OnRunComplete(report insight.RunReport) error {
	args := m.Called(report)
	return args.Error(0)
}

// MockHistory mocks insight.History.
type MockHistory struct {
	mock.Mock
}

func (m *MockHistory) Append(report insight.FileReport) {
	m.Called(report)
}

func (m *MockHistory) Snapshot() []insight.FileReport {
	args := m.Called()
	reports, _ := args.Get(0).([]insight.FileReport)
	return reports
}

func (m *MockHistory) Len() int {
	args := m.Called()
	return args.Int(0)
}

// MockResolver mocks gitinfo.Resolver.
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Describe(ctx context.Context, path string) (*gitinfo.Snapshot, error) {
	args := m.Called(ctx, path)
	snap, _ := args.Get(0).(*gitinfo.Snapshot)
	return snap, args.Error(1)
}

// MockDecoder mocks encoding.Decoder.
type MockDecoder struct {
	mock.Mock
}

func (m *MockDecoder) IsBinary(content []byte) bool {
	args := m.Called(content)
	return args.Bool(0)
}

func (m *MockDecoder) DecodeText(content []byte) (string, string, error) {
	args := m.Called(content)
	return args.String(0), args.String(1), args.Error(2)
}
