package mocks

import (
	mock "github.com/stretchr/testify/mock"

	domain "calix/internal/domain"
)

// MockProgressionCatalog is a mock type for the ProgressionCatalog type
type MockProgressionCatalog struct {
	mock.Mock
}

type MockProgressionCatalog_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProgressionCatalog) EXPECT() *MockProgressionCatalog_Expecter {
	return &MockProgressionCatalog_Expecter{mock: &_m.Mock}
}

// ProgressionByID provides a mock function with given fields: progressionID
func (_m *MockProgressionCatalog) ProgressionByID(progressionID string) (domain.ProgressionPath, bool) {
	ret := _m.Called(progressionID)

	if len(ret) == 0 {
		panic("no return value specified for ProgressionByID")
	}

	var r0 domain.ProgressionPath
	var r1 bool
	if rf, ok := ret.Get(0).(func(string) (domain.ProgressionPath, bool)); ok {
		return rf(progressionID)
	}
	if rf, ok := ret.Get(0).(func(string) domain.ProgressionPath); ok {
		r0 = rf(progressionID)
	} else {
		r0 = ret.Get(0).(domain.ProgressionPath)
	}
	if rf, ok := ret.Get(1).(func(string) bool); ok {
		r1 = rf(progressionID)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// MockProgressionCatalog_ProgressionByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ProgressionByID'
type MockProgressionCatalog_ProgressionByID_Call struct {
	*mock.Call
}

// ProgressionByID is a helper method to define mock.On call
//   - progressionID string
func (_e *MockProgressionCatalog_Expecter) ProgressionByID(progressionID interface{}) *MockProgressionCatalog_ProgressionByID_Call {
	return &MockProgressionCatalog_ProgressionByID_Call{Call: _e.mock.On("ProgressionByID", progressionID)}
}

func (_c *MockProgressionCatalog_ProgressionByID_Call) Run(run func(progressionID string)) *MockProgressionCatalog_ProgressionByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockProgressionCatalog_ProgressionByID_Call) Return(_a0 domain.ProgressionPath, _a1 bool) *MockProgressionCatalog_ProgressionByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockProgressionCatalog creates a new instance of MockProgressionCatalog. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProgressionCatalog(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProgressionCatalog {
	m := &MockProgressionCatalog{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
