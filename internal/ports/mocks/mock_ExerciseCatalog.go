package mocks

import (
	mock "github.com/stretchr/testify/mock"

	domain "calix/internal/domain"
)

// MockExerciseCatalog is a mock type for the ExerciseCatalog type
type MockExerciseCatalog struct {
	mock.Mock
}

type MockExerciseCatalog_Expecter struct {
	mock *mock.Mock
}

func (_m *MockExerciseCatalog) EXPECT() *MockExerciseCatalog_Expecter {
	return &MockExerciseCatalog_Expecter{mock: &_m.Mock}
}

// ExerciseByID provides a mock function with given fields: exerciseID
func (_m *MockExerciseCatalog) ExerciseByID(exerciseID string) (domain.ProgressionStep, bool) {
	ret := _m.Called(exerciseID)

	if len(ret) == 0 {
		panic("no return value specified for ExerciseByID")
	}

	var r0 domain.ProgressionStep
	var r1 bool
	if rf, ok := ret.Get(0).(func(string) (domain.ProgressionStep, bool)); ok {
		return rf(exerciseID)
	}
	if rf, ok := ret.Get(0).(func(string) domain.ProgressionStep); ok {
		r0 = rf(exerciseID)
	} else {
		r0 = ret.Get(0).(domain.ProgressionStep)
	}
	if rf, ok := ret.Get(1).(func(string) bool); ok {
		r1 = rf(exerciseID)
	} else {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1
}

// MockExerciseCatalog_ExerciseByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ExerciseByID'
type MockExerciseCatalog_ExerciseByID_Call struct {
	*mock.Call
}

// ExerciseByID is a helper method to define mock.On call
//   - exerciseID string
func (_e *MockExerciseCatalog_Expecter) ExerciseByID(exerciseID interface{}) *MockExerciseCatalog_ExerciseByID_Call {
	return &MockExerciseCatalog_ExerciseByID_Call{Call: _e.mock.On("ExerciseByID", exerciseID)}
}

func (_c *MockExerciseCatalog_ExerciseByID_Call) Run(run func(exerciseID string)) *MockExerciseCatalog_ExerciseByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockExerciseCatalog_ExerciseByID_Call) Return(_a0 domain.ProgressionStep, _a1 bool) *MockExerciseCatalog_ExerciseByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockExerciseCatalog creates a new instance of MockExerciseCatalog. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockExerciseCatalog(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExerciseCatalog {
	m := &MockExerciseCatalog{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
