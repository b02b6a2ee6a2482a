package commands_test

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockDriverRegistry struct {
	mock.Mock
}

func (m *MockDriverRegistry) Add(id driver.ID, location kernel.Location) error {
	args := m.Called(id, location)
	return args.Error(0)
}

func (m *MockDriverRegistry) Relocate(id driver.ID, target kernel.Location) error {
	args := m.Called(id, target)
	return args.Error(0)
}

func (m *MockDriverRegistry) SetAvailability(id driver.ID, available bool) error {
	args := m.Called(id, available)
	return args.Error(0)
}

func (m *MockDriverRegistry) Remove(id driver.ID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockDriverRegistry) Snapshot() []driver.Driver {
	args := m.Called()
	return args.Get(0).([]driver.Driver)
}

func (m *MockDriverRegistry) Contains(id driver.ID) bool {
	args := m.Called(id)
	return args.Bool(0)
}

func (m *MockDriverRegistry) Count() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockDriverRegistry) OccupantAt(location kernel.Location) (driver.ID, bool) {
	args := m.Called(location)
	return args.Get(0).(driver.ID), args.Bool(1)
}

func (m *MockDriverRegistry) Grid() kernel.Grid {
	args := m.Called()
	return args.Get(0).(kernel.Grid)
}
