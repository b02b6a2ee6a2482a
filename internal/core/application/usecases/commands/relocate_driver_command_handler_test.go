package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelocateDriverCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	target, err := kernel.NewLocation(7, 4)
	require.NoError(t, err)

	cmd, err := commands.NewRelocateDriverCommand("D001", target)
	require.NoError(t, err)

	mockRegistry := new(MockDriverRegistry)
	mockRegistry.On("Relocate", driver.ID("D001"), target).Return(nil).Once()

	handler := commands.NewRelocateDriverCommandHandler(mockRegistry)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockRegistry.AssertExpectations(t)
}

func TestRelocateDriverCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.RelocateDriverCommand // zero value command

	mockRegistry := new(MockDriverRegistry)
	handler := commands.NewRelocateDriverCommandHandler(mockRegistry)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRelocateDriverCommandIsNotConstructed)
	mockRegistry.AssertExpectations(t) // No calls should be made to registry
}

func TestRelocateDriverCommandHandler_Handle_UnknownDriver(t *testing.T) {
	// Arrange
	ctx := t.Context()
	target, err := kernel.NewLocation(7, 4)
	require.NoError(t, err)

	cmd, err := commands.NewRelocateDriverCommand("D404", target)
	require.NoError(t, err)

	registryErr := errs.NewObjectNotFoundError("driver", driver.ID("D404"))
	mockRegistry := new(MockDriverRegistry)
	mockRegistry.On("Relocate", driver.ID("D404"), target).Return(registryErr).Once()

	handler := commands.NewRelocateDriverCommandHandler(mockRegistry)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockRegistry.AssertExpectations(t)
}
