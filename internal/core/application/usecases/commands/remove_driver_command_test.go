package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveDriverCommand_ValidInput(t *testing.T) {
	// Act
	cmd, err := commands.NewRemoveDriverCommand("D001")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, driver.ID("D001"), cmd.DriverID())
}

func TestNewRemoveDriverCommand_EmptyDriverID(t *testing.T) {
	// Act
	_, err := commands.NewRemoveDriverCommand("")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, driver.ErrIDIsRequired)
}

func TestRemoveDriverCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange - zero value command (not constructed via constructor)
	var cmd commands.RemoveDriverCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRemoveDriverCommandIsNotConstructed)
}
