package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/guard"
)

var ErrRemoveDriverCommandIsNotConstructed = errors.New(
	"RemoveDriverCommand must be created via NewRemoveDriverCommand constructor",
)

// RemoveDriverCommand represents a request to take a driver off the grid.
// Removal frees the driver's cell for immediate reuse.
type RemoveDriverCommand struct { //nolint:recvcheck //using for validation
	driverID driver.ID

	guard guard.ConstructorGuard
}

// NewRemoveDriverCommand creates a command to remove a driver.
// Validates that the identity is non-empty; existence is checked by the
// registry at handling time.
func NewRemoveDriverCommand(driverID driver.ID) (RemoveDriverCommand, error) {
	command := RemoveDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return RemoveDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveDriverCommand) Validate() error {
	return c.guard.Validate(ErrRemoveDriverCommandIsNotConstructed)
}

// DriverID returns the driver identity from the command.
func (c RemoveDriverCommand) DriverID() driver.ID {
	return c.driverID
}

func (c *RemoveDriverCommand) setDriverID(driverID driver.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
