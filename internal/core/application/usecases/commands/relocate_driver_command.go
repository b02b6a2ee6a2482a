package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRelocateDriverCommandIsNotConstructed = errors.New(
	"RelocateDriverCommand must be created via NewRelocateDriverCommand constructor",
)

// RelocateDriverCommand represents a request to move a registered driver to a
// new cell. Moving a driver to its current cell is a valid no-op.
type RelocateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID driver.ID
	target   kernel.Location

	guard guard.ConstructorGuard
}

// NewRelocateDriverCommand creates a command to move a driver.
// Validates that the identity is non-empty and the target is constructed;
// existence, grid bounds and cell occupancy are checked by the registry.
func NewRelocateDriverCommand(driverID driver.ID, target kernel.Location) (RelocateDriverCommand, error) {
	command := RelocateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setTarget(target),
	); err != nil {
		return RelocateDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RelocateDriverCommand) Validate() error {
	return c.guard.Validate(ErrRelocateDriverCommandIsNotConstructed)
}

// DriverID returns the driver identity from the command.
func (c RelocateDriverCommand) DriverID() driver.ID {
	return c.driverID
}

// Target returns the destination location from the command.
func (c RelocateDriverCommand) Target() kernel.Location {
	return c.target
}

func (c *RelocateDriverCommand) setDriverID(driverID driver.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RelocateDriverCommand) setTarget(target kernel.Location) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
