// Package commands contains business operations that modify fleet state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: constructor validation, then a
// handler applying the change to the driver registry.
package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand represents a request to place a new driver on the grid.
// The driver starts available for dispatch at the given cell.
//
// Example:
//
//	location, _ := kernel.NewLocation(2, 3)
//	cmd, err := NewRegisterDriverCommand("D001", location)
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewRegisterDriverCommandHandler(registry)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register driver: %w", err)
//	}
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID driver.ID
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand creates a command to register a new driver.
// Validates that the identity is non-empty and the location is constructed;
// grid bounds and cell occupancy are checked by the registry at handling time.
func NewRegisterDriverCommand(driverID driver.ID, location kernel.Location) (RegisterDriverCommand, error) {
	command := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(driverID),
		command.setLocation(location),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

// DriverID returns the driver identity from the command.
func (c RegisterDriverCommand) DriverID() driver.ID {
	return c.driverID
}

// Location returns the starting location from the command.
func (c RegisterDriverCommand) Location() kernel.Location {
	return c.location
}

func (c *RegisterDriverCommand) setDriverID(driverID driver.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *RegisterDriverCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
