package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/pkg/guard"
)

var ErrChangeDriverAvailabilityCommandIsNotConstructed = errors.New(
	"ChangeDriverAvailabilityCommand must be created via NewChangeDriverAvailabilityCommand constructor",
)

// ChangeDriverAvailabilityCommand represents a request to flip a driver's
// dispatch availability. The driver keeps its cell either way; unavailable
// drivers still occupy their position but are skipped by nearest-driver
// selection.
type ChangeDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID  driver.ID
	available bool

	guard guard.ConstructorGuard
}

// NewChangeDriverAvailabilityCommand creates a command to change a driver's
// availability. Validates that the identity is non-empty; existence is checked
// by the registry at handling time.
func NewChangeDriverAvailabilityCommand(driverID driver.ID, available bool) (ChangeDriverAvailabilityCommand, error) {
	command := ChangeDriverAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := command.setDriverID(driverID); err != nil {
		return ChangeDriverAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the driver identity from the command.
func (c ChangeDriverAvailabilityCommand) DriverID() driver.ID {
	return c.driverID
}

// Available returns the requested availability state.
func (c ChangeDriverAvailabilityCommand) Available() bool {
	return c.available
}

func (c *ChangeDriverAvailabilityCommand) setDriverID(driverID driver.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
