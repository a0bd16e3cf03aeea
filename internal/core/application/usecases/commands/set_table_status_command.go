package commands

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrSetTableStatusCommandIsNotConstructed = errors.New(
	"SetTableStatusCommand must be created via NewSetTableStatusCommand constructor",
)

// SetTableStatusCommand represents staff changing a table's state by hand,
// for example marking a table as being cleaned or back to vacant. Seating
// an order happens through order placement, so occupied is not a state
// staff can request directly.
type SetTableStatusCommand struct { //nolint:recvcheck //using for validation
	tableID kernel.UUID
	target  table.Status

	guard guard.ConstructorGuard
}

// NewSetTableStatusCommand creates a command to change a table's state.
func NewSetTableStatusCommand(tableID kernel.UUID, target table.Status) (SetTableStatusCommand, error) {
	cmd := SetTableStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setTarget(target),
	); err != nil {
		return SetTableStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetTableStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetTableStatusCommandIsNotConstructed)
}

// TableID returns the table whose state changes.
func (c SetTableStatusCommand) TableID() kernel.UUID {
	return c.tableID
}

// Target returns the requested table state.
func (c SetTableStatusCommand) Target() table.Status {
	return c.target
}

func (c *SetTableStatusCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *SetTableStatusCommand) setTarget(target table.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == table.Occupied {
		return errs.NewValueIsInvalidErrorWithCause("table status",
			fmt.Errorf("tables become occupied through order placement"))
	}

	c.target = target
	return nil
}
