// Package table contains the dine-in Table aggregate. Tables are occupied by
// active dine-in orders and freed when those orders terminate; while an
// active order references a table, that table is never vacant.
package table

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrTableIsNotConstructed is returned when a Table was not created
	// through NewTable or RestoreTable.
	ErrTableIsNotConstructed = errors.New("Table must be created via NewTable or RestoreTable")

	// ErrTableOccupied is returned when occupying a table that already has
	// an active order.
	ErrTableOccupied = errors.New("table is already occupied")

	// ErrTableHasActiveOrder is returned when vacating a table whose order
	// has not terminated yet.
	ErrTableHasActiveOrder = errors.New("table has an active order")
)

// Status represents a dine-in table's state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined table status.
	StatusUnknown Status = iota

	// Vacant means the table is ready for the next party.
	Vacant

	// Occupied means an active dine-in order references the table.
	Occupied

	// Cleaning means staff are bussing the table; it is not yet seatable.
	Cleaning
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Vacant:        "vacant",
		Occupied:      "occupied",
		Cleaning:      "cleaning",
	}
}

// StatusFromString parses the wire representation of a table status.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusStrings() {
		if status != StatusUnknown && name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("table status",
		fmt.Errorf("%q is not a known table status", s))
}

// String returns the wire representation of the table status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the status is one of the defined table states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("table status",
			fmt.Errorf("%d is not a valid table status", s))
	}
	return nil
}

// Table is the aggregate for one physical dine-in table.
type Table struct {
	id             kernel.UUID
	branchID       kernel.UUID
	number         int
	capacity       int
	status         Status
	currentOrderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTable creates a vacant table.
func NewTable(id kernel.UUID, branchID kernel.UUID, number, capacity int) (*Table, error) {
	t := &Table{
		status: Vacant,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setBranchID(branchID),
		t.setNumber(number),
		t.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTable reconstructs a table from persistence.
func RestoreTable(
	id kernel.UUID,
	branchID kernel.UUID,
	number, capacity int,
	status Status,
	currentOrderID *kernel.UUID,
) (*Table, error) {
	t, err := NewTable(id, branchID, number, capacity)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if currentOrderID != nil {
		if err = currentOrderID.Validate(); err != nil {
			return nil, err
		}
		if status == Vacant {
			return nil, errs.NewValueIsInvalidErrorWithCause("table status",
				fmt.Errorf("vacant table may not reference an order"))
		}
	}

	t.status = status
	t.currentOrderID = currentOrderID
	return t, nil
}

// Validate ensures the table was created through a constructor.
func (t *Table) Validate() error {
	if t == nil || t.guard.Validate(ErrTableIsNotConstructed) != nil {
		return ErrTableIsNotConstructed
	}
	return nil
}

// Occupy seats a dine-in order at the table.
func (t *Table) Occupy(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if t.currentOrderID != nil {
		return fmt.Errorf("%w: by order %s", ErrTableOccupied, t.currentOrderID)
	}

	t.status = Occupied
	t.currentOrderID = &orderID
	return nil
}

// Free vacates the table after its order has terminated.
func (t *Table) Free() {
	t.status = Vacant
	t.currentOrderID = nil
}

// StartCleaning marks the table as being bussed. The order reference, if
// any, must already be cleared.
func (t *Table) StartCleaning() error {
	if t.currentOrderID != nil {
		return fmt.Errorf("%w: order %s", ErrTableHasActiveOrder, t.currentOrderID)
	}
	t.status = Cleaning
	return nil
}

// ID returns the table's unique identifier.
func (t *Table) ID() kernel.UUID {
	return t.id
}

// BranchID returns the branch the table belongs to.
func (t *Table) BranchID() kernel.UUID {
	return t.branchID
}

// Number returns the human-visible table number.
func (t *Table) Number() int {
	return t.number
}

// Capacity returns how many guests the table seats.
func (t *Table) Capacity() int {
	return t.capacity
}

// TableStatus returns the table's current state.
func (t *Table) TableStatus() Status {
	return t.status
}

// CurrentOrder returns the active order seated at the table, nil when none.
func (t *Table) CurrentOrder() *kernel.UUID {
	return t.currentOrderID
}

func (t *Table) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Table) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	t.branchID = branchID
	return nil
}

func (t *Table) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table number",
			fmt.Errorf("%d is not greater than 0", number))
	}
	t.number = number
	return nil
}

func (t *Table) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsOutOfRangeError("capacity", capacity, 1, 50)
	}
	t.capacity = capacity
	return nil
}
