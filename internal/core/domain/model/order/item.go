package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one line of an order: a menu item reference, a quantity, the unit
// price captured at intake, and the computed line total.
//
// Items are value objects; the line total is derived at construction and
// never mutated, so subtotal arithmetic stays consistent with what the
// customer was shown.
type Item struct {
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  kernel.Money
	lineTotal  kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an order line, computing lineTotal = unitPrice × quantity.
func NewItem(menuItemID kernel.UUID, name string, quantity int, unitPrice kernel.Money) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		menuItemID: menuItemID,
		name:       name,
		quantity:   quantity,
		unitPrice:  unitPrice,
		lineTotal:  unitPrice.MulQuantity(quantity),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs an order line from persistence, verifying that the
// stored line total still equals unit price × quantity.
func RestoreItem(menuItemID kernel.UUID, name string, quantity int, unitPrice, lineTotal kernel.Money) (Item, error) {
	item, err := NewItem(menuItemID, name, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}
	if !item.lineTotal.IsEqual(lineTotal) {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("line total",
			fmt.Errorf("stored %s does not equal %s x %d", lineTotal, unitPrice, quantity))
	}
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name captured at intake.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at intake.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal returns unit price × quantity.
func (i Item) LineTotal() kernel.Money {
	return i.lineTotal
}
