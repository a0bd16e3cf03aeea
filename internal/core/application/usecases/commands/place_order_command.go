package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("order must contain at least one item")
)

// OrderLine is one requested menu item within a PlaceOrderCommand.
type OrderLine struct {
	MenuItemID     kernel.UUID
	Name           string
	Quantity       int
	UnitPriceCents int64
}

// PlaceOrderCommand represents a request to place a new order.
// Encapsulates the order lines, tax, customer contact, and the
// type-specific placement details (delivery address or table).
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	branchID        kernel.UUID
	orderType       order.Type
	lines           []OrderLine
	taxCents        int64
	customer        order.Customer
	deliveryAddress string
	tableID         *kernel.UUID
	instructions    string
	payMethod       order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates identifiers, the order type, and that at least one line is
// present. Placement rules that depend on the order type are enforced by
// the order aggregate itself.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	branchID kernel.UUID,
	orderType order.Type,
	lines []OrderLine,
	taxCents int64,
	customer order.Customer,
	deliveryAddress string,
	tableID *kernel.UUID,
	instructions string,
	payMethod order.PaymentMethod,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		taxCents:        taxCents,
		customer:        customer,
		deliveryAddress: deliveryAddress,
		tableID:         tableID,
		instructions:    instructions,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBranchID(branchID),
		cmd.setOrderType(orderType),
		cmd.setLines(lines),
		cmd.setPayMethod(payMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BranchID returns the branch the order is placed at.
func (c PlaceOrderCommand) BranchID() kernel.UUID {
	return c.branchID
}

// OrderType returns the fulfillment type of the order.
func (c PlaceOrderCommand) OrderType() order.Type {
	return c.orderType
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return c.lines
}

// TaxCents returns the tax amount in cents.
func (c PlaceOrderCommand) TaxCents() int64 {
	return c.taxCents
}

// Customer returns the customer's contact details.
func (c PlaceOrderCommand) Customer() order.Customer {
	return c.customer
}

// DeliveryAddress returns the delivery destination, empty for other types.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// TableID returns the dine-in table, nil for other types.
func (c PlaceOrderCommand) TableID() *kernel.UUID {
	return c.tableID
}

// Instructions returns any special preparation instructions.
func (c PlaceOrderCommand) Instructions() string {
	return c.instructions
}

// PayMethod returns how the customer intends to pay.
func (c PlaceOrderCommand) PayMethod() order.PaymentMethod {
	return c.payMethod
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *PlaceOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrItemsAreRequired
	}

	c.lines = lines
	return nil
}

func (c *PlaceOrderCommand) setPayMethod(payMethod order.PaymentMethod) error {
	if err := payMethod.Validate(); err != nil {
		return err
	}

	c.payMethod = payMethod
	return nil
}
