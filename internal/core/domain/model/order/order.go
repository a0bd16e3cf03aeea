package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrPartnerAlreadyAssigned is returned when a pickup targets an order
	// that already carries a delivery partner reference.
	ErrPartnerAlreadyAssigned = errors.New("order already has a delivery partner assigned")

	// ErrDeliveryAddressIsRequired is returned when a delivery order is
	// created without a delivery address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")

	// ErrTableIsRequired is returned when a dine-in order is created without
	// a table reference.
	ErrTableIsRequired = errs.NewValueIsRequiredError("table")

	// ErrTableNotAllowed is returned when a takeaway or delivery order is
	// created with a table reference. Only dine-in orders are seated.
	ErrTableNotAllowed = errs.NewValueIsInvalidError("table")
)

// Customer carries the contact details captured at order intake.
// Identity and accounts live in the external identity service; the
// coordinator only keeps what the kitchen and the delivery partner need.
type Customer struct {
	Name  string
	Phone string
	Email string
}

// StatusChange is one entry of an order's status history: which status was
// entered, by which role, and when.
type StatusChange struct {
	Status Status      `json:"status"`
	Role   kernel.Role `json:"role"`
	At     time.Time   `json:"at"`
}

// Order is the aggregate root for a food order. It owns the order's status
// lifecycle and is mutated exclusively through its transition methods; the
// store layer serializes concurrent writers through the version field.
//
// Invariants maintained at construction, restore, and every mutation:
//   - total = subtotal + tax
//   - a delivery order has a non-empty delivery address
//   - a dine-in order references a table
//   - the delivery partner reference is non-nil only in picked_up/on_the_way
type Order struct {
	id           kernel.UUID
	number       int64
	branchID     kernel.UUID
	orderType    Type
	status       Status
	items        []Item
	subtotal     kernel.Money
	tax          kernel.Money
	total        kernel.Money
	customer     Customer
	address      string
	tableID      *kernel.UUID
	partnerID    *kernel.UUID
	instructions string
	payMethod    PaymentMethod
	payStatus    PaymentStatus
	history      []StatusChange
	createdAt    time.Time
	version      int64

	guard guard.ConstructorGuard
}

// NewOrder creates an order in pending status at intake time.
//
// The subtotal is computed from the items, the total from subtotal + tax.
// Type-specific requirements are enforced here: delivery orders need a
// delivery address, dine-in orders need a table reference. The order number
// is assigned by the store on first persist; see AssignNumber.
func NewOrder(
	id kernel.UUID,
	branchID kernel.UUID,
	orderType Type,
	items []Item,
	tax kernel.Money,
	customer Customer,
	deliveryAddress string,
	tableID *kernel.UUID,
	instructions string,
	payMethod PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:       Pending,
		payStatus:    PaymentPending,
		instructions: instructions,
		createdAt:    createdAt.UTC(),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setBranchID(branchID),
		o.setType(orderType),
		o.setItems(items),
		o.setTax(tax),
		o.setCustomer(customer),
		o.setPaymentMethod(payMethod),
	); err != nil {
		return nil, err
	}

	if err := o.setPlacement(deliveryAddress, tableID); err != nil {
		return nil, err
	}

	o.history = []StatusChange{{Status: Pending, Role: kernel.RoleCustomer, At: o.createdAt}}
	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence, re-checking
// every invariant so corrupted rows surface as errors instead of illegal
// aggregates.
func RestoreOrder(
	id kernel.UUID,
	number int64,
	branchID kernel.UUID,
	orderType Type,
	status Status,
	items []Item,
	tax kernel.Money,
	total kernel.Money,
	customer Customer,
	deliveryAddress string,
	tableID *kernel.UUID,
	partnerID *kernel.UUID,
	instructions string,
	payMethod PaymentMethod,
	payStatus PaymentStatus,
	history []StatusChange,
	createdAt time.Time,
	version int64,
) (*Order, error) {
	o, err := NewOrder(id, branchID, orderType, items, tax, customer,
		deliveryAddress, tableID, instructions, payMethod, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = payStatus.Validate(); err != nil {
		return nil, err
	}
	if !o.total.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("stored %s does not equal subtotal %s + tax %s", total, o.subtotal, o.tax))
	}
	if partnerID != nil {
		if err = partnerID.Validate(); err != nil {
			return nil, err
		}
		if !status.AllowsPartner() {
			return nil, errs.NewValueIsInvalidErrorWithCause("delivery partner",
				fmt.Errorf("%s orders may not carry a partner reference", status))
		}
		if orderType != TypeDelivery {
			return nil, errs.NewValueIsInvalidErrorWithCause("delivery partner",
				fmt.Errorf("%s orders are never assigned a partner", orderType))
		}
	} else if status.AllowsPartner() {
		return nil, errs.NewValueIsInvalidErrorWithCause("delivery partner",
			fmt.Errorf("%s orders must carry a partner reference", status))
	}
	if number < 0 {
		return nil, errs.NewValueIsInvalidError("order number")
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	o.number = number
	o.status = status
	o.partnerID = partnerID
	o.payStatus = payStatus
	o.version = version
	if len(history) > 0 {
		o.history = history
	}
	return o, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || o.guard.Validate(ErrOrderIsNotConstructed) != nil {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// TransitionTo applies a status transition requested by the acting role,
// appending to the status history on success.
//
// The edge must be legal per the transition table for the order's type and
// the role must be authorized for it; otherwise one of ErrInvalidTransition,
// ErrUnauthorizedRole, or ErrOrderIsTerminal is returned and the order is
// unchanged. Transitions targeting picked_up are rejected with
// ErrPickupViaAssignment: the pickup flow attaches the partner atomically.
//
// Leaving picked_up/on_the_way (completion or cancellation) clears the
// partner reference; the caller is responsible for releasing the partner
// aggregate itself and should read DeliveryPartner before transitioning.
func (o *Order) TransitionTo(to Status, role kernel.Role, at time.Time) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if err := o.status.CanTransition(to, role, o.orderType); err != nil {
		return err
	}
	if to == PickedUp {
		return ErrPickupViaAssignment
	}

	o.status = to
	if !to.AllowsPartner() {
		o.partnerID = nil
	}
	o.history = append(o.history, StatusChange{Status: to, Role: role, At: at.UTC()})
	return nil
}

// Pickup claims a ready delivery order for the given partner: status becomes
// picked_up and the partner reference is set, as one aggregate-level step.
// The store layer makes the write itself conditional, so two partners racing
// for the same order cannot both persist this transition.
func (o *Order) Pickup(partnerID kernel.UUID, at time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if err := o.status.CanTransition(PickedUp, kernel.RoleDelivery, o.orderType); err != nil {
		return err
	}
	if o.partnerID != nil {
		return ErrPartnerAlreadyAssigned
	}

	o.status = PickedUp
	o.partnerID = &partnerID
	o.history = append(o.history, StatusChange{Status: PickedUp, Role: kernel.RoleDelivery, At: at.UTC()})
	return nil
}

// MarkPaid records that the payment processor reported settlement.
// Re-reporting is a no-op; payment notifications may be delivered twice.
func (o *Order) MarkPaid() {
	o.payStatus = PaymentPaid
}

// AssignNumber attaches the store-generated sequential order number.
// Numbers are assigned exactly once, on first persist.
func (o *Order) AssignNumber(number int64) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("order number")
	}
	if o.number != 0 {
		return errs.NewValueIsInvalidErrorWithCause("order number",
			fmt.Errorf("order already numbered %d", o.number))
	}
	o.number = number
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable sequential order number,
// or 0 before the order is first persisted.
func (o *Order) Number() int64 {
	return o.number
}

// BranchID returns the branch the order belongs to.
func (o *Order) BranchID() kernel.UUID {
	return o.branchID
}

// OrderType returns dine-in, takeaway, or delivery.
func (o *Order) OrderType() Type {
	return o.orderType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Subtotal returns the sum of all line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax returns the tax amount.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Total returns subtotal + tax.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CustomerInfo returns the contact details captured at intake.
func (o *Order) CustomerInfo() Customer {
	return o.customer
}

// DeliveryAddress returns the delivery destination; empty for non-delivery orders.
func (o *Order) DeliveryAddress() string {
	return o.address
}

// Table returns the assigned table for dine-in orders, nil otherwise.
func (o *Order) Table() *kernel.UUID {
	return o.tableID
}

// DeliveryPartner returns the assigned partner while the order is
// picked_up/on_the_way, nil otherwise.
func (o *Order) DeliveryPartner() *kernel.UUID {
	return o.partnerID
}

// Instructions returns the customer's special instructions, possibly empty.
func (o *Order) Instructions() string {
	return o.instructions
}

// PaymentMethod returns how the order is to be settled.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.payMethod
}

// PaymentStatus returns the settlement status last reported.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.payStatus
}

// History returns the status history, oldest first.
func (o *Order) History() []StatusChange {
	history := make([]StatusChange, len(o.history))
	copy(history, o.history)
	return history
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the optimistic-concurrency version the aggregate was read
// at. The store bumps it on every successful write; readers use it as the
// per-order sequence marker.
func (o *Order) Version() int64 {
	return o.version
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	o.branchID = branchID
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	subtotal := kernel.Zero()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		subtotal = subtotal.Add(item.LineTotal())
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.subtotal = subtotal
	return nil
}

func (o *Order) setTax(tax kernel.Money) error {
	o.tax = tax
	o.total = o.subtotal.Add(tax)
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if customer.Name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customer = customer
	return nil
}

func (o *Order) setPaymentMethod(payMethod PaymentMethod) error {
	if err := payMethod.Validate(); err != nil {
		return err
	}
	o.payMethod = payMethod
	return nil
}

// setPlacement enforces the type-specific placement requirements: delivery
// orders carry an address, dine-in orders a table, takeaway orders neither.
func (o *Order) setPlacement(deliveryAddress string, tableID *kernel.UUID) error {
	switch o.orderType {
	case TypeDelivery:
		if deliveryAddress == "" {
			return ErrDeliveryAddressIsRequired
		}
		if tableID != nil {
			return ErrTableNotAllowed
		}
	case TypeDineIn:
		if tableID == nil {
			return ErrTableIsRequired
		}
		if err := tableID.Validate(); err != nil {
			return err
		}
	default:
		if tableID != nil {
			return ErrTableNotAllowed
		}
	}

	o.address = deliveryAddress
	o.tableID = tableID
	return nil
}
