package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/partner"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatuses(
	ctx context.Context,
	branchID kernel.UUID,
	statuses []order.Status,
) ([]*order.Order, error) {
	args := m.Called(ctx, branchID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetAllFree(ctx context.Context, branchID kernel.UUID) ([]*partner.Partner, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetAllByBranch(ctx context.Context, branchID kernel.UUID) ([]*partner.Partner, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

type MockTableRepository struct{ mock.Mock }

func (m *MockTableRepository) Add(ctx context.Context, t *table.Table) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTableRepository) Update(ctx context.Context, t *table.Table) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTableRepository) Get(ctx context.Context, id kernel.UUID) (*table.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*table.Table), args.Error(1)
}

func (m *MockTableRepository) GetAllByBranch(ctx context.Context, branchID kernel.UUID) ([]*table.Table, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*table.Table), args.Error(1)
}

// MockUoW satisfies every unit of work interface in this package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PartnerRepository() ports.PartnerRepository {
	args := m.Called()
	return args.Get(0).(ports.PartnerRepository)
}

func (m *MockUoW) TableRepository() ports.TableRepository {
	args := m.Called()
	return args.Get(0).(ports.TableRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPartnerUoWFactory struct{ mock.Mock }

func (m *MockPartnerUoWFactory) Create() commands.PartnerUoW {
	args := m.Called()
	return args.Get(0).(commands.PartnerUoW)
}

type MockTableUoWFactory struct{ mock.Mock }

func (m *MockTableUoWFactory) Create() commands.TableUoW {
	args := m.Called()
	return args.Get(0).(commands.TableUoW)
}

var testTime = time.Date(2026, 8, 31, 18, 30, 0, 0, time.UTC)

func testLines() []commands.OrderLine {
	return []commands.OrderLine{
		{MenuItemID: kernel.NewUUID(), Name: "green curry", Quantity: 1, UnitPriceCents: 12500},
		{MenuItemID: kernel.NewUUID(), Name: "jasmine rice", Quantity: 2, UnitPriceCents: 5000},
	}
}

func testCustomer() order.Customer {
	return order.Customer{Name: "Ploy", Phone: "+66810000000"}
}

func newTestDeliveryOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(12500)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "green curry", 1, price)
	require.NoError(t, err)
	tax, err := kernel.NewMoney(875)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery,
		[]order.Item{item}, tax, testCustomer(),
		"99 Sukhumvit Rd", nil, "", order.PaymentCash, testTime,
	)
	require.NoError(t, err)

	for _, s := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		if o.Status() == status {
			break
		}
		require.NoError(t, o.TransitionTo(s, kernel.RoleKitchen, testTime))
	}
	require.Equal(t, status, o.Status())
	return o
}

func newTestDineInOrder(t *testing.T, tableID kernel.UUID, status order.Status) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(12500)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "green curry", 1, price)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), order.TypeDineIn,
		[]order.Item{item}, kernel.Zero(), testCustomer(),
		"", &tableID, "", order.PaymentCard, testTime,
	)
	require.NoError(t, err)

	for _, s := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		if o.Status() == status {
			break
		}
		require.NoError(t, o.TransitionTo(s, kernel.RoleKitchen, testTime))
	}
	require.Equal(t, status, o.Status())
	return o
}

func newTestFreePartner(t *testing.T) *partner.Partner {
	t.Helper()

	p, err := partner.NewPartner(kernel.NewUUID(), "Nok", kernel.NewUUID(),
		partner.Vehicle{Kind: "motorbike", Plate: "1กข 1234"})
	require.NoError(t, err)
	require.NoError(t, p.SetAvailable(true))
	return p
}
