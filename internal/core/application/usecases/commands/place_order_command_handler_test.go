package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/table"
)

func TestPlaceOrderCommandHandler_Handle_Delivery(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery,
		testLines(), 1125, testCustomer(),
		"99 Sukhumvit Rd", nil, "no cilantro", order.PaymentCash,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	var placed *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				placed = args.Get(1).(*order.Order)
			}).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, placed)
	assert.Equal(t, order.Pending, placed.Status())
	assert.Equal(t, order.PaymentPending, placed.PaymentStatus())
	assert.Equal(t, int64(22500), placed.Subtotal().Cents())
	assert.Equal(t, int64(23625), placed.Total().Cents())
	assert.Equal(t, "no cilantro", placed.Instructions())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_DineInOccupiesTable(t *testing.T) {
	ctx := t.Context()

	freeTable, err := table.NewTable(kernel.NewUUID(), kernel.NewUUID(), 12, 4)
	require.NoError(t, err)
	tableID := freeTable.ID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.TypeDineIn,
		testLines(), 0, testCustomer(),
		"", &tableID, "", order.PaymentCard,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", ctx, tableID).Return(freeTable, nil).Once(),
		tableRepo.On("Update", ctx, mock.AnythingOfType("*table.Table")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, table.Occupied, freeTable.TableStatus())
	require.NotNil(t, freeTable.CurrentOrder())
	tableRepo.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_DineInTableAlreadyOccupied(t *testing.T) {
	ctx := t.Context()

	takenTable, err := table.NewTable(kernel.NewUUID(), kernel.NewUUID(), 12, 4)
	require.NoError(t, err)
	require.NoError(t, takenTable.Occupy(kernel.NewUUID()))
	tableID := takenTable.ID()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.TypeDineIn,
		testLines(), 0, testCustomer(),
		"", &tableID, "", order.PaymentCard,
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tableRepo := new(MockTableRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Get", ctx, tableID).Return(takenTable, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, table.ErrTableOccupied)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPlaceOrderCommandHandler_Handle_DeliveryWithoutAddress(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.TypeDelivery,
		testLines(), 0, testCustomer(),
		"", nil, "", order.PaymentCash,
	)
	require.NoError(t, err)

	factory := new(MockUoWFactory)

	handler := commands.NewPlaceOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestNewPlaceOrderCommand_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*kernel.UUID, *[]commands.OrderLine, *order.Type)
		wantErr error
	}{
		{
			name:    "no lines",
			mutate:  func(_ *kernel.UUID, lines *[]commands.OrderLine, _ *order.Type) { *lines = nil },
			wantErr: commands.ErrItemsAreRequired,
		},
		{
			name:   "empty order id",
			mutate: func(id *kernel.UUID, _ *[]commands.OrderLine, _ *order.Type) { *id = kernel.UUID{} },
		},
		{
			name:   "unknown type",
			mutate: func(_ *kernel.UUID, _ *[]commands.OrderLine, ot *order.Type) { *ot = order.TypeUnknown },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderID := kernel.NewUUID()
			lines := testLines()
			orderType := order.TypeTakeaway
			tt.mutate(&orderID, &lines, &orderType)

			_, err := commands.NewPlaceOrderCommand(
				orderID, kernel.NewUUID(), orderType,
				lines, 0, testCustomer(), "", nil, "", order.PaymentCash,
			)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
