package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/partner"
	"restaurant/internal/pkg/errs"
)

func TestPickupOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestDeliveryOrder(t, order.Ready)
	testPartner := newTestFreePartner(t)

	cmd, err := commands.NewPickupOrderCommand(testOrder.ID(), testPartner.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		partnerRepo.On("Get", ctx, testPartner.ID()).Return(testPartner, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickupOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, testOrder.Status())
	assert.Equal(t, partner.Busy, testPartner.Availability())
	require.NotNil(t, testOrder.DeliveryPartner())
	assert.True(t, testOrder.DeliveryPartner().IsEqual(testPartner.ID()))
	orderRepo.AssertExpectations(t)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPickupOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PickupOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewPickupOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPickupOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPickupOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPickupOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickupOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPickupOrderCommandHandler_Handle_PartnerAlreadyBusy(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestDeliveryOrder(t, order.Ready)
	testPartner := newTestFreePartner(t)
	require.NoError(t, testPartner.Take(kernel.NewUUID()))

	cmd, err := commands.NewPickupOrderCommand(testOrder.ID(), testPartner.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		partnerRepo.On("Get", ctx, testPartner.ID()).Return(testPartner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickupOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, partner.ErrPartnerHasActiveDelivery)
	assert.Equal(t, order.Ready, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPickupOrderCommandHandler_Handle_OrderNotReady(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestDeliveryOrder(t, order.Preparing)
	testPartner := newTestFreePartner(t)

	cmd, err := commands.NewPickupOrderCommand(testOrder.ID(), testPartner.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		partnerRepo.On("Get", ctx, testPartner.ID()).Return(testPartner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickupOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPickupOrderCommandHandler_Handle_ConcurrentClaim(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestDeliveryOrder(t, order.Ready)
	testPartner := newTestFreePartner(t)

	cmd, err := commands.NewPickupOrderCommand(testOrder.ID(), testPartner.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	conflict := errs.NewVersionConflictError("order", testOrder.ID(), testOrder.Version())

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		partnerRepo.On("Get", ctx, testPartner.ID()).Return(testPartner, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(conflict).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickupOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderAlreadyClaimed)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestPickupOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	testOrder := newTestDeliveryOrder(t, order.Ready)
	testPartner := newTestFreePartner(t)

	cmd, err := commands.NewPickupOrderCommand(testOrder.ID(), testPartner.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		partnerRepo.On("Get", ctx, testPartner.ID()).Return(testPartner, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		partnerRepo.On("Update", ctx, mock.AnythingOfType("*partner.Partner")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPickupOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}
