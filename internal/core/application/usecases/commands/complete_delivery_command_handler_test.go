package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/events"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	o := newTestOrder(t, "ord-1", 300)
	require.NoError(t, o.Assign("AA-11-BB"))
	v := newTestVehicle(t, "AA-11-BB", 1000)
	require.NoError(t, v.Reserve(300))
	cmd, _ := commands.NewCompleteDeliveryCommand("ord-1")

	f := newAssignFixture()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.vehicles.On("Get", ctx, "AA-11-BB").Return(v, nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.vehicles.On("Update", ctx, v).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()

	publisher := new(MockPublisher)
	publisher.On("Publish", ctx, events.Topic, mock.MatchedBy(func(evt events.Event) bool {
		return evt.Type == events.DeliveryCompleted &&
			evt.OrderID == "ord-1" &&
			evt.VehiclePlate == "AA-11-BB" &&
			evt.Message == "Vehicle AA-11-BB delivered order ord-1"
	})).Return(nil).Once()

	// When
	h := commands.NewCompleteDeliveryCommandHandler(f.factory, publisher, slog.New(slog.DiscardHandler))
	err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	assert.True(t, o.IsCompleted())
	assert.InDelta(t, 1000, v.AvailableWeight(), 1e-9)
	f.assertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_UnassignedOrder(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, "ord-1", 300)
	cmd, _ := commands.NewCompleteDeliveryCommand("ord-1")

	f := newAssignFixture()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	publisher := new(MockPublisher)

	h := commands.NewCompleteDeliveryCommandHandler(f.factory, publisher, slog.New(slog.DiscardHandler))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, o.IsCompleted())
	f.vehicles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_VehicleGone(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, "ord-1", 300)
	require.NoError(t, o.Assign("GONE"))
	cmd, _ := commands.NewCompleteDeliveryCommand("ord-1")

	f := newAssignFixture()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.vehicles.On("Get", ctx, "GONE").Return(nil, errs.NewObjectNotFoundError("vehicle", "GONE")).Once()
	publisher := new(MockPublisher)

	h := commands.NewCompleteDeliveryCommandHandler(f.factory, publisher, slog.New(slog.DiscardHandler))
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.False(t, o.IsCompleted())
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_CommitErrorSkipsPublish(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, "ord-1", 300)
	require.NoError(t, o.Assign("AA-11-BB"))
	v := newTestVehicle(t, "AA-11-BB", 1000)
	cmd, _ := commands.NewCompleteDeliveryCommand("ord-1")

	f := newAssignFixture()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.vehicles.On("Get", ctx, "AA-11-BB").Return(v, nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.vehicles.On("Update", ctx, v).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(errors.New("disk full")).Once()
	publisher := new(MockPublisher)

	h := commands.NewCompleteDeliveryCommandHandler(f.factory, publisher, slog.New(slog.DiscardHandler))
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_PublishErrorIsNotFatal(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, "ord-1", 300)
	require.NoError(t, o.Assign("AA-11-BB"))
	v := newTestVehicle(t, "AA-11-BB", 1000)
	cmd, _ := commands.NewCompleteDeliveryCommand("ord-1")

	f := newAssignFixture()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.vehicles.On("Get", ctx, "AA-11-BB").Return(v, nil).Once()
	f.orders.On("Update", ctx, o).Return(nil).Once()
	f.vehicles.On("Update", ctx, v).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	publisher := new(MockPublisher)
	publisher.On("Publish", ctx, events.Topic, mock.Anything).Return(errors.New("bus down")).Once()

	h := commands.NewCompleteDeliveryCommandHandler(f.factory, publisher, slog.New(slog.DiscardHandler))
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
