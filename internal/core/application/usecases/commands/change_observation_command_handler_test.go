package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeObservationCommandHandler_Handle(t *testing.T) {
	t.Run("saves the observation", func(t *testing.T) {
		ctx := t.Context()
		o := newTestOrder(t, "ord-1", 10)
		note := "leave at reception"
		cmd, _ := commands.NewChangeObservationCommand("ord-1", &note)

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
			repo.On("Update", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewChangeObservationCommandHandler(factory, noLatency{})
		err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		require.NotNil(t, o.Observations())
		assert.Equal(t, "leave at reception", *o.Observations())
		uow.AssertExpectations(t)
	})

	t.Run("missing order", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewChangeObservationCommand("nope", nil)

		repo := new(MockOrderRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		repo.On("Get", ctx, cmd.OrderID()).Return(nil, errs.NewObjectNotFoundError("order", "nope")).Once()
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewChangeObservationCommandHandler(factory, noLatency{})
		err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
