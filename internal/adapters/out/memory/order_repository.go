package memory

import (
	"context"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	tx, err := r.uow.active()
	if err != nil {
		return err
	}

	if indexOfOrder(tx.orders, aggregate.ID()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("order %s already exists", aggregate.ID()))
	}

	tx.orders = append(tx.orders, orderFromDomain(aggregate))
	r.uow.ordersDirty = true
	return nil
}

func (r *orderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	tx, err := r.uow.active()
	if err != nil {
		return err
	}

	i := indexOfOrder(tx.orders, aggregate.ID())
	if i < 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	tx.orders[i] = orderFromDomain(aggregate)
	r.uow.ordersDirty = true
	return nil
}

func (r *orderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}
	return findOrder(tx.orders, id)
}

func (r *orderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, err := r.uow.active()
	if err != nil {
		return nil, err
	}
	return ordersToDomain(tx.orders)
}
