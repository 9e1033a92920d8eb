package queries

import (
	"context"

	"rentdesk/internal/infra"
	"rentdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindAll(ctx context.Context, status *string) ([]*BookingView, error)
	FindByPhone(ctx context.Context, phone string) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, status *string) ([]*BookingView, error)
	ListByPhone(ctx context.Context, phone string) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, status *string) ([]*BookingView, error) {
	return q.store.FindAll(ctx, status)
}

func (q *bookingQueriesImpl) ListByPhone(ctx context.Context, phone string) ([]*BookingView, error) {
	return q.store.FindByPhone(ctx, phone)
}
