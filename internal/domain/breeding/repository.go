package breeding

import "context"

type Repository interface {
	Create(ctx context.Context, r Record) error
	Update(ctx context.Context, r Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Record, error)
	ListByMother(ctx context.Context, motherID string) ([]Record, error)
}
