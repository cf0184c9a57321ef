package contract

import (
	"context"

	"cpu-catalog-be/internal/entity"
	"cpu-catalog-be/internal/repository/specification"
)

type SocketRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Socket, error)
	// FindOne returns nil, nil when nothing matches.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Socket, error)
	// Create always inserts; the store assigns Id.
	Create(ctx context.Context, socket *entity.Socket) error
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
