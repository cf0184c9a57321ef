package contract

import (
	"context"

	"cpu-catalog-be/internal/entity"
	"cpu-catalog-be/internal/repository/specification"
)

// CpuRepository resolves Cpu.Socket on every read and after every save.
type CpuRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Cpu, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cpu, error)
	Create(ctx context.Context, cpu *entity.Cpu) error
	// Update overwrites brand, model and socket of an existing row. It never
	// inserts; a missing row yields ErrNotFound.
	Update(ctx context.Context, cpu *entity.Cpu) error
	Delete(ctx context.Context, id uint64) error
}
