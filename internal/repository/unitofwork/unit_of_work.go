package unitofwork

import (
	"context"

	"cpu-catalog-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SocketRepository() contract.SocketRepository
	CpuRepository() contract.CpuRepository
}
