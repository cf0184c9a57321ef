package implementation

import (
	"context"
	"errors"
	"fmt"

	"cpu-catalog-be/internal/entity"
	"cpu-catalog-be/internal/mapper"
	"cpu-catalog-be/internal/model"
	"cpu-catalog-be/internal/repository/contract"
	"cpu-catalog-be/internal/repository/scope"
	"cpu-catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SocketRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SocketMapper
}

func NewSocketRepository(db *gorm.DB) contract.SocketRepository {
	return &SocketRepositoryImpl{
		db:     db,
		mapper: mapper.NewSocketMapper(),
	}
}

func (r *SocketRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SocketRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Socket, error) {
	var models []*model.Socket
	query := r.applySpecifications(r.db.WithContext(ctx), specs...).Scopes(scope.OrderByIdAsc)
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find sockets: %w", err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SocketRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Socket, error) {
	var m model.Socket
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find socket: %w", err)
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SocketRepositoryImpl) Create(ctx context.Context, socket *entity.Socket) error {
	m := r.mapper.ToModel(socket)
	m.Id = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create socket: %w", err)
	}
	*socket = *r.mapper.ToEntity(m)
	return nil
}

func (r *SocketRepositoryImpl) Delete(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&model.Socket{}, id).Error; err != nil {
		return fmt.Errorf("delete socket %d: %w", id, err)
	}
	return nil
}

func (r *SocketRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Socket{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count sockets: %w", err)
	}
	return count, nil
}
