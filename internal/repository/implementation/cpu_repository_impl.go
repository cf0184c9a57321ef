package implementation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cpu-catalog-be/internal/entity"
	"cpu-catalog-be/internal/mapper"
	"cpu-catalog-be/internal/model"
	"cpu-catalog-be/internal/repository/contract"
	"cpu-catalog-be/internal/repository/scope"
	"cpu-catalog-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CpuRepositoryImpl struct {
	db           *gorm.DB
	mapper       *mapper.CpuMapper
	socketMapper *mapper.SocketMapper
}

func NewCpuRepository(db *gorm.DB) contract.CpuRepository {
	return &CpuRepositoryImpl{
		db:           db,
		mapper:       mapper.NewCpuMapper(),
		socketMapper: mapper.NewSocketMapper(),
	}
}

func (r *CpuRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CpuRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Cpu, error) {
	var models []*model.Cpu
	query := r.applySpecifications(r.db.WithContext(ctx), specs...).Scopes(scope.OrderByIdAsc)
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find cpus: %w", err)
	}

	cpus := r.mapper.ToEntities(models)
	if err := r.attachSockets(ctx, cpus); err != nil {
		return nil, err
	}
	return cpus, nil
}

func (r *CpuRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Cpu, error) {
	var m model.Cpu
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find cpu: %w", err)
	}

	cpu := r.mapper.ToEntity(&m)
	if err := r.attachSockets(ctx, []*entity.Cpu{cpu}); err != nil {
		return nil, err
	}
	return cpu, nil
}

func (r *CpuRepositoryImpl) Create(ctx context.Context, cpu *entity.Cpu) error {
	m := r.mapper.ToModel(cpu)
	m.Id = 0
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create cpu: %w", err)
	}

	*cpu = *r.mapper.ToEntity(m)
	return r.attachSockets(ctx, []*entity.Cpu{cpu})
}

func (r *CpuRepositoryImpl) Update(ctx context.Context, cpu *entity.Cpu) error {
	m := r.mapper.ToModel(cpu)
	m.UpdatedAt = time.Now()

	// Select lists the replaced columns so empty strings and a nil socket are
	// written too; created_at is left alone.
	result := r.db.WithContext(ctx).
		Model(&model.Cpu{}).
		Where("id = ?", m.Id).
		Select("brand", "model", "socket_id", "updated_at").
		Updates(m)
	if result.Error != nil {
		return fmt.Errorf("update cpu %d: %w", m.Id, result.Error)
	}
	if result.RowsAffected == 0 {
		return contract.ErrNotFound
	}

	cpu.UpdatedAt = m.UpdatedAt
	cpu.Socket = nil
	return r.attachSockets(ctx, []*entity.Cpu{cpu})
}

func (r *CpuRepositoryImpl) Delete(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&model.Cpu{}, id).Error; err != nil {
		return fmt.Errorf("delete cpu %d: %w", id, err)
	}
	return nil
}

// attachSockets resolves Cpu.Socket with a single IN query over the distinct
// socket ids. References to missing sockets stay nil.
func (r *CpuRepositoryImpl) attachSockets(ctx context.Context, cpus []*entity.Cpu) error {
	ids := make([]uint64, 0, len(cpus))
	seen := make(map[uint64]struct{}, len(cpus))
	for _, c := range cpus {
		if c.SocketId == nil {
			continue
		}
		if _, ok := seen[*c.SocketId]; ok {
			continue
		}
		seen[*c.SocketId] = struct{}{}
		ids = append(ids, *c.SocketId)
	}
	if len(ids) == 0 {
		return nil
	}

	var sockets []*model.Socket
	query := specification.ByIDs{IDs: ids}.Apply(r.db.WithContext(ctx))
	if err := query.Find(&sockets).Error; err != nil {
		return fmt.Errorf("load sockets for cpus: %w", err)
	}

	byId := make(map[uint64]*entity.Socket, len(sockets))
	for _, s := range r.socketMapper.ToEntities(sockets) {
		byId[s.Id] = s
	}
	for _, c := range cpus {
		if c.SocketId != nil {
			c.Socket = byId[*c.SocketId]
		}
	}
	return nil
}
