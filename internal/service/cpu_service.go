// FILE: internal/service/cpu_service.go
package service

import (
	"context"
	"errors"

	"cpu-catalog-be/internal/dto"
	"cpu-catalog-be/internal/entity"
	"cpu-catalog-be/internal/pkg/logger"
	"cpu-catalog-be/internal/repository/contract"
	"cpu-catalog-be/internal/repository/specification"
	"cpu-catalog-be/internal/repository/unitofwork"
	"cpu-catalog-be/pkg/events"
)

const cpuModule = "cpu"

type ICpuService interface {
	GetAll(ctx context.Context) ([]*dto.CpuResponse, error)
	// Show returns nil, nil when the CPU does not exist.
	Show(ctx context.Context, id uint64) (*dto.CpuResponse, error)
	Create(ctx context.Context, req *dto.CpuRequest) (*dto.CpuResponse, error)
	// Update replaces brand, model and socket. Returns nil, nil and writes
	// nothing when the CPU does not exist.
	Update(ctx context.Context, id uint64, req *dto.CpuRequest) (*dto.CpuResponse, error)
	// Delete succeeds whether or not the CPU exists.
	Delete(ctx context.Context, id uint64) error
}

type cpuService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewCpuService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) ICpuService {
	return &cpuService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *cpuService) GetAll(ctx context.Context) ([]*dto.CpuResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cpus, err := uow.CpuRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CpuResponse, 0, len(cpus))
	for _, cpu := range cpus {
		result = append(result, toCpuResponse(cpu))
	}
	return result, nil
}

func (s *cpuService) Show(ctx context.Context, id uint64) (*dto.CpuResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cpu, err := uow.CpuRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	return toCpuResponse(cpu), nil
}

func (s *cpuService) Create(ctx context.Context, req *dto.CpuRequest) (*dto.CpuResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The socket reference is not checked here; the foreign key decides.
	cpu := entity.Cpu{
		Brand:    req.Brand,
		Model:    req.Model,
		SocketId: socketIdOf(req),
	}
	if err := uow.CpuRepository().Create(ctx, &cpu); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisherService, s.logger, cpuModule, events.New(events.CpuCreated, cpuEventData(&cpu)))

	return toCpuResponse(&cpu), nil
}

func (s *cpuService) Update(ctx context.Context, id uint64, req *dto.CpuRequest) (*dto.CpuResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Full replace: omitted fields become empty, the id never changes.
	cpu := entity.Cpu{
		Id:       id,
		Brand:    req.Brand,
		Model:    req.Model,
		SocketId: socketIdOf(req),
	}
	if err := uow.CpuRepository().Update(ctx, &cpu); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	publishEvent(ctx, s.publisherService, s.logger, cpuModule, events.New(events.CpuUpdated, cpuEventData(&cpu)))
	return toCpuResponse(&cpu), nil
}

func (s *cpuService) Delete(ctx context.Context, id uint64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.CpuRepository().Delete(ctx, id); err != nil {
		return err
	}

	publishEvent(ctx, s.publisherService, s.logger, cpuModule, events.New(events.CpuDeleted, map[string]interface{}{
		"id": id,
	}))
	return nil
}

func socketIdOf(req *dto.CpuRequest) *uint64 {
	if req.Socket == nil {
		return nil
	}
	id := req.Socket.Id
	return &id
}

func cpuEventData(cpu *entity.Cpu) map[string]interface{} {
	data := map[string]interface{}{
		"id":    cpu.Id,
		"brand": cpu.Brand,
		"model": cpu.Model,
	}
	if cpu.SocketId != nil {
		data["socket_id"] = *cpu.SocketId
	}
	return data
}

func toCpuResponse(cpu *entity.Cpu) *dto.CpuResponse {
	if cpu == nil {
		return nil
	}
	return &dto.CpuResponse{
		Id:     cpu.Id,
		Brand:  cpu.Brand,
		Model:  cpu.Model,
		Socket: toSocketResponse(cpu.Socket),
	}
}
