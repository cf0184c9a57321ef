// FILE: internal/service/socket_service.go
package service

import (
	"context"

	"cpu-catalog-be/internal/dto"
	"cpu-catalog-be/internal/entity"
	"cpu-catalog-be/internal/pkg/logger"
	"cpu-catalog-be/internal/repository/specification"
	"cpu-catalog-be/internal/repository/unitofwork"
	"cpu-catalog-be/pkg/events"
)

const socketModule = "socket"

type ISocketService interface {
	GetAll(ctx context.Context) ([]*dto.SocketResponse, error)
	// Show returns nil, nil when the socket does not exist.
	Show(ctx context.Context, id uint64) (*dto.SocketResponse, error)
	Create(ctx context.Context, req *dto.CreateSocketRequest) (*dto.SocketResponse, error)
}

type socketService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewSocketService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	logger logger.ILogger,
) ISocketService {
	return &socketService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           logger,
	}
}

func (s *socketService) GetAll(ctx context.Context) ([]*dto.SocketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sockets, err := uow.SocketRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SocketResponse, 0, len(sockets))
	for _, socket := range sockets {
		result = append(result, toSocketResponse(socket))
	}
	return result, nil
}

func (s *socketService) Show(ctx context.Context, id uint64) (*dto.SocketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	socket, err := uow.SocketRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	return toSocketResponse(socket), nil
}

func (s *socketService) Create(ctx context.Context, req *dto.CreateSocketRequest) (*dto.SocketResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// req.Id is dropped; the store assigns the id.
	socket := entity.Socket{
		Brand:   req.Brand,
		Chipset: req.Chipset,
	}
	if err := uow.SocketRepository().Create(ctx, &socket); err != nil {
		return nil, err
	}

	publishEvent(ctx, s.publisherService, s.logger, socketModule, events.New(events.SocketCreated, map[string]interface{}{
		"id":      socket.Id,
		"brand":   socket.Brand,
		"chipset": socket.Chipset,
	}))

	return toSocketResponse(&socket), nil
}

func toSocketResponse(socket *entity.Socket) *dto.SocketResponse {
	if socket == nil {
		return nil
	}
	return &dto.SocketResponse{
		Id:      socket.Id,
		Brand:   socket.Brand,
		Chipset: socket.Chipset,
	}
}

// publishEvent is fire-and-forget: the write already succeeded, so a
// failed publish is only logged.
func publishEvent(ctx context.Context, publisher IPublisherService, log logger.ILogger, module string, event events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		log.Warn(module, "failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
