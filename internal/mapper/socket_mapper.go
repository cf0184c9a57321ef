package mapper

import (
	"cpu-catalog-be/internal/entity"
	"cpu-catalog-be/internal/model"
)

type SocketMapper struct{}

func NewSocketMapper() *SocketMapper {
	return &SocketMapper{}
}

func (m *SocketMapper) ToEntity(s *model.Socket) *entity.Socket {
	if s == nil {
		return nil
	}
	return &entity.Socket{
		Id:        s.Id,
		Brand:     s.Brand,
		Chipset:   s.Chipset,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *SocketMapper) ToModel(s *entity.Socket) *model.Socket {
	if s == nil {
		return nil
	}
	return &model.Socket{
		Id:        s.Id,
		Brand:     s.Brand,
		Chipset:   s.Chipset,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *SocketMapper) ToEntities(sockets []*model.Socket) []*entity.Socket {
	entities := make([]*entity.Socket, len(sockets))
	for i, s := range sockets {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
