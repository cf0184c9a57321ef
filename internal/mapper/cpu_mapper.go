package mapper

import (
	"cpu-catalog-be/internal/entity"
	"cpu-catalog-be/internal/model"
)

type CpuMapper struct{}

func NewCpuMapper() *CpuMapper {
	return &CpuMapper{}
}

// ToEntity leaves Socket nil; the repository resolves it in a separate step.
func (m *CpuMapper) ToEntity(c *model.Cpu) *entity.Cpu {
	if c == nil {
		return nil
	}
	return &entity.Cpu{
		Id:        c.Id,
		Brand:     c.Brand,
		Model:     c.Model,
		SocketId:  copyId(c.SocketId),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToModel never sets the Socket association so GORM does not upsert it.
func (m *CpuMapper) ToModel(c *entity.Cpu) *model.Cpu {
	if c == nil {
		return nil
	}
	return &model.Cpu{
		Id:        c.Id,
		Brand:     c.Brand,
		Model:     c.Model,
		SocketId:  copyId(c.SocketId),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (m *CpuMapper) ToEntities(cpus []*model.Cpu) []*entity.Cpu {
	entities := make([]*entity.Cpu, len(cpus))
	for i, c := range cpus {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func copyId(id *uint64) *uint64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
