package model

import "time"

type Cpu struct {
	Id       uint64  `gorm:"primaryKey;autoIncrement"`
	Brand    string  `gorm:"type:varchar(255)"`
	Model    string  `gorm:"type:varchar(255)"`
	SocketId *uint64 `gorm:"index"`

	// Declared for the foreign key constraint only. Repositories never
	// preload or assign it.
	Socket *Socket `gorm:"foreignKey:SocketId;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Cpu) TableName() string {
	return "cpus"
}
