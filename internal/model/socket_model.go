package model

import "time"

type Socket struct {
	Id        uint64    `gorm:"primaryKey;autoIncrement"`
	Brand     string    `gorm:"type:varchar(255)"`
	Chipset   string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Socket) TableName() string {
	return "sockets"
}
