package entity

import "time"

type Socket struct {
	Id        uint64
	Brand     string
	Chipset   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
