// internal\entity\cpu_entity.go
package entity

import "time"

type Cpu struct {
	Id    uint64
	Brand string
	Model string

	// SocketId is the stored reference. Socket is only populated by the
	// repository's explicit socket lookup and is nil for a dangling or
	// empty reference.
	SocketId *uint64
	Socket   *Socket

	CreatedAt time.Time
	UpdatedAt time.Time
}
