package specification

import "gorm.io/gorm"

// BySocketID matches CPUs mounted on the given socket.
type BySocketID struct {
	SocketID uint64
}

func (s BySocketID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("socket_id = ?", s.SocketID)
}
