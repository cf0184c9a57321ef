package scope

import "gorm.io/gorm"

// OrderByIdAsc gives list endpoints a stable order, oldest row first.
func OrderByIdAsc(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
