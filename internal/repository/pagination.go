package repository

import "gorm.io/gorm"

// paginate 返回分页 scope，pageSize 不大于 0 时不分页，页码从 1 开始
func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}
