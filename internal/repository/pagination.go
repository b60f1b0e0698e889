package repository

import (
	"time"

	"gorm.io/gorm"
)

// pageWindow 页码从 1 开始；pageSize <= 0 时不分页
func pageWindow(page, pageSize int) (limit, offset int) {
	if pageSize <= 0 {
		return -1, -1
	}
	if page < 1 {
		page = 1
	}
	return pageSize, (page - 1) * pageSize
}

// findPage 先统计总数再按页读取；prepare 用于补充预加载，只作用于数据查询
func findPage[T any](query *gorm.DB, page, pageSize int, order string, prepare func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	limit, offset := pageWindow(page, pageSize)
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if prepare != nil {
		query = prepare(query)
	}
	var rows []T
	if err := query.Order(order).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// applyCreatedRange 按创建时间闭区间过滤
func applyCreatedRange(query *gorm.DB, from, to *time.Time) *gorm.DB {
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}
	return query
}
