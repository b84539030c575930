package models

import "time"

// BaseModel 所有实体的公共字段
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"update_time"`
}

// PaginationQuery 列表接口通用的分页参数
type PaginationQuery struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// Normalize 纠正越界的分页参数，回落到默认值
func (q *PaginationQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 10
	}
}

// PaginationResult 列表接口通用的分页响应
type PaginationResult struct {
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int64       `json:"total_pages"`
	Data       interface{} `json:"data"`
}

// NewPaginationResult 创建一个新的分页结果对象
func NewPaginationResult(total int64, query PaginationQuery, data interface{}) PaginationResult {
	return PaginationResult{
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: (total + int64(query.PageSize) - 1) / int64(query.PageSize),
		Data:       data,
	}
}
