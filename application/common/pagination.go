package common

import "catalog/domain/shared"

// PaginationOutput 列表用例的输出
type PaginationOutput[T any] struct {
	Items       []T `json:"items" yaml:"items"`
	Total       int `json:"total" yaml:"total"`
	CurrentPage int `json:"current_page" yaml:"current_page"`
	LastPage    int `json:"last_page" yaml:"last_page"`
	PerPage     int `json:"per_page" yaml:"per_page"`
}

// NewPaginationOutput 用已经转换好的 items 和原始搜索结果的分页信息构造输出
func NewPaginationOutput[T any, E any](items []T, result shared.SearchResult[E]) PaginationOutput[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return PaginationOutput[T]{
		Items:       items,
		Total:       result.Total(),
		CurrentPage: result.CurrentPage(),
		LastPage:    result.LastPage(),
		PerPage:     result.PerPage(),
	}
}
