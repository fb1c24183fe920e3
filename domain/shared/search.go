package shared

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 15
)

// SortDirection 排序方向
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SearchInput 调用方传入的原始搜索参数
// Page/PerPage 接受任意类型（CLI flag 字符串、YAML 数字、nil），统一在 NewSearchParams 中归一化
type SearchInput struct {
	Page    any    `json:"page" yaml:"page"`
	PerPage any    `json:"per_page" yaml:"per_page"`
	Sort    string `json:"sort" yaml:"sort"`
	SortDir string `json:"sort_dir" yaml:"sort_dir"`
}

// SearchParams 归一化后的不可变搜索参数
// filter 为 nil 表示不过滤（null filter）
type SearchParams[F any] struct {
	page    int
	perPage int
	sort    string
	sortDir SortDirection
	filter  *F
}

// NewSearchParams 归一化规则：
//   - page / per_page 不是有限的正整数时回落到默认值 1 / 15
//   - sort 为空白时视为未设置
//   - sort_dir 只在 sort 存在时生效，转小写，非 asc/desc 一律 asc
//   - filter 由各聚合自己归一化后传入
func NewSearchParams[F any](in SearchInput, filter *F) SearchParams[F] {
	p := SearchParams[F]{
		page:    normalizePositiveInt(in.Page, DefaultPage),
		perPage: normalizePositiveInt(in.PerPage, DefaultPerPage),
	}

	if strings.TrimSpace(in.Sort) != "" {
		p.sort = in.Sort
		p.sortDir = SortAsc
		if SortDirection(strings.ToLower(in.SortDir)) == SortDesc {
			p.sortDir = SortDesc
		}
	}

	if filter != nil {
		f := *filter
		p.filter = &f
	}
	return p
}

func normalizePositiveInt(value any, fallback int) int {
	if value == nil {
		return fallback
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return fallback
	}
	if _, ok := value.(bool); ok {
		return fallback
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return fallback
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return fallback
	}
	return int(f)
}

func (p SearchParams[F]) Page() int              { return p.page }
func (p SearchParams[F]) PerPage() int           { return p.perPage }
func (p SearchParams[F]) Sort() string           { return p.sort }
func (p SearchParams[F]) HasSort() bool          { return p.sort != "" }
func (p SearchParams[F]) SortDir() SortDirection { return p.sortDir }
func (p SearchParams[F]) HasFilter() bool        { return p.filter != nil }

// Filter 返回过滤条件的副本
func (p SearchParams[F]) Filter() (F, bool) {
	if p.filter == nil {
		var zero F
		return zero, false
	}
	return *p.filter, true
}

// Offset 分页起始下标 (page-1)*per_page
func (p SearchParams[F]) Offset() int {
	return (p.page - 1) * p.perPage
}

// SearchResult 一页搜索结果，last_page 在构造时计算
type SearchResult[E any] struct {
	items       []E
	total       int
	currentPage int
	perPage     int
	lastPage    int
}

func NewSearchResult[E any](items []E, total, currentPage, perPage int) SearchResult[E] {
	if items == nil {
		items = make([]E, 0)
	}
	lastPage := 0
	if perPage > 0 {
		lastPage = int(math.Ceil(float64(total) / float64(perPage)))
	}
	return SearchResult[E]{
		items:       items,
		total:       total,
		currentPage: currentPage,
		perPage:     perPage,
		lastPage:    lastPage,
	}
}

func (r SearchResult[E]) Items() []E       { return r.items }
func (r SearchResult[E]) Total() int       { return r.total }
func (r SearchResult[E]) CurrentPage() int { return r.currentPage }
func (r SearchResult[E]) PerPage() int     { return r.perPage }
func (r SearchResult[E]) LastPage() int    { return r.lastPage }

// MapSearchResult 转换条目类型，分页信息不变
func MapSearchResult[E, O any](r SearchResult[E], fn func(E) O) SearchResult[O] {
	out := make([]O, len(r.items))
	for i, item := range r.items {
		out[i] = fn(item)
	}
	return SearchResult[O]{
		items:       out,
		total:       r.total,
		currentPage: r.currentPage,
		perPage:     r.perPage,
		lastPage:    r.lastPage,
	}
}
