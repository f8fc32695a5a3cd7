// Package query 内存集合的过滤/排序/分页引擎。
// 纯函数：同样的 (快照, 条件, 排序, 分页) 永远给出同样的结果，自身不报错，
// 畸形条件退化为“该谓词不命中”。
package query

import (
	"slices"
	"strings"
)

// Predicate 单个过滤谓词；多个谓词按 AND 连接。
// 实现是封闭集合：Search / Equals / AnyOf
type Predicate[T any] interface {
	Match(v T) bool
}

// LocaleText 一对双语字段访问器。
// 主语言做大小写不敏感子串匹配，副语言按原样（区分大小写）子串匹配，
// 任意一侧命中即整条命中。
type LocaleText[T any] struct {
	Primary func(T) string
	Alt     func(T) string
}

type Search[T any] struct {
	Term   string
	Fields []LocaleText[T]
}

func (p Search[T]) Match(v T) bool {
	term := p.Term
	if term == "" {
		return false
	}
	lower := strings.ToLower(term)
	for _, f := range p.Fields {
		if f.Primary != nil && strings.Contains(strings.ToLower(f.Primary(v)), lower) {
			return true
		}
		if f.Alt != nil && strings.Contains(f.Alt(v), term) {
			return true
		}
	}
	return false
}

// Equals 类别字段相等（level、讲师 id 这类）
type Equals[T any] struct {
	Key  func(T) string
	Want string
}

func (p Equals[T]) Match(v T) bool { return p.Key != nil && p.Key(v) == p.Want }

// AnyOf 集合相交：给定值里任何一个出现在记录的集合里就命中
type AnyOf[T any] struct {
	Set    func(T) []string
	Values []string
}

func (p AnyOf[T]) Match(v T) bool {
	if p.Set == nil || len(p.Values) == 0 {
		return false
	}
	set := p.Set(v)
	for _, want := range p.Values {
		if slices.Contains(set, want) {
			return true
		}
	}
	return false
}

// Sort 单键排序；Key 为 nil（未知/未指定键）时保持输入相对顺序
type Sort[T any] struct {
	Key  func(T) float64
	Desc bool
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Page 1 起始的页码 + 页大小
type Page struct {
	Number int
	Size   int
}

func (p Page) withDefaults() Page {
	if p.Number < 1 {
		p.Number = DefaultPage
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// Info 分页元数据；Total 是过滤后、分页前的总数
type Info struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Run 过滤 → 稳定排序 → 分页。
// 超出末页的请求返回空列表和正确的元数据，不是错误。
func Run[T any](items []T, preds []Predicate[T], sort Sort[T], page Page) ([]T, Info) {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matchAll(it, preds) {
			out = append(out, it)
		}
	}

	if sort.Key != nil {
		slices.SortStableFunc(out, func(a, b T) int {
			av, bv := sort.Key(a), sort.Key(b)
			if sort.Desc {
				av, bv = bv, av
			}
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		})
	}

	page = page.withDefaults()
	total := len(out)
	start := (page.Number - 1) * page.Size
	end := start + page.Size

	var pageItems []T
	if start >= total {
		pageItems = []T{}
	} else {
		pageItems = out[start:min(end, total)]
	}

	return pageItems, Info{
		Page:       page.Number,
		Limit:      page.Size,
		Total:      total,
		TotalPages: (total + page.Size - 1) / page.Size,
		HasNext:    end < total,
		HasPrev:    page.Number > 1,
	}
}

func matchAll[T any](v T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if !p.Match(v) {
			return false
		}
	}
	return true
}
