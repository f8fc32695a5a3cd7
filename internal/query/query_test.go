package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	id      string
	title   string
	titleAr string
	level   string
	tags    []string
	rating  float64
}

func titleField() LocaleText[record] {
	return LocaleText[record]{
		Primary: func(r record) string { return r.title },
		Alt:     func(r record) string { return r.titleAr },
	}
}

func sample() []record {
	return []record{
		{id: "1", title: "React Basics", titleAr: "أساسيات رياكت", level: "beginner", tags: []string{"React", "Frontend"}, rating: 4.8},
		{id: "2", title: "Advanced Patterns", titleAr: "أنماط GraphQL", level: "advanced", tags: []string{"Patterns"}, rating: 4.9},
		{id: "3", title: "Go Services", titleAr: "خدمات Go", level: "beginner", tags: []string{"Go", "Backend"}, rating: 4.5},
	}
}

func ids(items []record) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.id)
	}
	return out
}

func TestRun_NoPredicatesReturnsAll(t *testing.T) {
	items, info := Run(sample(), nil, Sort[record]{}, Page{})
	assert.Equal(t, []string{"1", "2", "3"}, ids(items))
	assert.Equal(t, 3, info.Total)
}

func TestRun_SinglePredicate(t *testing.T) {
	preds := []Predicate[record]{
		Equals[record]{Key: func(r record) string { return r.level }, Want: "beginner"},
	}
	items, info := Run(sample(), preds, Sort[record]{}, Page{})
	assert.Equal(t, []string{"1", "3"}, ids(items))
	assert.Equal(t, 2, info.Total)
}

func TestRun_ConjunctionDisjointPredicatesIsEmpty(t *testing.T) {
	// level=advanced 只命中 2，tag Go 只命中 3：AND 之下应为空集
	preds := []Predicate[record]{
		Equals[record]{Key: func(r record) string { return r.level }, Want: "advanced"},
		AnyOf[record]{Set: func(r record) []string { return r.tags }, Values: []string{"Go"}},
	}
	items, info := Run(sample(), preds, Sort[record]{}, Page{})
	assert.Empty(t, items)
	assert.Equal(t, 0, info.Total)
}

func TestSearch_PrimaryLocaleIsCaseInsensitive(t *testing.T) {
	p := Search[record]{Term: "REACT", Fields: []LocaleText[record]{titleField()}}
	items, _ := Run(sample(), []Predicate[record]{p}, Sort[record]{}, Page{})
	assert.Equal(t, []string{"1"}, ids(items))
}

func TestSearch_AltLocaleIsCaseSensitive(t *testing.T) {
	// "GraphQL" 只出现在 2 的副语言字段：大小写必须完全一致才算命中
	exact := Search[record]{Term: "GraphQL", Fields: []LocaleText[record]{titleField()}}
	items, _ := Run(sample(), []Predicate[record]{exact}, Sort[record]{}, Page{})
	assert.Equal(t, []string{"2"}, ids(items))

	lower := Search[record]{Term: "graphql", Fields: []LocaleText[record]{titleField()}}
	items, _ = Run(sample(), []Predicate[record]{lower}, Sort[record]{}, Page{})
	assert.Empty(t, items) // 副语言不做大小写折叠
}

func TestSearch_ArabicSubstring(t *testing.T) {
	p := Search[record]{Term: "أنماط", Fields: []LocaleText[record]{titleField()}}
	items, _ := Run(sample(), []Predicate[record]{p}, Sort[record]{}, Page{})
	assert.Equal(t, []string{"2"}, ids(items))
}

func TestRun_UnknownSortKeyPreservesOrder(t *testing.T) {
	items, _ := Run(sample(), nil, Sort[record]{Key: nil, Desc: true}, Page{})
	assert.Equal(t, []string{"1", "2", "3"}, ids(items))
}

func TestRun_SortDescendingByRating(t *testing.T) {
	s := Sort[record]{Key: func(r record) float64 { return r.rating }, Desc: true}
	items, _ := Run(sample(), nil, s, Page{})
	assert.Equal(t, []string{"2", "1", "3"}, ids(items))
}

func TestRun_SortIsStableOnTies(t *testing.T) {
	recs := []record{
		{id: "a", rating: 4.5},
		{id: "b", rating: 4.5},
		{id: "c", rating: 4.5},
	}
	s := Sort[record]{Key: func(r record) float64 { return r.rating }, Desc: true}
	items, _ := Run(recs, nil, s, Page{})
	assert.Equal(t, []string{"a", "b", "c"}, ids(items))
}

func TestRun_SortDoesNotMutateInput(t *testing.T) {
	recs := sample()
	s := Sort[record]{Key: func(r record) float64 { return r.rating }, Desc: true}
	_, _ = Run(recs, nil, s, Page{})
	assert.Equal(t, []string{"1", "2", "3"}, ids(recs))
}

func TestRun_PaginationMath(t *testing.T) {
	recs := make([]record, 23)
	for i := range recs {
		recs[i] = record{id: string(rune('a' + i))}
	}

	items, info := Run(recs, nil, Sort[record]{}, Page{Number: 1, Size: 5})
	require.Len(t, items, 5)
	assert.Equal(t, 23, info.Total)
	assert.Equal(t, 5, info.TotalPages) // ceil(23/5)
	assert.False(t, info.HasPrev)
	assert.True(t, info.HasNext)

	items, info = Run(recs, nil, Sort[record]{}, Page{Number: 5, Size: 5})
	assert.Len(t, items, 3) // 23 mod 5
	assert.True(t, info.HasPrev)
	assert.False(t, info.HasNext)
}

func TestRun_ExactMultipleLastPageIsFull(t *testing.T) {
	recs := make([]record, 20)
	items, info := Run(recs, nil, Sort[record]{}, Page{Number: 4, Size: 5})
	assert.Len(t, items, 5)
	assert.Equal(t, 4, info.TotalPages)
	assert.False(t, info.HasNext)
}

func TestRun_EmptySet(t *testing.T) {
	items, info := Run([]record{}, nil, Sort[record]{}, Page{Number: 1, Size: 5})
	assert.Empty(t, items)
	assert.Equal(t, 0, info.Total)
	assert.Equal(t, 0, info.TotalPages)
	assert.False(t, info.HasNext)
	assert.False(t, info.HasPrev)
}

func TestRun_PageBeyondLastIsEmptyNotError(t *testing.T) {
	items, info := Run(sample(), nil, Sort[record]{}, Page{Number: 99, Size: 10})
	assert.Empty(t, items)
	assert.Equal(t, 3, info.Total)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, 99, info.Page)
	assert.True(t, info.HasPrev)
	assert.False(t, info.HasNext)
}

func TestRun_Defaults(t *testing.T) {
	_, info := Run(sample(), nil, Sort[record]{}, Page{})
	assert.Equal(t, 1, info.Page)
	assert.Equal(t, 10, info.Limit)
}

func TestRun_MalformedPredicatesMatchNothing(t *testing.T) {
	// nil 访问器 / 空值集合：该谓词退化为“不命中”，而不是 panic 或放行
	_, info := Run(sample(), []Predicate[record]{Equals[record]{Key: nil, Want: "x"}}, Sort[record]{}, Page{})
	assert.Equal(t, 0, info.Total)

	_, info = Run(sample(), []Predicate[record]{AnyOf[record]{Set: func(r record) []string { return r.tags }}}, Sort[record]{}, Page{})
	assert.Equal(t, 0, info.Total)

	_, info = Run(sample(), []Predicate[record]{Search[record]{Term: "", Fields: []LocaleText[record]{titleField()}}}, Sort[record]{}, Page{})
	assert.Equal(t, 0, info.Total)
}

func TestRun_IsPureFunction(t *testing.T) {
	recs := sample()
	preds := []Predicate[record]{
		Equals[record]{Key: func(r record) string { return r.level }, Want: "beginner"},
	}
	s := Sort[record]{Key: func(r record) float64 { return r.rating }, Desc: true}

	a1, i1 := Run(recs, preds, s, Page{Number: 1, Size: 1})
	a2, i2 := Run(recs, preds, s, Page{Number: 1, Size: 1})
	assert.Equal(t, a1, a2)
	assert.Equal(t, i1, i2)
}
