package service

import (
	"github.com/ahmedyasserjs010/CoursesSite/internal/domain"
	"github.com/ahmedyasserjs010/CoursesSite/internal/query"
)

// 把松散的查询参数翻译成引擎的谓词集合；缺席的维度不产生谓词

func coursePredicates(q domain.CourseQuery) []query.Predicate[domain.Course] {
	var preds []query.Predicate[domain.Course]
	if q.Search != "" {
		preds = append(preds, query.Search[domain.Course]{
			Term: q.Search,
			Fields: []query.LocaleText[domain.Course]{
				{
					Primary: func(c domain.Course) string { return c.Title },
					Alt:     func(c domain.Course) string { return c.TitleAr },
				},
				{
					Primary: func(c domain.Course) string { return c.Description },
					Alt:     func(c domain.Course) string { return c.DescriptionAr },
				},
			},
		})
	}
	if q.Level != "" {
		preds = append(preds, query.Equals[domain.Course]{
			Key:  func(c domain.Course) string { return string(c.Level) },
			Want: q.Level,
		})
	}
	if q.Instructor != "" {
		preds = append(preds, query.Equals[domain.Course]{
			Key:  func(c domain.Course) string { return c.Instructor.ID },
			Want: q.Instructor,
		})
	}
	if len(q.Tags) > 0 {
		preds = append(preds, query.AnyOf[domain.Course]{
			Set:    func(c domain.Course) []string { return c.Tags },
			Values: q.Tags,
		})
	}
	return preds
}

func courseSort(q domain.CourseQuery) query.Sort[domain.Course] {
	var key func(domain.Course) float64
	switch q.SortBy {
	case "newest", "oldest": // 两个别名都按创建时间取键，方向看 sortOrder
		key = func(c domain.Course) float64 { return float64(c.CreatedAt.UnixNano()) }
	case "rating":
		key = func(c domain.Course) float64 { return c.Rating }
	case "price":
		key = func(c domain.Course) float64 { return c.Price }
	case "duration":
		key = func(c domain.Course) float64 { return float64(c.Duration) }
	}
	// 未知键 key 保持 nil：引擎维持输入顺序
	return query.Sort[domain.Course]{Key: key, Desc: q.SortOrder == "desc"}
}

func instructorPredicates(q domain.InstructorQuery) []query.Predicate[domain.Instructor] {
	var preds []query.Predicate[domain.Instructor]
	if q.Search != "" {
		preds = append(preds, query.Search[domain.Instructor]{
			Term: q.Search,
			Fields: []query.LocaleText[domain.Instructor]{
				{
					Primary: func(in domain.Instructor) string { return in.Name },
					Alt:     func(in domain.Instructor) string { return in.NameAr },
				},
				{
					Primary: func(in domain.Instructor) string { return in.Bio },
					Alt:     func(in domain.Instructor) string { return in.BioAr },
				},
			},
		})
	}
	if len(q.Specialties) > 0 {
		preds = append(preds, query.AnyOf[domain.Instructor]{
			Set:    func(in domain.Instructor) []string { return in.Specialties },
			Values: q.Specialties,
		})
	}
	return preds
}
