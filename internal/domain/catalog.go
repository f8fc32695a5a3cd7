package domain

import "time"

// Level 课程难度（封闭枚举）
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

type Lesson struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	TitleAr       string   `json:"titleAr"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"descriptionAr"`
	Duration      int      `json:"duration"`
	VideoURL      string   `json:"videoUrl"`
	Resources     []string `json:"resources"`
	IsPreview     bool     `json:"isPreview"`
	Order         int      `json:"order"`
}

type Course struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TitleAr       string `json:"titleAr"`
	Description   string `json:"description"`
	DescriptionAr string `json:"descriptionAr"`

	// Instructor 按值嵌入，是建课时刻的快照；改讲师库不会回写这里
	Instructor Instructor `json:"instructor"`

	Level         Level   `json:"level"`
	Duration      int     `json:"duration"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating"`
	ReviewCount   int     `json:"reviewCount"`
	Thumbnail     string  `json:"thumbnail"`

	// TagsAr 与 Tags 按下标对齐
	Tags   []string `json:"tags"`
	TagsAr []string `json:"tagsAr"`

	Lessons     []Lesson  `json:"lessons"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	IsPublished bool      `json:"isPublished"`
	IsFeatured  bool      `json:"isFeatured"`
}

// CourseQuery 课程列表查询条件；零值字段表示“无此维度约束”
type CourseQuery struct {
	Search     string   `form:"search" json:"search,omitempty"`
	Level      string   `form:"level" json:"level,omitempty"`
	Instructor string   `form:"instructor" json:"instructor,omitempty"`
	Tags       []string `form:"tags" json:"tags,omitempty"`
	SortBy     string   `form:"sortBy" json:"sortBy,omitempty"`       // newest|oldest|rating|price|duration
	SortOrder  string   `form:"sortOrder" json:"sortOrder,omitempty"` // asc|desc
	Page       int      `form:"page" json:"page,omitempty"`
	Limit      int      `form:"limit" json:"limit,omitempty"`
}
