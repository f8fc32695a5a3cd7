package domain

import "time"

type Testimonial struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	NameAr    string    `json:"nameAr"`
	Content   string    `json:"content"`
	ContentAr string    `json:"contentAr"`
	Rating    int       `json:"rating"` // 0-5 整数
	Avatar    string    `json:"avatar"`
	Course    string    `json:"course"` // 引用课程标题（非外键）
	CourseAr  string    `json:"courseAr"`
	CreatedAt time.Time `json:"createdAt"`
}
