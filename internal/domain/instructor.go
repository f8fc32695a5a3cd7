package domain

type Instructor struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameAr string `json:"nameAr"`
	Bio    string `json:"bio"`
	BioAr  string `json:"bioAr"`
	Avatar string `json:"avatar"`

	Rating       float64 `json:"rating"`
	StudentCount int     `json:"studentCount"`
	CourseCount  int     `json:"courseCount"`

	// SpecialtiesAr 按下标对齐 Specialties，允许比主列表短
	Specialties   []string `json:"specialties"`
	SpecialtiesAr []string `json:"specialtiesAr"`

	// 平台名 -> 主页 URL（github/linkedin/twitter/website）
	SocialLinks map[string]string `json:"socialLinks"`
}

type InstructorQuery struct {
	Search      string   `form:"search" json:"search,omitempty"`
	Specialties []string `form:"specialties" json:"specialties,omitempty"`
	Page        int      `form:"page" json:"page,omitempty"`
	Limit       int      `form:"limit" json:"limit,omitempty"`
}
