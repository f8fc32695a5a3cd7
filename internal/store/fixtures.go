package store

import (
	"time"

	"github.com/ahmedyasserjs010/CoursesSite/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// SeedFixtures 每次调用都返回一份全新的播种数据，Reset 后互不串改
func SeedFixtures() Fixtures {
	ahmed := domain.Instructor{
		ID:            "1",
		Name:          "Ahmed Hassan",
		NameAr:        "أحمد حسن",
		Bio:           "Senior React Developer with 8+ years experience building scalable web applications",
		BioAr:         "مطور React كبير مع خبرة تزيد عن 8 سنوات في بناء تطبيقات الويب القابلة للتوسع",
		Avatar:        "/instructors/ahmed.jpg",
		Rating:        4.9,
		StudentCount:  1250,
		CourseCount:   12,
		Specialties:   []string{"React", "TypeScript", "Node.js", "GraphQL"},
		SpecialtiesAr: []string{"React", "TypeScript", "Node.js", "GraphQL"},
		SocialLinks: map[string]string{
			"github":   "https://github.com/ahmedhassan",
			"linkedin": "https://linkedin.com/in/ahmedhassan",
			"twitter":  "https://twitter.com/ahmedhassan",
		},
	}

	sarah := domain.Instructor{
		ID:            "2",
		Name:          "Sarah Johnson",
		NameAr:        "سارة جونسون",
		Bio:           "TypeScript Expert and Software Architect with focus on clean code and design patterns",
		BioAr:         "خبيرة TypeScript ومهندسة برمجيات مع التركيز على الكود النظيف وأنماط التصميم",
		Avatar:        "/instructors/sarah.jpg",
		Rating:        4.9,
		StudentCount:  890,
		CourseCount:   8,
		Specialties:   []string{"TypeScript", "Architecture", "Design Patterns", "Clean Code"},
		SpecialtiesAr: []string{"TypeScript", "الهندسة المعمارية", "أنماط التصميم", "الكود النظيف"},
		SocialLinks: map[string]string{
			"twitter":  "https://twitter.com/sarahjohnson",
			"linkedin": "https://linkedin.com/in/sarahjohnson",
			"website":  "https://sarahjohnson.dev",
		},
	}

	// 课程里嵌的是建课时刻的讲师快照（bio 略短、social 子集），
	// 和讲师库里的完整记录刻意不完全一致
	ahmedSnap := ahmed
	ahmedSnap.Bio = "Senior React Developer with 8+ years experience"
	ahmedSnap.BioAr = "مطور React كبير مع خبرة تزيد عن 8 سنوات"
	ahmedSnap.Specialties = []string{"React", "TypeScript", "Node.js"}
	ahmedSnap.SpecialtiesAr = []string{"React", "TypeScript", "Node.js"}
	ahmedSnap.SocialLinks = map[string]string{
		"github":   "https://github.com/ahmedhassan",
		"linkedin": "https://linkedin.com/in/ahmedhassan",
	}

	sarahSnap := sarah
	sarahSnap.Bio = "TypeScript Expert and Software Architect"
	sarahSnap.BioAr = "خبيرة TypeScript ومهندسة برمجيات"
	sarahSnap.Specialties = []string{"TypeScript", "Architecture", "Design Patterns"}
	sarahSnap.SpecialtiesAr = []string{"TypeScript", "الهندسة المعمارية", "أنماط التصميم"}
	sarahSnap.SocialLinks = map[string]string{
		"twitter":  "https://twitter.com/sarahjohnson",
		"linkedin": "https://linkedin.com/in/sarahjohnson",
	}

	courses := []domain.Course{
		{
			ID:            "1",
			Title:         "Complete React Development Course",
			TitleAr:       "دورة تطوير React الكاملة",
			Description:   "Learn React from scratch with modern hooks, context, and best practices",
			DescriptionAr: "تعلم React من الصفر مع الـ hooks الحديثة والـ context وأفضل الممارسات",
			Instructor:    ahmedSnap,
			Level:         domain.LevelBeginner,
			Duration:      40,
			Price:         99,
			OriginalPrice: 149,
			Rating:        4.8,
			ReviewCount:   324,
			Thumbnail:     "/courses/react-course.jpg",
			Tags:          []string{"React", "JavaScript", "Frontend"},
			TagsAr:        []string{"React", "JavaScript", "واجهة المستخدم"},
			Lessons: []domain.Lesson{
				{
					ID:            "1-1",
					Title:         "Introduction to React",
					TitleAr:       "مقدمة في React",
					Description:   "Understanding React basics and JSX",
					DescriptionAr: "فهم أساسيات React و JSX",
					Duration:      45,
					VideoURL:      "/videos/react-intro.mp4",
					Resources:     []string{},
					IsPreview:     true,
					Order:         1,
				},
				{
					ID:            "1-2",
					Title:         "Components and Props",
					TitleAr:       "المكونات والخصائص",
					Description:   "Creating and using React components",
					DescriptionAr: "إنشاء واستخدام مكونات React",
					Duration:      60,
					VideoURL:      "/videos/react-components.mp4",
					Resources:     []string{},
					IsPreview:     false,
					Order:         2,
				},
			},
			CreatedAt:   day(2024, time.January, 15),
			UpdatedAt:   day(2024, time.January, 15),
			IsPublished: true,
			IsFeatured:  true,
		},
		{
			ID:            "2",
			Title:         "Advanced TypeScript Patterns",
			TitleAr:       "أنماط TypeScript المتقدمة",
			Description:   "Master advanced TypeScript concepts and patterns",
			DescriptionAr: "إتقان مفاهيم وأنماط TypeScript المتقدمة",
			Instructor:    sarahSnap,
			Level:         domain.LevelAdvanced,
			Duration:      35,
			Price:         149,
			OriginalPrice: 199,
			Rating:        4.9,
			ReviewCount:   156,
			Thumbnail:     "/courses/typescript-course.jpg",
			Tags:          []string{"TypeScript", "Advanced", "Patterns"},
			TagsAr:        []string{"TypeScript", "متقدم", "أنماط"},
			Lessons: []domain.Lesson{
				{
					ID:            "2-1",
					Title:         "Advanced Types",
					TitleAr:       "الأنواع المتقدمة",
					Description:   "Conditional types, mapped types, and template literals",
					DescriptionAr: "الأنواع الشرطية والأنواع المعينة والحروف النصية القالبية",
					Duration:      90,
					VideoURL:      "/videos/ts-advanced-types.mp4",
					Resources:     []string{},
					IsPreview:     true,
					Order:         1,
				},
			},
			CreatedAt:   day(2024, time.January, 20),
			UpdatedAt:   day(2024, time.January, 20),
			IsPublished: true,
			IsFeatured:  false,
		},
	}

	testimonials := []domain.Testimonial{
		{
			ID:        "1",
			Name:      "Mohammed Ali",
			NameAr:    "محمد علي",
			Content:   "This course completely changed my understanding of React. The instructor explains complex concepts in a simple way.",
			ContentAr: "هذه الدورة غيرت فهمي لـ React تماماً. المدرس يشرح المفاهيم المعقدة بطريقة بسيطة.",
			Rating:    5,
			Avatar:    "/testimonials/mohammed.jpg",
			Course:    "Complete React Development Course",
			CourseAr:  "دورة تطوير React الكاملة",
			CreatedAt: day(2024, time.January, 25),
		},
		{
			ID:        "2",
			Name:      "Fatima Ahmed",
			NameAr:    "فاطمة أحمد",
			Content:   "Excellent course! The TypeScript patterns taught here are exactly what I needed for my projects.",
			ContentAr: "دورة ممتازة! أنماط TypeScript التي تم تعليمها هنا هي بالضبط ما احتجته لمشاريعي.",
			Rating:    5,
			Avatar:    "/testimonials/fatima.jpg",
			Course:    "Advanced TypeScript Patterns",
			CourseAr:  "أنماط TypeScript المتقدمة",
			CreatedAt: day(2024, time.January, 28),
		},
	}

	users := []domain.User{
		{
			ID:              "1",
			Email:           "demo@example.com",
			Name:            "Demo User",
			Avatar:          "/avatars/demo.jpg",
			Role:            domain.RoleLearner,
			Preferences:     domain.DefaultPreferences(),
			EnrolledCourses: []string{"1", "2"},
			CreatedAt:       day(2024, time.January, 1),
		},
	}

	return Fixtures{
		Courses:      courses,
		Instructors:  []domain.Instructor{ahmed, sarah},
		Testimonials: testimonials,
		Users:        users,
	}
}
