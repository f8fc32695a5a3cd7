// Package store 进程内的四个数据集：课程、讲师、学员评价、用户目录。
// 进程启动时用 fixtures 播种，核心内没有删除操作。
package store

import (
	"sync"

	"github.com/ahmedyasserjs010/CoursesSite/internal/domain"
)

// Fixtures 一次完整的播种数据
type Fixtures struct {
	Courses      []domain.Course
	Instructors  []domain.Instructor
	Testimonials []domain.Testimonial
	Users        []domain.User
}

// Store 读写都拿锁，只保证内存安全；跨调用的“先查后写”序列
// 不提供原子性（模拟器的已知特性，最后写入者生效）。
type Store struct {
	mu   sync.RWMutex
	seed func() Fixtures

	courses      []domain.Course
	instructors  []domain.Instructor
	testimonials []domain.Testimonial
	users        []domain.User
}

// NewSeeded 用内置 fixtures 建库
func NewSeeded() *Store { return New(SeedFixtures) }

// New 用自定义播种函数建库；Reset 会重新调用它，测试隔离靠这个
func New(seed func() Fixtures) *Store {
	s := &Store{seed: seed}
	s.Reset()
	return s
}

// Reset 回到播种时刻的内容
func (s *Store) Reset() {
	fx := s.seed()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = fx.Courses
	s.instructors = fx.Instructors
	s.testimonials = fx.Testimonials
	s.users = fx.Users
}

// Courses 返回切片快照；元素按值复制，调用方排序/截断不影响库
func (s *Store) Courses() []domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

func (s *Store) CourseByID(id string) (domain.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Course{}, false
}

func (s *Store) Instructors() []domain.Instructor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Instructor, len(s.instructors))
	copy(out, s.instructors)
	return out
}

func (s *Store) InstructorByID(id string) (domain.Instructor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, in := range s.instructors {
		if in.ID == id {
			return in, true
		}
	}
	return domain.Instructor{}, false
}

// ReplaceInstructor 覆盖讲师库里的一条记录。
// Course.Instructor 是快照，这里的改动不会传播到已嵌入的副本。
func (s *Store) ReplaceInstructor(in domain.Instructor) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.instructors {
		if s.instructors[i].ID == in.ID {
			s.instructors[i] = in
			return true
		}
	}
	return false
}

func (s *Store) Testimonials() []domain.Testimonial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Testimonial, len(s.testimonials))
	copy(out, s.testimonials)
	return out
}

func (s *Store) UserByEmail(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email { // 精确匹配，区分大小写
			return u, true
		}
	}
	return domain.User{}, false
}

// AddUser 在同一把锁里做唯一性检查 + 追加；邮箱已存在时返回 false
func (s *Store) AddUser(u domain.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, have := range s.users {
		if have.Email == u.Email {
			return false
		}
	}
	s.users = append(s.users, u)
	return true
}

func (s *Store) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
