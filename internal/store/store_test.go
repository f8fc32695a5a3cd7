package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedyasserjs010/CoursesSite/internal/domain"
)

func TestSeedInvariants(t *testing.T) {
	fx := SeedFixtures()

	courseIDs := map[string]bool{}
	for _, c := range fx.Courses {
		assert.False(t, courseIDs[c.ID], "duplicate course id %s", c.ID)
		courseIDs[c.ID] = true

		assert.GreaterOrEqual(t, c.Rating, 0.0)
		assert.LessOrEqual(t, c.Rating, 5.0)
		assert.GreaterOrEqual(t, c.ReviewCount, 0)
		assert.Greater(t, c.Duration, 0)
		assert.Len(t, c.TagsAr, len(c.Tags), "tagsAr must align with tags")
		for _, l := range c.Lessons {
			assert.Greater(t, l.Duration, 0)
		}
	}

	instructorIDs := map[string]bool{}
	for _, in := range fx.Instructors {
		assert.False(t, instructorIDs[in.ID])
		instructorIDs[in.ID] = true
		assert.GreaterOrEqual(t, in.Rating, 0.0)
		assert.LessOrEqual(t, in.Rating, 5.0)
	}

	for _, tm := range fx.Testimonials {
		assert.GreaterOrEqual(t, tm.Rating, 0)
		assert.LessOrEqual(t, tm.Rating, 5)
	}

	require.Len(t, fx.Users, 1)
	assert.Equal(t, "demo@example.com", fx.Users[0].Email)
}

func TestAddUser_DuplicateEmailRejected(t *testing.T) {
	s := NewSeeded()
	ok := s.AddUser(domain.User{ID: "x", Email: "demo@example.com"})
	assert.False(t, ok)
	assert.Equal(t, 1, s.UserCount())

	ok = s.AddUser(domain.User{ID: "y", Email: "new@example.com"})
	assert.True(t, ok)
	assert.Equal(t, 2, s.UserCount())
}

func TestEmailLookupIsCaseSensitive(t *testing.T) {
	s := NewSeeded()
	_, found := s.UserByEmail("Demo@Example.com")
	assert.False(t, found)

	_, found = s.UserByEmail("demo@example.com")
	assert.True(t, found)
}

func TestReset_RestoresSeedState(t *testing.T) {
	s := NewSeeded()
	require.True(t, s.AddUser(domain.User{ID: "j", Email: "jane@x.com"}))
	require.Equal(t, 2, s.UserCount())

	s.Reset()

	assert.Equal(t, 1, s.UserCount())
	_, found := s.UserByEmail("jane@x.com")
	assert.False(t, found)
}

func TestInstructorMutationDoesNotRewriteCourseSnapshot(t *testing.T) {
	s := NewSeeded()

	in, found := s.InstructorByID("1")
	require.True(t, found)
	in.Rating = 1.0
	in.Bio = "changed"
	require.True(t, s.ReplaceInstructor(in))

	// 讲师库里改了
	got, _ := s.InstructorByID("1")
	assert.Equal(t, 1.0, got.Rating)

	// 课程里嵌的快照纹丝不动
	c, found := s.CourseByID("1")
	require.True(t, found)
	assert.Equal(t, 4.9, c.Instructor.Rating)
	assert.NotEqual(t, "changed", c.Instructor.Bio)
}

func TestCourses_ReturnsSnapshotSlice(t *testing.T) {
	s := NewSeeded()
	snap := s.Courses()
	require.NotEmpty(t, snap)
	snap[0].Title = "mutated"

	fresh, _ := s.CourseByID(snap[0].ID)
	assert.NotEqual(t, "mutated", fresh.Title)
}

func TestCustomSeedFunction(t *testing.T) {
	seed := func() Fixtures {
		return Fixtures{Courses: []domain.Course{{
			ID: "only", Title: "One", Level: domain.LevelBeginner,
			Duration: 1, CreatedAt: time.Now(),
		}}}
	}
	s := New(seed)
	assert.Len(t, s.Courses(), 1)
	assert.Equal(t, 0, s.UserCount())
}
