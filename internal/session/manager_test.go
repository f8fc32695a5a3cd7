package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedyasserjs010/CoursesSite/internal/apierr"
	"github.com/ahmedyasserjs010/CoursesSite/internal/domain"
	"github.com/ahmedyasserjs010/CoursesSite/internal/store"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(store.NewSeeded())
}

func TestRegister_CreatesLearnerAndActivatesSession(t *testing.T) {
	m := newManager(t)

	u, token, err := m.Register(domain.RegisterData{
		Name: "Jane", Email: "jane@x.com", Password: "p", ConfirmPassword: "p",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", u.Name)
	assert.Equal(t, domain.RoleLearner, u.Role)
	assert.Equal(t, domain.DefaultPreferences(), u.Preferences)
	assert.Empty(t, u.EnrolledCourses)
	assert.NotEmpty(t, u.ID)
	assert.True(t, strings.HasPrefix(token, "fake-token-"))

	cur, active := m.Current()
	require.True(t, active)
	assert.Equal(t, u.ID, cur.ID)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	m := newManager(t)

	_, _, err := m.Register(domain.RegisterData{Name: "Jane", Email: "jane@x.com"})
	require.NoError(t, err)

	_, _, err = m.Register(domain.RegisterData{Name: "Other", Email: "jane@x.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrConflict)

	var ae *apierr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 409, ae.Status)
}

func TestLogin_SeededUser(t *testing.T) {
	m := newManager(t)

	u, token, err := m.Login(domain.Credentials{Email: "demo@example.com", Password: "anything"})
	require.NoError(t, err)
	assert.Equal(t, "demo@example.com", u.Email)
	assert.NotEmpty(t, token)

	cur, active := m.Current()
	require.True(t, active)
	assert.Equal(t, "1", cur.ID)
}

func TestLogin_UnknownEmailNotFound(t *testing.T) {
	m := newManager(t)

	_, _, err := m.Login(domain.Credentials{Email: "nope@x.com", Password: "p"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrNotFound)

	_, active := m.Current()
	assert.False(t, active)
}

func TestLogin_ReplacesExistingSession(t *testing.T) {
	m := newManager(t)

	_, _, err := m.Register(domain.RegisterData{Name: "Jane", Email: "jane@x.com"})
	require.NoError(t, err)

	_, _, err = m.Login(domain.Credentials{Email: "demo@example.com"})
	require.NoError(t, err)

	cur, active := m.Current()
	require.True(t, active)
	assert.Equal(t, "demo@example.com", cur.Email)
}

func TestLogout_IdempotentAndAlwaysSucceeds(t *testing.T) {
	m := newManager(t)

	_, _, err := m.Login(domain.Credentials{Email: "demo@example.com"})
	require.NoError(t, err)

	m.Logout()
	_, active := m.Current()
	assert.False(t, active)

	m.Logout() // 第二次也不会炸
	_, active = m.Current()
	assert.False(t, active)
}

func TestTokensAreUniquePerLogin(t *testing.T) {
	m := newManager(t)

	_, t1, err := m.Login(domain.Credentials{Email: "demo@example.com"})
	require.NoError(t, err)
	_, t2, err := m.Login(domain.Credentials{Email: "demo@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}
