// Package session 管理全进程唯一的活跃会话槽（Anonymous / Authenticated）。
//
// 并发 login/register/logout 之间没有跨调用原子性：最后写入者生效。
// 需要严格顺序时由调用方自行串行化——这是模拟器的已知可复现行为，不是 bug。
package session

import (
	"sync"
	"time"

	"github.com/ahmedyasserjs010/CoursesSite/internal/apierr"
	"github.com/ahmedyasserjs010/CoursesSite/internal/domain"
	"github.com/ahmedyasserjs010/CoursesSite/internal/store"
	"github.com/ahmedyasserjs010/CoursesSite/pkg/utils"
)

type Manager struct {
	mu      sync.Mutex
	store   *store.Store
	current *domain.User
}

func NewManager(st *store.Store) *Manager { return &Manager{store: st} }

// Register 只复查邮箱唯一性（格式/确认密码等在边界校验）。
// 密码不落库：本核心没有凭据存储，注册即登录。
func (m *Manager) Register(data domain.RegisterData) (domain.User, string, error) {
	u := domain.User{
		ID:              utils.NewID(),
		Email:           data.Email,
		Name:            data.Name,
		Role:            domain.RoleLearner,
		Preferences:     domain.DefaultPreferences(),
		EnrolledCourses: []string{},
		CreatedAt:       time.Now().UTC(),
	}
	if !m.store.AddUser(u) {
		return domain.User{}, "", apierr.Conflict("User already exists")
	}
	m.setCurrent(&u)
	return u, utils.NewToken(), nil
}

// Login 不校验密码：没有凭据存储，任何密码都能登入已存在的邮箱
func (m *Manager) Login(creds domain.Credentials) (domain.User, string, error) {
	u, found := m.store.UserByEmail(creds.Email)
	if !found {
		return domain.User{}, "", apierr.NotFound("User not found")
	}
	m.setCurrent(&u)
	return u, utils.NewToken(), nil
}

// Logout 无条件回到 Anonymous，幂等
func (m *Manager) Logout() {
	m.setCurrent(nil)
}

// Current 活跃会话的用户；Anonymous 时 found 为 false
func (m *Manager) Current() (domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return domain.User{}, false
	}
	return *m.current, true
}

func (m *Manager) setCurrent(u *domain.User) {
	m.mu.Lock()
	m.current = u
	m.mu.Unlock()
}
