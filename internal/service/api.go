// Package service 模拟后端的唯一入口（门面）：
// 每个操作 = 故障闸门 → 查询引擎/会话管理 → 统一响应信封。
// 失败按错误返回（不是 success:false 信封），调用方靠错误路径区分失败。
package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/ahmedyasserjs010/CoursesSite/internal/apierr"
	"github.com/ahmedyasserjs010/CoursesSite/internal/domain"
	"github.com/ahmedyasserjs010/CoursesSite/internal/query"
	"github.com/ahmedyasserjs010/CoursesSite/internal/session"
	"github.com/ahmedyasserjs010/CoursesSite/internal/simnet"
	"github.com/ahmedyasserjs010/CoursesSite/internal/store"
)

// Response 成功信封 { data, success, pagination? }
type Response[T any] struct {
	Data       T           `json:"data"`
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Pagination *query.Info `json:"pagination,omitempty"`
}

func OK[T any](data T) Response[T] { return Response[T]{Data: data, Success: true} }

func Paged[T any](data T, info query.Info) Response[T] {
	return Response[T]{Data: data, Success: true, Pagination: &info}
}

// Options 显式依赖注入，不留包级单例；测试各建各的实例
type Options struct {
	Logger *zap.Logger
	// Fixtures 覆盖播种数据（默认内置 fixtures）
	Fixtures func() store.Fixtures
	// Rand 覆盖闸门随机源
	Rand func() float64
}

// API 一个独立的模拟后端实例
type API struct {
	log   *zap.Logger
	gate  *simnet.Gate
	store *store.Store
	sess  *session.Manager
}

func New(opts Options) *API {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Fixtures == nil {
		opts.Fixtures = store.SeedFixtures
	}
	gate := simnet.NewGate()
	if opts.Rand != nil {
		gate = simnet.NewGateWithRand(opts.Rand)
	}
	st := store.New(opts.Fixtures)
	return &API{
		log:   opts.Logger,
		gate:  gate,
		store: st,
		sess:  session.NewManager(st),
	}
}

/* ---------- 控制面：不过闸门（闸门全闭时还得能改回来） ---------- */

func (a *API) SetLatency(d time.Duration) { a.gate.SetLatency(d) }
func (a *API) Latency() time.Duration     { return a.gate.Latency() }
func (a *API) SetFailureRate(r float64)   { a.gate.SetFailureRate(r) }
func (a *API) FailureRate() float64       { return a.gate.FailureRate() }

// Reset 数据和两个配置值全部回到播种状态，测试场景之间隔离用
func (a *API) Reset() {
	a.store.Reset()
	a.sess.Logout()
	a.gate.SetLatency(simnet.DefaultLatency)
	a.gate.SetFailureRate(simnet.DefaultFailureRate)
	a.log.Debug("sim reset to seed state")
}

/* ---------- 课程 ---------- */

func (a *API) ListCourses(q domain.CourseQuery) (Response[[]domain.Course], error) {
	if err := a.gate.Do("courses.list", apierr.Simulated("Failed to fetch courses", 500)); err != nil {
		return Response[[]domain.Course]{}, err
	}
	items, info := query.Run(a.store.Courses(), coursePredicates(q), courseSort(q),
		query.Page{Number: q.Page, Size: q.Limit})
	a.log.Debug("list courses", zap.Int("total", info.Total), zap.Int("page", info.Page))
	return Paged(items, info), nil
}

func (a *API) Course(id string) (Response[domain.Course], error) {
	if err := a.gate.Do("courses.get", apierr.Simulated("Failed to fetch course", 500)); err != nil {
		return Response[domain.Course]{}, err
	}
	c, found := a.store.CourseByID(id)
	if !found {
		return Response[domain.Course]{}, apierr.NotFound("Course not found")
	}
	return OK(c), nil
}

/* ---------- 讲师 ---------- */

func (a *API) ListInstructors(q domain.InstructorQuery) (Response[[]domain.Instructor], error) {
	if err := a.gate.Do("instructors.list", apierr.Simulated("Failed to fetch instructors", 500)); err != nil {
		return Response[[]domain.Instructor]{}, err
	}
	items, info := query.Run(a.store.Instructors(), instructorPredicates(q), query.Sort[domain.Instructor]{},
		query.Page{Number: q.Page, Size: q.Limit})
	return Paged(items, info), nil
}

func (a *API) Instructor(id string) (Response[domain.Instructor], error) {
	if err := a.gate.Do("instructors.get", apierr.Simulated("Failed to fetch instructor", 500)); err != nil {
		return Response[domain.Instructor]{}, err
	}
	in, found := a.store.InstructorByID(id)
	if !found {
		return Response[domain.Instructor]{}, apierr.NotFound("Instructor not found")
	}
	return OK(in), nil
}

/* ---------- 评价 ---------- */

// Testimonials 不带过滤/排序/分页
func (a *API) Testimonials() (Response[[]domain.Testimonial], error) {
	if err := a.gate.Do("testimonials.list", apierr.Simulated("Failed to fetch testimonials", 500)); err != nil {
		return Response[[]domain.Testimonial]{}, err
	}
	return OK(a.store.Testimonials()), nil
}

/* ---------- 会话 ---------- */

func (a *API) Login(creds domain.Credentials) (Response[domain.AuthSession], error) {
	if err := a.gate.Do("auth.login", apierr.Simulated("Login failed. Please check your credentials.", 401)); err != nil {
		return Response[domain.AuthSession]{}, err
	}
	u, token, err := a.sess.Login(creds)
	if err != nil {
		return Response[domain.AuthSession]{}, err
	}
	a.log.Info("login", zap.String("email", u.Email))
	return OK(domain.AuthSession{User: u, Token: token}), nil
}

func (a *API) Register(data domain.RegisterData) (Response[domain.AuthSession], error) {
	if err := a.gate.Do("auth.register", apierr.Simulated("Registration failed. Please try again.", 400)); err != nil {
		return Response[domain.AuthSession]{}, err
	}
	u, token, err := a.sess.Register(data)
	if err != nil {
		return Response[domain.AuthSession]{}, err
	}
	a.log.Info("register", zap.String("email", u.Email))
	return OK(domain.AuthSession{User: u, Token: token}), nil
}

// Logout 只有延迟没有失败注入：永远成功且幂等
func (a *API) Logout() (Response[struct{}], error) {
	a.gate.Delay()
	a.sess.Logout()
	return OK(struct{}{}), nil
}

// CurrentUser Anonymous 状态下 data 为 nil
func (a *API) CurrentUser() (Response[*domain.User], error) {
	if err := a.gate.Do("auth.me", apierr.Simulated("Failed to get user data", 500)); err != nil {
		return Response[*domain.User]{}, err
	}
	u, found := a.sess.Current()
	if !found {
		return OK[*domain.User](nil), nil
	}
	return OK(&u), nil
}
