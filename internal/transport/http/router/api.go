package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ahmedyasserjs010/CoursesSite/internal/domain"
	"github.com/ahmedyasserjs010/CoursesSite/internal/service"
	httpez "github.com/ahmedyasserjs010/CoursesSite/internal/transport/http/ez"
	mdw "github.com/ahmedyasserjs010/CoursesSite/internal/transport/http/middleware"
)

// NewAPIEngine 面向前端的 mock API。CORS 全开：这个服务只在开发环境跑
func NewAPIEngine(l *zap.Logger, api *service.API) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(30*time.Second),
		mdw.SimpleRecovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	v1 := r.Group("/api/v1")
	mountCatalogActions(v1, api)
	mountAuthActions(v1, api)

	return r
}

func mountCatalogActions(g *gin.RouterGroup, api *service.API) {
	ez := httpez.New(g)

	httpez.Register(ez, httpez.Action[domain.CourseQuery]{
		Method: http.MethodGet,
		Path:   "/courses",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *domain.CourseQuery) (any, error) {
			return api.ListCourses(*in)
		},
	})

	httpez.Register(ez, httpez.Action[struct{}]{
		Method: http.MethodGet,
		Path:   "/courses/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			return api.Course(c.Param("id"))
		},
	})

	httpez.Register(ez, httpez.Action[domain.InstructorQuery]{
		Method: http.MethodGet,
		Path:   "/instructors",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *domain.InstructorQuery) (any, error) {
			return api.ListInstructors(*in)
		},
	})

	httpez.Register(ez, httpez.Action[struct{}]{
		Method: http.MethodGet,
		Path:   "/instructors/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			return api.Instructor(c.Param("id"))
		},
	})

	httpez.Register(ez, httpez.Action[struct{}]{
		Method: http.MethodGet,
		Path:   "/testimonials",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			return api.Testimonials()
		},
	})
}

// 表单级校验（必填/邮箱格式/确认密码一致）在这里完成；
// 门面只复查邮箱唯一性
func mountAuthActions(g *gin.RouterGroup, api *service.API) {
	ez := httpez.New(g)

	type loginIn struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	httpez.Register(ez, httpez.Action[loginIn]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (any, error) {
			return api.Login(domain.Credentials{Email: in.Email, Password: in.Password})
		},
	})

	type registerIn struct {
		Name            string `json:"name" binding:"required,max=64"`
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	}
	httpez.Register(ez, httpez.Action[registerIn]{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *registerIn) (any, error) {
			return api.Register(domain.RegisterData{
				Name:            in.Name,
				Email:           in.Email,
				Password:        in.Password,
				ConfirmPassword: in.ConfirmPassword,
			})
		},
	})

	httpez.Register(ez, httpez.Action[struct{}]{
		Method: http.MethodPost,
		Path:   "/auth/logout",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			return api.Logout()
		},
	})

	httpez.Register(ez, httpez.Action[struct{}]{
		Method: http.MethodGet,
		Path:   "/auth/me",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			return api.CurrentUser()
		},
	})
}
