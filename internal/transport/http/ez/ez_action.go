// Package ez 非 CRUD 接口的一行注册。门面方法已经产出完整成功信封，
// 这里只做绑定 + 错误映射，没有事务/鉴权层。
package ez

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ahmedyasserjs010/CoursesSite/internal/apierr"
	resp "github.com/ahmedyasserjs010/CoursesSite/internal/transport/http/response"
)

type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

// Binder 入参绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON body 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

// Action I 是入参；出参就是门面返回的成功信封，原样透传
type Action[I any] struct {
	Method  string // "GET" | "POST" | "PUT" | "DELETE"
	Path    string // 例："/courses"、"/courses/:id"
	Binder  Binder
	Handler func(c *gin.Context, in *I) (any, error)
}

func Register[I any](e EZ, a Action[I]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		default: // BindNone
		}
		if bindErr != nil {
			c.JSON(http.StatusOK, resp.Error(apierr.BadRequest(bindErr.Error())))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			c.JSON(http.StatusOK, resp.Error(err))
			return
		}
		c.JSON(http.StatusOK, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default: // 默认 POST
		e.g.POST(a.Path, h)
	}
}
