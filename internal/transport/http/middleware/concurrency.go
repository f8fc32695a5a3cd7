package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"github.com/ahmedyasserjs010/CoursesSite/internal/apierr"
	resp "github.com/ahmedyasserjs010/CoursesSite/internal/transport/http/response"
)

// ConcurrencyLimit 限制同时在处理的请求数。
// 每个被闸的请求都会睡满模拟延迟，挂起的 handler 很容易堆积
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(apierr.Internal("server busy")))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
