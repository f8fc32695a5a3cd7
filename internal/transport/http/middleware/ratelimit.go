package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ahmedyasserjs010/CoursesSite/internal/apierr"
	resp "github.com/ahmedyasserjs010/CoursesSite/internal/transport/http/response"
)

// RateLimit 全局令牌桶。mock 服务也会被前端轮询打爆，留个闸
func RateLimit(rps rate.Limit, burst int) gin.HandlerFunc {
	lim := rate.NewLimiter(rps, burst)
	return func(c *gin.Context) {
		if lim.Allow() {
			c.Next()
			return
		}
		c.AbortWithStatusJSON(http.StatusOK, resp.Error(apierr.Internal("too many requests")))
	}
}
