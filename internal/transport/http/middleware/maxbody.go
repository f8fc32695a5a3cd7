package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedyasserjs010/CoursesSite/internal/apierr"
	resp "github.com/ahmedyasserjs010/CoursesSite/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小；这个服务只收小 JSON
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusOK, resp.Error(apierr.BadRequest("request body too large")))
		}
	}
}
