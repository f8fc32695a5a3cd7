package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ahmedyasserjs010/CoursesSite/internal/apierr"
	resp "github.com/ahmedyasserjs010/CoursesSite/internal/transport/http/response"
)

func SimpleRecovery(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusOK, resp.Error(apierr.Internal("internal error")))
			}
		}()
		c.Next()
	}
}
