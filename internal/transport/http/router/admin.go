package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ahmedyasserjs010/CoursesSite/internal/service"
)

// NewAdminEngine 模拟控制面：调延迟/失败率、重置数据、/metrics。
// 和 API 引擎必须同进程跑（共享同一个门面实例），只是单独一个监听端口
func NewAdminEngine(l *zap.Logger, api *service.API) *gin.Engine {
	r := gin.New()

	r.Use(
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := r.Group("/admin/v1")
	mountSimActions(admin, api)

	return r
}
