package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahmedyasserjs010/CoursesSite/internal/service"
	httpez "github.com/ahmedyasserjs010/CoursesSite/internal/transport/http/ez"
)

// 模拟配置的读写。这些是控制面操作，不过故障闸门：
// 失败率拉到 1 之后还得能从这里调回来
func mountSimActions(admin *gin.RouterGroup, api *service.API) {
	ez := httpez.New(admin)

	type simConfig struct {
		LatencyMs   int64   `json:"latencyMs"`
		FailureRate float64 `json:"failureRate"`
	}
	current := func() simConfig {
		return simConfig{
			LatencyMs:   api.Latency().Milliseconds(),
			FailureRate: api.FailureRate(),
		}
	}

	httpez.Register(ez, httpez.Action[struct{}]{
		Method: http.MethodGet,
		Path:   "/sim/config",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			return service.OK(current()), nil
		},
	})

	// 部分更新：缺席的字段不动
	type simConfigIn struct {
		LatencyMs   *int64   `json:"latencyMs"`
		FailureRate *float64 `json:"failureRate"`
	}
	httpez.Register(ez, httpez.Action[simConfigIn]{
		Method: http.MethodPut,
		Path:   "/sim/config",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *simConfigIn) (any, error) {
			if in.LatencyMs != nil {
				api.SetLatency(time.Duration(*in.LatencyMs) * time.Millisecond)
			}
			if in.FailureRate != nil {
				api.SetFailureRate(*in.FailureRate)
			}
			return service.OK(current()), nil
		},
	})

	httpez.Register(ez, httpez.Action[struct{}]{
		Method: http.MethodPost,
		Path:   "/sim/reset",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			api.Reset()
			return service.OK(current()), nil
		},
	})
}
