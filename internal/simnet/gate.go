// Package simnet 模拟网络状况：固定延迟 + 按概率注入失败，
// 让上层真实地走一遍 loading / error 分支。
package simnet

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ahmedyasserjs010/CoursesSite/internal/apierr"
)

const (
	DefaultLatency     = 800 * time.Millisecond
	DefaultFailureRate = 0.05
)

var gateCalls = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "sim_gate_calls_total", Help: "Count of gated simulated calls"},
	[]string{"op", "outcome"},
)

func init() { prometheus.MustRegister(gateCalls) }

// Gate 无业务状态，只有两个可随时改写的配置值；下一次调用立即生效
type Gate struct {
	latencyNs atomic.Int64
	rateBits  atomic.Uint64 // failureRate 的 Float64bits
	rnd       func() float64
}

func NewGate() *Gate { return NewGateWithRand(rand.Float64) }

// NewGateWithRand 注入随机源，测试用
func NewGateWithRand(rnd func() float64) *Gate {
	g := &Gate{rnd: rnd}
	g.SetLatency(DefaultLatency)
	g.SetFailureRate(DefaultFailureRate)
	return g
}

func (g *Gate) SetLatency(d time.Duration) {
	if d < 0 {
		d = 0
	}
	g.latencyNs.Store(int64(d))
}

func (g *Gate) Latency() time.Duration { return time.Duration(g.latencyNs.Load()) }

// SetFailureRate 写入时钳到 [0,1]；NaN 当 0 处理
func (g *Gate) SetFailureRate(rate float64) {
	switch {
	case math.IsNaN(rate) || rate < 0:
		rate = 0
	case rate > 1:
		rate = 1
	}
	g.rateBits.Store(math.Float64bits(rate))
}

func (g *Gate) FailureRate() float64 { return math.Float64frombits(g.rateBits.Load()) }

// Do 睡满当前延迟后独立抽样一次；命中失败率则返回 failure。
// 故意不接收 context：一次“远端调用”一旦发出就一定会结束（成功或注入失败）。
func (g *Gate) Do(op string, failure *apierr.Error) error {
	g.Delay()
	if g.rnd() < g.FailureRate() {
		gateCalls.WithLabelValues(op, "failure").Inc()
		return failure
	}
	gateCalls.WithLabelValues(op, "ok").Inc()
	return nil
}

// Delay 只延迟不注入失败（logout 这类“永远成功”的操作用）
func (g *Gate) Delay() { time.Sleep(g.Latency()) }
