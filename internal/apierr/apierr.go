// Package apierr 统一错误形态：message + 机器可读 code + 类 HTTP 严重级别。
package apierr

import "fmt"

// Kind 错误类别；SimulatedFailure 是瞬态可重试，其余换相同入参重试无意义
type Kind string

const (
	KindSimulated  Kind = "simulated"
	KindBadRequest Kind = "bad_request"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindInternal   Kind = "internal"
)

type Error struct {
	Kind    Kind   `json:"-"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return e.Message }

// Code 沿用网关约定的 ERROR_<status> 形态
func (e *Error) Code() string { return fmt.Sprintf("ERROR_%d", e.Status) }

// Is 按 Kind 比较，让 errors.Is 可以用哨兵匹配而不管 message/status
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// 哨兵，仅供 errors.Is 使用
var (
	ErrSimulated = &Error{Kind: KindSimulated}
	ErrNotFound  = &Error{Kind: KindNotFound}
	ErrConflict  = &Error{Kind: KindConflict}
)

func New(kind Kind, status int, msg string) *Error {
	return &Error{Kind: kind, Status: status, Message: msg}
}

// Simulated 故障注入器抛出的瞬态失败；status 跟随被模拟的操作
func Simulated(msg string, status int) *Error { return New(KindSimulated, status, msg) }

func BadRequest(msg string) *Error { return New(KindBadRequest, 400, msg) }
func NotFound(msg string) *Error   { return New(KindNotFound, 404, msg) }
func Conflict(msg string) *Error   { return New(KindConflict, 409, msg) }
func Internal(msg string) *Error   { return New(KindInternal, 500, msg) }
