package response

import (
	"errors"

	"github.com/ahmedyasserjs010/CoursesSite/internal/apierr"
)

// Fail 失败信封。成功响应由门面直接给出 {data, success, pagination}，
// 这里只负责把错误压成 {success:false, message, code, status}。
// HTTP 状态码恒为 200，错误级别放 body（与前端 SDK 的约定一致）。
type Fail struct {
	Data    struct{} `json:"data"`
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Code    string   `json:"code"`
	Status  int      `json:"status"`
}

func Error(err error) Fail {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		msg := ae.Message
		if msg == "" {
			msg = StatusText(ae.Status)
		}
		return Fail{Message: msg, Code: ae.Code(), Status: ae.Status}
	}
	return Fail{Message: err.Error(), Code: "ERROR_500", Status: StatusServerError}
}
