package response

// 错误级别沿用 HTTP 语义的粗分类（不是真正的传输层状态码）
const (
	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusForbidden    = 403
	StatusNotFound     = 404
	StatusConflict     = 409
	StatusServerError  = 500
)

var statusTextMap = map[int]string{
	StatusBadRequest:   "Bad Request",
	StatusUnauthorized: "Unauthorized",
	StatusForbidden:    "Forbidden",
	StatusNotFound:     "Not Found",
	StatusConflict:     "Conflict",
	StatusServerError:  "Internal Server Error",
}

func StatusText(status int) string {
	if s, ok := statusTextMap[status]; ok {
		return s
	}
	return "Internal Server Error"
}
