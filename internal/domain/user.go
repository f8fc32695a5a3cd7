package domain

import "time"

type Role string

const (
	RoleLearner    Role = "learner"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

func DefaultPreferences() Preferences {
	return Preferences{Language: "en", Theme: "system"}
}

type User struct {
	ID              string      `json:"id"`
	Email           string      `json:"email"` // 目录内唯一，区分大小写
	Name            string      `json:"name"`
	Avatar          string      `json:"avatar,omitempty"`
	Role            Role        `json:"role"`
	Preferences     Preferences `json:"preferences"`
	EnrolledCourses []string    `json:"enrolledCourses"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterData struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AuthSession 登录/注册成功后的返回：用户 + 占位令牌。
// 令牌只保证进程内唯一，本核心任何地方都不会校验它。
type AuthSession struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
