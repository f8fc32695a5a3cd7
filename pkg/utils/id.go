package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 32 位无连字符 id
func NewID() string { return strings.ReplaceAll(uuid.NewString(), "-", "") }

// NewToken 会话占位令牌：进程内唯一即可，任何地方都不校验
func NewToken() string { return "fake-token-" + uuid.NewString() }
