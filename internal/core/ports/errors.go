package ports

import "errors"

// 定義 Ports 層級通用的錯誤
var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingToken = errors.New("no token provided")
)
