package response

import "fmt"

// AppError 携带业务码与文案键的错误，文案在响应时按语言解析
type AppError struct {
	Code int
	Key  string
	Err  error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%d %s", e.Code, e.Key)
	}
	return fmt.Sprintf("%d %s: %v", e.Code, e.Key, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError 创建业务错误
func NewAppError(code int, key string, err error) *AppError {
	return &AppError{Code: code, Key: key, Err: err}
}
