package errorx

import (
	"fmt"

	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx/code"
)

// errorx 是HTTP服务的业务异常
// 最佳实践:
// - 业务处理链路的末端使用errorx, PostProcess处理后给出用户友好的响应
// - 错误码及文案统一注册在types/errno中
// - 除却末端的errorx外, 其余的error照常处理

// StatusError 携带已注册错误码信息的业务错误
type StatusError interface {
	error
	Code() int32
	Msg() string
	HTTPStatus() int
}

type statusError struct {
	code   int32
	msg    string
	status int
	cause  error
}

func (e *statusError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("code=%d, msg=%s", e.code, e.msg)
	}
	return fmt.Sprintf("code=%d, msg=%s, cause=%v", e.code, e.msg, e.cause)
}

func (e *statusError) Code() int32 { return e.code }

func (e *statusError) Msg() string { return e.msg }

func (e *statusError) HTTPStatus() int { return e.status }

func (e *statusError) Unwrap() error { return e.cause }

type Option func(*statusError)

// KV 在错误文案后追加键值对, 用于补充上下文
func KV(k, v string) Option {
	return func(e *statusError) {
		e.msg = fmt.Sprintf("%s, %s=%s", e.msg, k, v)
	}
}

// New 根据注册的错误码构造errorx
func New(c int32, opts ...Option) error {
	return build(nil, c, opts...)
}

// WrapByCode 将err包装为注册错误码对应的errorx, err为nil时返回nil
func WrapByCode(err error, c int32, opts ...Option) error {
	if err == nil {
		return nil
	}
	return build(err, c, opts...)
}

func build(cause error, c int32, opts ...Option) error {
	def := code.Lookup(c)
	e := &statusError{code: c, msg: def.Message, status: def.HTTPStatus, cause: cause}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ErrorWithoutStack 返回错误文案, nil安全, 供日志使用
func ErrorWithoutStack(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
