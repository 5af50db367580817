package code

import "net/http"

// code 维护全局的错误码注册表
// 各domain的错误码在types/errno的init中注册

// Definition 错误码定义
type Definition struct {
	Code            int32
	Message         string
	HTTPStatus      int
	AffectStability bool
}

var registry = map[int32]*Definition{}

type RegisterOption func(*Definition)

// WithAffectStability 标记该错误是否影响服务稳定性指标
func WithAffectStability(affect bool) RegisterOption {
	return func(d *Definition) {
		d.AffectStability = affect
	}
}

// WithHTTPStatus 指定该错误码对应的HTTP状态码, 默认500
func WithHTTPStatus(status int) RegisterOption {
	return func(d *Definition) {
		d.HTTPStatus = status
	}
}

// Register 注册错误码, 重复注册时后者覆盖前者
func Register(code int32, msg string, opts ...RegisterOption) {
	d := &Definition{Code: code, Message: msg, HTTPStatus: http.StatusInternalServerError}
	for _, opt := range opts {
		opt(d)
	}
	registry[code] = d
}

// Lookup 查找错误码定义, 未注册的码返回兜底定义
func Lookup(code int32) *Definition {
	if d, ok := registry[code]; ok {
		return d
	}
	return &Definition{Code: code, Message: "internal error", HTTPStatus: http.StatusInternalServerError}
}
