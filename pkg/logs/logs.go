package logs

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
)

// logs 是对logx的简单封装, Ctx*系列会携带trace信息

func Infof(format string, v ...any) {
	logx.Infof(format, v...)
}

func Warnf(format string, v ...any) {
	logx.Slowf(format, v...)
}

func Errorf(format string, v ...any) {
	logx.Errorf(format, v...)
}

func CtxInfof(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Infof(format, v...)
}

func CtxWarnf(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Slowf(format, v...)
}

func CtxErrorf(ctx context.Context, format string, v ...any) {
	logx.WithContext(ctx).Errorf(format, v...)
}
