package errno

import (
	"net/http"

	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx/code"
)

const (
	UnAuthErrCode    = 1000
	ForbiddenErrCode = 1001
	InternalErrCode  = 999
)

func init() {
	code.Register(
		UnAuthErrCode,
		"Unauthorized",
		code.WithHTTPStatus(http.StatusUnauthorized),
		code.WithAffectStability(false),
	)
	code.Register(
		ForbiddenErrCode,
		"Forbidden",
		code.WithHTTPStatus(http.StatusForbidden),
		code.WithAffectStability(false),
	)
	code.Register(
		InternalErrCode,
		"Internal server error",
		code.WithHTTPStatus(http.StatusInternalServerError),
		code.WithAffectStability(true),
	)
}
