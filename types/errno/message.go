package errno

import (
	"net/http"

	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx/code"
)

const (
	MessageAppendErrCode   = 31001
	MessageListErrCode     = 31002
	MessageNotFoundErrCode = 31003
)

func init() {
	code.Register(
		MessageAppendErrCode,
		"Failed to save message",
		code.WithAffectStability(false),
	)
	code.Register(
		MessageListErrCode,
		"Failed to get messages",
		code.WithAffectStability(false),
	)
	code.Register(
		MessageNotFoundErrCode,
		"Message not found",
		code.WithHTTPStatus(http.StatusNotFound),
		code.WithAffectStability(false),
	)
}
