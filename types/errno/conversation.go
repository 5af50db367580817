package errno

import (
	"net/http"

	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx/code"
)

const (
	ConversationCreateErrCode    = 30001
	ConversationQuotaErrCode     = 30002
	ConversationListErrCode      = 30003
	ConversationNotFoundErrCode  = 30004
	ConversationDeleteErrCode    = 30005
	ConversationForbiddenErrCode = 30006
)

func init() {
	code.Register(
		ConversationCreateErrCode,
		"Failed to create conversation",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationQuotaErrCode,
		"대화방은 최대 3개까지 생성할 수 있습니다.",
		code.WithHTTPStatus(http.StatusBadRequest),
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationListErrCode,
		"Failed to get conversations",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationNotFoundErrCode,
		"Conversation not found",
		code.WithHTTPStatus(http.StatusNotFound),
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationDeleteErrCode,
		"Failed to delete conversation",
		code.WithAffectStability(false),
	)
	code.Register(
		ConversationForbiddenErrCode,
		"Unauthorized access to conversation",
		code.WithHTTPStatus(http.StatusForbidden),
		code.WithAffectStability(false),
	)
}
