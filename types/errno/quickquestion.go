package errno

import (
	"net/http"

	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx/code"
)

const (
	QuickQuestionSaveErrCode     = 50001
	QuickQuestionListErrCode     = 50002
	QuickQuestionNotFoundErrCode = 50003
	QuickQuestionFeedbackErrCode = 50004
)

func init() {
	code.Register(
		QuickQuestionSaveErrCode,
		"Failed to save quick question",
		code.WithAffectStability(false),
	)
	code.Register(
		QuickQuestionListErrCode,
		"Failed to get quick questions",
		code.WithAffectStability(false),
	)
	code.Register(
		QuickQuestionNotFoundErrCode,
		"Question not found",
		code.WithHTTPStatus(http.StatusNotFound),
		code.WithAffectStability(false),
	)
	code.Register(
		QuickQuestionFeedbackErrCode,
		"Failed to save quick question feedback",
		code.WithAffectStability(false),
	)
}
