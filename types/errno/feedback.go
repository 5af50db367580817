package errno

import (
	"net/http"

	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx/code"
)

const (
	FeedbackErrCode          = 40001
	FeedbackSubmitErrCode    = 40002
	FeedbackListErrCode      = 40003
	FeedbackAdminOnlyErrCode = 40004
)

func init() {
	code.Register(
		FeedbackErrCode,
		"Failed to save feedback",
		code.WithAffectStability(false),
	)
	code.Register(
		FeedbackSubmitErrCode,
		"Failed to submit feedback",
		code.WithAffectStability(false),
	)
	code.Register(
		FeedbackListErrCode,
		"Failed to get feedbacks",
		code.WithAffectStability(false),
	)
	code.Register(
		FeedbackAdminOnlyErrCode,
		"Forbidden: Admin access only",
		code.WithHTTPStatus(http.StatusForbidden),
		code.WithAffectStability(false),
	)
}
