package errno

import (
	"net/http"

	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx/code"
)

const (
	ErrSignUp       = 100_000_001
	ErrEraseAccount = 100_000_002
)

func init() {
	code.Register(
		ErrSignUp,
		"Failed to sign up",
		code.WithHTTPStatus(http.StatusBadRequest),
		code.WithAffectStability(false),
	)
	code.Register(
		ErrEraseAccount,
		"Failed to delete account",
		code.WithHTTPStatus(http.StatusInternalServerError),
		code.WithAffectStability(true),
	)
}
