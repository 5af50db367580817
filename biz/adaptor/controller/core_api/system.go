package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	hertz "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Health 健康检查
// @router /health [GET]
func Health(_ context.Context, c *app.RequestContext) {
	c.JSON(hertz.StatusOK, map[string]any{"status": "ok"})
}
