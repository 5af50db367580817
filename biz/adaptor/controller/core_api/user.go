package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	"github.com/Hongbi-Kim/wavespace-core-api/provider"
)

// SignUp 注册新用户
// @router /signup [POST]
func SignUp(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.SignUpReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().UserService.SignUp(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// EraseAccount 删除用户及其全部数据
// @router /user/delete [DELETE]
func EraseAccount(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.EraseAccountReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().UserService.EraseAccount(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
