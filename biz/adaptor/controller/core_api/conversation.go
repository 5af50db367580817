package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	"github.com/Hongbi-Kim/wavespace-core-api/provider"
)

// CreateConversation 创建新对话
// @router /conversations [POST]
func CreateConversation(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.CreateConversationReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().ConversationService.CreateConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListConversation 查询当前用户的对话列表
// @router /conversations [GET]
func ListConversation(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.ListConversationReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().ConversationService.ListConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// DeleteConversation 删除对话并从索引中移除
// @router /conversations/:id [DELETE]
func DeleteConversation(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.DeleteConversationReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().ConversationService.DeleteConversation(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
