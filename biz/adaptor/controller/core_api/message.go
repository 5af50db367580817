package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	"github.com/Hongbi-Kim/wavespace-core-api/provider"
)

// AppendMessage 向对话追加一条消息
// @router /messages [POST]
func AppendMessage(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.AppendMessageReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().MessageService.AppendMessage(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListMessages 查询对话的消息列表
// @router /messages/:conversationId [GET]
func ListMessages(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.ListMessagesReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().MessageService.ListMessages(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
