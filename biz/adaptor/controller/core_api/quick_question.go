package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	"github.com/Hongbi-Kim/wavespace-core-api/provider"
)

// AppendQuickQuestion 记录一次快速问答
// @router /quick-question [POST]
func AppendQuickQuestion(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.AppendQuickQuestionReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().QuickQuestionService.AppendQuickQuestion(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListQuickQuestion 查询快速问答历史
// @router /quick-questions [GET]
func ListQuickQuestion(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.ListQuickQuestionReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().QuickQuestionService.ListQuickQuestion(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// QuickQuestionFeedback 为快速问答附加评价
// @router /quick-question-feedback [POST]
func QuickQuestionFeedback(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.QuickQuestionFeedbackReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().QuickQuestionService.QuickQuestionFeedback(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
