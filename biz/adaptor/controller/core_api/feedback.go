package core_api

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	"github.com/Hongbi-Kim/wavespace-core-api/provider"
)

// AttachFeedback 为消息附加评价
// @router /feedback [POST]
func AttachFeedback(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.AttachFeedbackReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().FeedbackService.AttachFeedback(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// LookupFeedback 查询消息的评价
// @router /feedback/:messageId [GET]
func LookupFeedback(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.LookupFeedbackReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().FeedbackService.LookupFeedback(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// SubmitGeneralFeedback 提交综合反馈
// @router /general-feedback [POST]
func SubmitGeneralFeedback(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.SubmitGeneralFeedbackReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().FeedbackService.SubmitGeneralFeedback(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// ListAllFeedback 管理员查询全部反馈
// @router /admin/feedbacks [GET]
func ListAllFeedback(ctx context.Context, c *app.RequestContext) {
	var err error
	var req core_api.ListAllFeedbackReq
	if err = c.BindAndValidate(&req); err != nil {
		adaptor.PostError(ctx, c, err)
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	resp, err := provider.Get().FeedbackService.ListAllFeedback(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
