package service

import (
	"context"
	"errors"
	"slices"

	"github.com/google/wire"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/cst"
	mc "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/conversation"
	mf "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/feedback"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/util"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/logs"
	"github.com/Hongbi-Kim/wavespace-core-api/types/errno"
)

type IFeedbackService interface {
	AttachFeedback(ctx context.Context, req *core_api.AttachFeedbackReq) (*core_api.AttachFeedbackResp, error)
	LookupFeedback(ctx context.Context, req *core_api.LookupFeedbackReq) (*core_api.LookupFeedbackResp, error)
	SubmitGeneralFeedback(ctx context.Context, req *core_api.SubmitGeneralFeedbackReq) (*core_api.SubmitGeneralFeedbackResp, error)
	ListAllFeedback(ctx context.Context, req *core_api.ListAllFeedbackReq) (*core_api.ListAllFeedbackResp, error)
}

type FeedbackService struct {
	ConversationMapper mc.KVMapper
	FeedbackMapper     mf.KVMapper
	// AdminEmails 管理员白名单, 精确匹配邮箱
	AdminEmails []string
}

var FeedbackServiceSet = wire.NewSet(
	wire.Struct(new(FeedbackService), "*"),
	wire.Bind(new(IFeedbackService), new(*FeedbackService)),
)

// AttachFeedback 给对话中某条消息覆盖写评价
func (f *FeedbackService) AttachFeedback(ctx context.Context, req *core_api.AttachFeedbackReq) (*core_api.AttachFeedbackResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	fb, err := f.ConversationMapper.AttachFeedback(ctx, p.Id, req.ConversationId, req.MessageId, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, mc.ErrNotFound), errors.Is(err, mc.ErrForbidden):
			return nil, errorx.WrapByCode(err, errno.ConversationNotFoundErrCode)
		case errors.Is(err, mc.ErrMessageNotFound):
			return nil, errorx.WrapByCode(err, errno.MessageNotFoundErrCode)
		}
		logs.CtxErrorf(ctx, "attach feedback error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.FeedbackErrCode)
	}
	return &core_api.AttachFeedbackResp{Resp: util.Success(), Success: true, Feedback: fb}, nil
}

// LookupFeedback 在用户的全部对话中查找某条消息的评价, 未找到时data.feedback为null
func (f *FeedbackService) LookupFeedback(ctx context.Context, req *core_api.LookupFeedbackReq) (*core_api.LookupFeedbackResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	fb, err := f.ConversationMapper.LookupFeedback(ctx, p.Id, req.MessageId)
	if err != nil {
		logs.CtxErrorf(ctx, "lookup feedback error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.FeedbackErrCode)
	}
	return &core_api.LookupFeedbackResp{Resp: util.Success(), Feedback: fb}, nil
}

// SubmitGeneralFeedback 与对话无关的独立反馈
func (f *FeedbackService) SubmitGeneralFeedback(ctx context.Context, req *core_api.SubmitGeneralFeedbackReq) (*core_api.SubmitGeneralFeedbackResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	typ := req.Type
	if typ == "" {
		typ = cst.DefaultFeedbackType
	}
	fb, err := f.FeedbackMapper.Insert(ctx, p.Id, p.Email, req.Content, typ)
	if err != nil {
		logs.CtxErrorf(ctx, "submit general feedback error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.FeedbackSubmitErrCode)
	}
	return &core_api.SubmitGeneralFeedbackResp{Resp: util.Success(), Success: true, Feedback: fb}, nil
}

// ListAllFeedback 管理员全量拉取, 白名单外一律Forbidden
func (f *FeedbackService) ListAllFeedback(ctx context.Context, req *core_api.ListAllFeedbackReq) (*core_api.ListAllFeedbackResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}
	if !slices.Contains(f.AdminEmails, p.Email) {
		return nil, errorx.New(errno.FeedbackAdminOnlyErrCode)
	}

	fbs, err := f.FeedbackMapper.ListAll(ctx)
	if err != nil {
		logs.CtxErrorf(ctx, "list feedback error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.FeedbackListErrCode)
	}
	return &core_api.ListAllFeedbackResp{Resp: util.Success(), Feedbacks: fbs}, nil
}
