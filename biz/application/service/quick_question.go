package service

import (
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	mq "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/quickquestion"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/util"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/logs"
	"github.com/Hongbi-Kim/wavespace-core-api/types/errno"
)

type IQuickQuestionService interface {
	AppendQuickQuestion(ctx context.Context, req *core_api.AppendQuickQuestionReq) (*core_api.AppendQuickQuestionResp, error)
	ListQuickQuestion(ctx context.Context, req *core_api.ListQuickQuestionReq) (*core_api.ListQuickQuestionResp, error)
	QuickQuestionFeedback(ctx context.Context, req *core_api.QuickQuestionFeedbackReq) (*core_api.QuickQuestionFeedbackResp, error)
}

type QuickQuestionService struct {
	QuickQuestionMapper mq.KVMapper
}

var QuickQuestionServiceSet = wire.NewSet(
	wire.Struct(new(QuickQuestionService), "*"),
	wire.Bind(new(IQuickQuestionService), new(*QuickQuestionService)),
)

func (s *QuickQuestionService) AppendQuickQuestion(ctx context.Context, req *core_api.AppendQuickQuestionReq) (*core_api.AppendQuickQuestionResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	q := &mq.QuickQuestion{
		Id:        req.QuestionId,
		Question:  req.Question,
		Answer:    req.Answer,
		Timestamp: req.Timestamp,
	}
	if err = s.QuickQuestionMapper.Append(ctx, p.Id, q); err != nil {
		logs.CtxErrorf(ctx, "append quick question error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.QuickQuestionSaveErrCode)
	}
	return &core_api.AppendQuickQuestionResp{Resp: util.Success(), Success: true}, nil
}

func (s *QuickQuestionService) ListQuickQuestion(ctx context.Context, req *core_api.ListQuickQuestionReq) (*core_api.ListQuickQuestionResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	qs, err := s.QuickQuestionMapper.List(ctx, p.Id)
	if err != nil {
		logs.CtxErrorf(ctx, "list quick questions error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.QuickQuestionListErrCode)
	}
	return &core_api.ListQuickQuestionResp{Resp: util.Success(), Questions: qs}, nil
}

func (s *QuickQuestionService) QuickQuestionFeedback(ctx context.Context, req *core_api.QuickQuestionFeedbackReq) (*core_api.QuickQuestionFeedbackResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	if err = s.QuickQuestionMapper.SetFeedback(ctx, p.Id, req.QuestionId, req.Rating); err != nil {
		if errors.Is(err, mq.ErrNotFound) {
			return nil, errorx.WrapByCode(err, errno.QuickQuestionNotFoundErrCode)
		}
		logs.CtxErrorf(ctx, "quick question feedback error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.QuickQuestionFeedbackErrCode)
	}
	return &core_api.QuickQuestionFeedbackResp{Resp: util.Success(), Success: true}, nil
}
