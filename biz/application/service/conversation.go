package service

import (
	"context"
	"errors"

	"github.com/google/wire"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/adaptor"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/application/dto/core_api"
	mc "github.com/Hongbi-Kim/wavespace-core-api/biz/infra/mapper/conversation"
	"github.com/Hongbi-Kim/wavespace-core-api/biz/infra/util"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/errorx"
	"github.com/Hongbi-Kim/wavespace-core-api/pkg/logs"
	"github.com/Hongbi-Kim/wavespace-core-api/types/errno"
)

type IConversationService interface {
	CreateConversation(ctx context.Context, req *core_api.CreateConversationReq) (*core_api.CreateConversationResp, error)
	ListConversation(ctx context.Context, req *core_api.ListConversationReq) (*core_api.ListConversationResp, error)
	DeleteConversation(ctx context.Context, req *core_api.DeleteConversationReq) (*core_api.DeleteConversationResp, error)
}

type ConversationService struct {
	ConversationMapper mc.KVMapper
}

var ConversationServiceSet = wire.NewSet(
	wire.Struct(new(ConversationService), "*"),
	wire.Bind(new(IConversationService), new(*ConversationService)),
)

func (s *ConversationService) CreateConversation(ctx context.Context, req *core_api.CreateConversationReq) (*core_api.CreateConversationResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	// 调用mapper创建对话, 配额满时不落任何写
	c, err := s.ConversationMapper.CreateNewConversation(ctx, p.Id, req.Title)
	if err != nil {
		if errors.Is(err, mc.ErrQuotaExceeded) {
			return nil, errorx.WrapByCode(err, errno.ConversationQuotaErrCode)
		}
		logs.CtxErrorf(ctx, "create conversation error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationCreateErrCode)
	}

	return &core_api.CreateConversationResp{Resp: util.Success(), Conversation: c}, nil
}

func (s *ConversationService) ListConversation(ctx context.Context, req *core_api.ListConversationReq) (*core_api.ListConversationResp, error) {
	// 鉴权
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	// 获取概要列表并转化为交互域的Conversation
	cs, err := s.ConversationMapper.ListConversations(ctx, p.Id)
	if err != nil {
		logs.CtxErrorf(ctx, "list conversation error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationListErrCode)
	}
	items := make([]*core_api.Conversation, len(cs))
	for i, c := range cs {
		items[i] = &core_api.Conversation{
			Id:        c.Id,
			UserId:    c.UserId,
			Title:     c.Title,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		}
	}

	return &core_api.ListConversationResp{Resp: util.Success(), Conversations: items}, nil
}

func (s *ConversationService) DeleteConversation(ctx context.Context, req *core_api.DeleteConversationReq) (*core_api.DeleteConversationResp, error) {
	p, err := adaptor.ExtractPrincipal(ctx)
	if err != nil {
		return nil, errorx.WrapByCode(err, errno.UnAuthErrCode)
	}

	if err = s.ConversationMapper.DeleteConversation(ctx, p.Id, req.ConversationId); err != nil {
		switch {
		case errors.Is(err, mc.ErrNotFound):
			return nil, errorx.WrapByCode(err, errno.ConversationNotFoundErrCode)
		case errors.Is(err, mc.ErrForbidden):
			return nil, errorx.WrapByCode(err, errno.ConversationForbiddenErrCode)
		}
		logs.CtxErrorf(ctx, "delete conversation error: %s", errorx.ErrorWithoutStack(err))
		return nil, errorx.WrapByCode(err, errno.ConversationDeleteErrCode)
	}
	return &core_api.DeleteConversationResp{Resp: util.Success(), Success: true}, nil
}
